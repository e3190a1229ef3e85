package csvlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/speedlog/pkg/report"
)

func testRecord(latency string) *report.Record {
	rec := report.Parse(
		"Server: Acme Net, California (id = 4821)\n"+
			"ISP: Comcast\n"+
			"Latency: "+latency+" ms (jitter: 1.1 ms)\n"+
			"Download: 95.4 Mbps (data used: 120.5 MB)\n"+
			"Upload: 11.2 Mbps (data used: 18.1 MB)\n"+
			"Packet Loss: 0.0%\n"+
			"Result URL: https://example.com/r/1\n",
		time.Date(2026, time.March, 7, 9, 5, 0, 0, time.UTC))
	return &rec
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  string
	}{
		{
			name:  "single digit month and day",
			start: time.Date(2026, time.March, 7, 9, 5, 0, 0, time.UTC),
			want:  "Ookla_3.7.2026_0905.csv",
		},
		{
			name:  "double digits",
			start: time.Date(2026, time.November, 23, 14, 30, 0, 0, time.UTC),
			want:  "Ookla_11.23.2026_1430.csv",
		},
		{
			name:  "midnight",
			start: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			want:  "Ookla_1.1.2026_0000.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.start))
		})
	}
}

func TestWriterHeaderAndRows(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2026, time.March, 7, 9, 5, 0, 0, time.UTC)

	w, err := New(dir, start)
	require.NoError(t, err)
	defer w.Close()

	const n = 3
	for i := 0; i < n; i++ {
		require.NoError(t, w.Append(testRecord("12.3")))
	}
	require.NoError(t, w.Close())

	content, err := os.ReadFile(filepath.Join(dir, "Ookla_3.7.2026_0905.csv"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, n+1)

	assert.Equal(t, HeaderRow(), lines[0])
	for _, line := range lines {
		assert.Len(t, strings.Split(line, ", "), 20)
	}
	assert.Contains(t, lines[1], "Acme Net")
	assert.Contains(t, lines[1], "3/7/2026")
}

func TestWriterReopenAppends(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2026, time.March, 7, 9, 5, 0, 0, time.UTC)

	w, err := New(dir, start)
	require.NoError(t, err)
	require.NoError(t, w.Append(testRecord("12.3")))
	require.NoError(t, w.Append(testRecord("14.0")))
	require.NoError(t, w.Close())

	before, err := os.ReadFile(w.Path())
	require.NoError(t, err)

	// Reopen for the same start time: no second header, prior rows intact.
	w2, err := New(dir, start)
	require.NoError(t, err)
	require.NoError(t, w2.Append(testRecord("15.5")))
	require.NoError(t, w2.Close())

	after, err := os.ReadFile(w.Path())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(after), string(before)))

	lines := strings.Split(strings.TrimRight(string(after), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, 1, strings.Count(string(after), "Date, Time,"))
}

func TestWriterBadDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "does", "not", "exist"), time.Now())
	require.Error(t, err)
}
