// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"fmt"
	"strings"
	"time"
)

// Parse scans the full captured output of one measurement run and
// assembles a fully populated Record. Each line is offered to every
// extractor (a line matches at most one marker in practice, but no
// mutual exclusivity is assumed). Fields that no extractor filled are
// replaced with the Sentinel, so absence of expected markers degrades
// individual fields, never the whole record.
//
// Parse never fails and is idempotent: the same text and timestamp
// always yield an identical Record.
func Parse(text string, ts time.Time) Record {
	rec := Record{
		Date: fmt.Sprintf("%d/%d/%d", int(ts.Month()), ts.Day(), ts.Year()),
		Time: ts.Format("15:04"),
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if s, ok := ExtractServer(line); ok {
			rec.Server = s.Name
			rec.State = s.State
			rec.NodeID = s.NodeID
		}
		if v, ok := ExtractISP(line); ok {
			rec.ISP = v
		}
		if l, ok := ExtractLatency(line); ok {
			rec.Latency = l.Value
			rec.LatencyUnit = l.Unit
			rec.Jitter = l.Jitter
			rec.JitterUnit = l.JitterUnit
		}
		if d, ok := ExtractDownload(line); ok {
			rec.DownSpeed = d.Speed
			rec.DownSpeedUnit = d.SpeedUnit
			rec.DownSize = d.Size
			rec.DownSizeUnit = d.SizeUnit
		}
		if u, ok := ExtractUpload(line); ok {
			rec.UpSpeed = u.Speed
			rec.UpSpeedUnit = u.SpeedUnit
			rec.UpSize = u.Size
			rec.UpSizeUnit = u.SizeUnit
		}
		if v, ok := ExtractPacketLoss(line); ok {
			rec.PacketLoss = v
		}
		if v, ok := ExtractResultURL(line); ok {
			rec.ResultURL = v
		}
	}

	rec.fillMissing()
	return rec
}
