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

import "strings"

// Marker labels recognized in the utility's console report. Matching is
// case-insensitive substring containment, not anchored to line start.
const (
	markerServer     = "Server:"
	markerISP        = "ISP:"
	markerLatency    = "Latency:"
	markerDownload   = "Download:"
	markerUpload     = "Upload:"
	markerPacketLoss = "Packet Loss:"
	markerURL        = "URL:"
)

// ServerInfo holds the sub-fields of a "Server:" line.
type ServerInfo struct {
	Name   string
	State  string
	NodeID string
}

// Throughput holds the sub-fields of a "Download:" or "Upload:" line:
// a speed value/unit and the parenthesized data-used size value/unit.
type Throughput struct {
	Speed     string
	SpeedUnit string
	Size      string
	SizeUnit  string
}

// LatencyInfo holds the sub-fields of a "Latency:" line: the latency
// value/unit and the parenthesized jitter value/unit.
type LatencyInfo struct {
	Value      string
	Unit       string
	Jitter     string
	JitterUnit string
}

// after reports whether line contains marker (case-insensitive) and
// returns the trimmed text following its first occurrence.
func after(line, marker string) (string, bool) {
	idx := strings.Index(strings.ToLower(line), strings.ToLower(marker))
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(line[idx+len(marker):]), true
}

// splitParen splits s into the segment before the first "(" and the
// segment enclosed by the parentheses. A missing "(" is an extraction
// failure for both segments.
func splitParen(s string) (pre, paren string, ok bool) {
	open := strings.Index(s, "(")
	if open < 0 {
		return "", "", false
	}
	pre = strings.TrimSpace(s[:open])
	paren = s[open+1:]
	if end := strings.Index(paren, ")"); end >= 0 {
		paren = paren[:end]
	}
	return pre, strings.TrimSpace(paren), true
}

// valueUnit splits "12.3 ms" on the first space. A missing space is an
// extraction failure; both parts must be non-empty.
func valueUnit(s string) (value, unit string, ok bool) {
	value, unit, ok = strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	unit = strings.TrimSpace(unit)
	return value, unit, value != "" && unit != ""
}

// ExtractServer decomposes a "Server: <name>, <state> (id = <id>)" line.
// Sub-fields whose split points are absent stay empty; the caller
// substitutes the sentinel for them.
func ExtractServer(line string) (ServerInfo, bool) {
	rest, ok := after(line, markerServer)
	if !ok {
		return ServerInfo{}, false
	}

	var info ServerInfo
	name, remainder, found := strings.Cut(rest, ",")
	if !found {
		return info, true
	}
	info.Name = strings.TrimSpace(name)

	if pre, paren, ok := splitParen(remainder); ok {
		info.State = pre
		info.NodeID = strings.TrimSpace(strings.Replace(paren, "id = ", "", 1))
	}
	return info, true
}

// ExtractISP extracts the provider name from an "ISP: <name>" line.
func ExtractISP(line string) (string, bool) {
	return after(line, markerISP)
}

// ExtractLatency decomposes a "Latency: <v> <u> (jitter: <v> <u>)" line.
func ExtractLatency(line string) (LatencyInfo, bool) {
	rest, ok := after(line, markerLatency)
	if !ok {
		return LatencyInfo{}, false
	}

	var info LatencyInfo
	pre, paren, ok := splitParen(rest)
	if !ok {
		// No parenthesized jitter segment; the pre-paren split is gone
		// with it, so only a bare "value unit" remainder can be salvaged.
		if v, u, ok := valueUnit(rest); ok {
			info.Value, info.Unit = v, u
		}
		return info, true
	}

	if v, u, ok := valueUnit(pre); ok {
		info.Value, info.Unit = v, u
	}
	if v, u, ok := valueUnit(strings.Replace(paren, "jitter:", "", 1)); ok {
		info.Jitter, info.JitterUnit = v, u
	}
	return info, true
}

// ExtractDownload decomposes a "Download: <v> <u> (data used: <v> <u>)" line.
func ExtractDownload(line string) (Throughput, bool) {
	return extractThroughput(line, markerDownload)
}

// ExtractUpload decomposes an "Upload: <v> <u> (data used: <v> <u>)" line.
func ExtractUpload(line string) (Throughput, bool) {
	return extractThroughput(line, markerUpload)
}

func extractThroughput(line, marker string) (Throughput, bool) {
	rest, ok := after(line, marker)
	if !ok {
		return Throughput{}, false
	}

	var tp Throughput
	pre, paren, ok := splitParen(rest)
	if !ok {
		if v, u, ok := valueUnit(rest); ok {
			tp.Speed, tp.SpeedUnit = v, u
		}
		return tp, true
	}

	if v, u, ok := valueUnit(pre); ok {
		tp.Speed, tp.SpeedUnit = v, u
	}
	if v, u, ok := valueUnit(strings.Replace(paren, "data used:", "", 1)); ok {
		tp.Size, tp.SizeUnit = v, u
	}
	return tp, true
}

// ExtractPacketLoss extracts the value from a "Packet Loss: <value>"
// line. The whole remainder is the value; there is no sub-split.
func ExtractPacketLoss(line string) (string, bool) {
	return after(line, markerPacketLoss)
}

// ExtractResultURL extracts the reference from a "Result URL: <url>"
// line. Only the "URL:"-containing line qualifies.
func ExtractResultURL(line string) (string, bool) {
	return after(line, markerURL)
}
