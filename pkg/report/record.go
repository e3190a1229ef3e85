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

// Sentinel is substituted for every record field that could not be
// extracted from the captured report text.
const Sentinel = "ERROR"

// Header is the fixed CSV column order for a serialized Record.
var Header = []string{
	"Date", "Time",
	"Server", "State", "NodeID",
	"ISP",
	"Latency", "LatencyUnit",
	"Jitter", "JitterUnit",
	"DownSpeed", "DownSpeedUnit",
	"DownSize", "DownSizeUnit",
	"UpSpeed", "UpSpeedUnit",
	"UpSize", "UpSizeUnit",
	"PacketLoss",
	"ResultURL",
}

// Record is one fully populated measurement row. All values are kept as
// verbatim substrings of the utility output (numeric-looking fields are
// never parsed as numbers, so values and units round-trip unchanged).
//
// Every field is always populated: either with the extracted value or
// with the Sentinel. A Record handed to the log writer is never
// partially absent.
type Record struct {
	Date string
	Time string

	Server string
	State  string
	NodeID string

	ISP string

	Latency     string
	LatencyUnit string
	Jitter      string
	JitterUnit  string

	DownSpeed     string
	DownSpeedUnit string
	DownSize      string
	DownSizeUnit  string

	UpSpeed     string
	UpSpeedUnit string
	UpSize      string
	UpSizeUnit  string

	PacketLoss string
	ResultURL  string
}

// Fields returns the record values in Header order.
func (r *Record) Fields() []string {
	return []string{
		r.Date, r.Time,
		r.Server, r.State, r.NodeID,
		r.ISP,
		r.Latency, r.LatencyUnit,
		r.Jitter, r.JitterUnit,
		r.DownSpeed, r.DownSpeedUnit,
		r.DownSize, r.DownSizeUnit,
		r.UpSpeed, r.UpSpeedUnit,
		r.UpSize, r.UpSizeUnit,
		r.PacketLoss,
		r.ResultURL,
	}
}

// MissingFields returns the number of fields carrying the Sentinel.
func (r *Record) MissingFields() int {
	n := 0
	for _, f := range r.Fields() {
		if f == Sentinel {
			n++
		}
	}
	return n
}

// fillMissing replaces every empty field with the Sentinel so the
// record is fully populated regardless of what the extractors matched.
func (r *Record) fillMissing() {
	for _, f := range []*string{
		&r.Date, &r.Time,
		&r.Server, &r.State, &r.NodeID,
		&r.ISP,
		&r.Latency, &r.LatencyUnit,
		&r.Jitter, &r.JitterUnit,
		&r.DownSpeed, &r.DownSpeedUnit,
		&r.DownSize, &r.DownSizeUnit,
		&r.UpSpeed, &r.UpSpeedUnit,
		&r.UpSize, &r.UpSizeUnit,
		&r.PacketLoss,
		&r.ResultURL,
	} {
		if *f == "" {
			*f = Sentinel
		}
	}
}
