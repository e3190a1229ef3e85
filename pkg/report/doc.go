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

// Package report parses the human-readable console report of the Ookla
// Speedtest CLI into a structured measurement record.
//
// # Report Format
//
// A successful run of the utility prints a multi-line report with lines
// recognizable by literal marker labels:
//
//	   Speedtest by Ookla
//
//	      Server: Acme Net, California (id = 4821)
//	         ISP: Comcast Cable
//	     Latency:    12.30 ms  (jitter: 1.10 ms)
//	    Download:    95.40 Mbps (data used: 120.5 MB)
//	      Upload:    11.20 Mbps (data used: 18.1 MB)
//	 Packet Loss:     0.0%
//	  Result URL: https://www.speedtest.net/result/c/0123
//
// # Extraction Model
//
// Each marker has a small pure extractor function (ExtractServer,
// ExtractLatency, ...) that matches the marker by case-insensitive
// substring containment and decomposes the remainder into sub-fields.
// Values are extracted as verbatim substrings, never parsed as numbers,
// so units and formatting survive into the log unchanged.
//
// A missing split point (the first "(", the first space, the first
// comma) is an extraction failure for the affected sub-field only.
// Extractors never return an error; Parse substitutes the Sentinel for
// every field that stays empty after the scan, so a partial or garbled
// report degrades field by field rather than dropping the record.
package report
