// Copyright 2025 walteh LLC
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

package status

import (
	"github.com/walteh/unemoji/pkg/text"
)

// 📊 FileStatus represents what happened to a single file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusClean                // File read fine and had nothing to remove
	StatusSanitized            // File had emoji and was rewritten
	StatusFailed               // File could not be read, decoded or written
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusSanitized:
		return "sanitized"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileResult is the outcome of sanitizing one file
type FileResult struct {
	Path    string     // Path as given to the sanitizer
	Status  FileStatus // What happened
	Matches []string   // Removed code points in scan order
	Err     error      // Set when Status is StatusFailed
}

// Sanitized reports whether the file was rewritten.
func (r FileResult) Sanitized() bool {
	return r.Status == StatusSanitized
}

// Distinct returns the distinct removed code points, concatenated.
func (r FileResult) Distinct() string {
	return text.Distinct(r.Matches)
}

// 📈 Report holds the run statistics
type Report struct {
	FilesProcessed int // Every candidate visited
	FilesSanitized int // Candidates that were rewritten
}

// Track counts a file result.
func (r *Report) Track(res FileResult) {
	r.FilesProcessed++
	if res.Sanitized() {
		r.FilesSanitized++
	}
}
