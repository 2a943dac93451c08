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
	"fmt"

	"github.com/fatih/color"
)

// ClosingMessage is printed after the summary line of every successful run.
const ClosingMessage = "Your code is now 100% less expressive but 100% more functional!"

// 🎯 FormatFileResult formats a per-file line. Clean files produce no line.
func FormatFileResult(res FileResult) (string, bool) {
	switch res.Status {
	case StatusSanitized:
		return fmt.Sprintf("🚨 %s %s - Removed %d emoji(s): %s",
			color.YellowString("SANITIZED:"),
			res.Path,
			len(res.Matches),
			res.Distinct(),
		), true
	case StatusFailed:
		return fmt.Sprintf("💥 %s %s: %v",
			color.RedString("Failed to process"),
			res.Path,
			res.Err,
		), true
	default:
		return "", false
	}
}

// 📊 FormatSummary formats the two footer lines
func FormatSummary(r Report) []string {
	return []string{
		fmt.Sprintf("📊 Summary: Processed %d file(s), sanitized %d file(s) with emojis",
			r.FilesProcessed, r.FilesSanitized),
		fmt.Sprintf("✅ %s", color.GreenString(ClosingMessage)),
	}
}

// FormatInvalidTarget formats the diagnostic for a path that is neither a
// regular file nor a directory.
func FormatInvalidTarget(path string) string {
	return fmt.Sprintf("❓ '%s' is neither a file nor directory. Are you trying to be clever?", path)
}

// FormatUsage formats the usage lines for program.
func FormatUsage(program string) []string {
	return []string{
		fmt.Sprintf("Usage: %s <file_or_directory>", program),
		fmt.Sprintf("Example: %s ./src  # Because your src folder is probably infected", program),
	}
}
