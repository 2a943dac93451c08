/*
Package operation implements the sanitizing pass over a file or directory.

	+-------------+
	|     Run     |
	| (file/dir)  |
	+------+------+
	       |
	+------+------+
	| Candidates  |
	| (*.py glob) |
	+------+------+
	       |
	+------+------+
	| SanitizeFile|
	| (read/strip |
	|  /rewrite)  |
	+-------------+

🔄 Flow:
1. Stat the target; regular files are sanitized directly, directories are
   walked and filtered with a doublestar pattern
2. Each candidate is read whole, checked for valid UTF-8 and stripped
3. Files with matches are truncated and rewritten in place; others are
   never written
4. Every result is printed and counted into a status.Report

⚠️ Rewrites are destructive. There is no backup, no temp file and no
retry, so a failed write can leave a file truncated.

🔍 Example:

	ctx = log.NewContext(ctx, log.New(os.Stdout, zlog))
	s, err := operation.New(operation.Options{})
	report, err := s.Run(ctx, "./src")
*/
package operation
