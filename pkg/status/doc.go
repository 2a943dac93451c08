/*
Package status tracks what happened to each file during a run and formats
the lines the user sees.

	+--------------+       +-----------+
	|  operation   | ----> |  Report   |
	| (per file)   |       | (counts)  |
	+------+-------+       +-----+-----+
	       |                     |
	+------+-------+       +-----+-----+
	|  FileResult  |       |  Format*  |
	+--------------+       +-----------+

🎯 Purpose:
- Carry the result of one file (clean, sanitized, failed) without
  raising errors past the sanitizer
- Count processed and sanitized files for the summary
- Own the exact wording of every console line

📝 Design Philosophy:
A Report is a plain value owned by whoever drives the run. Nothing here
touches the file system or keeps global state.
*/
package status
