/*
Package status manages the asset tree on disk and tracks what happened to
each of its files.

	            +-------------+
	            |   Manager   |
	            | (asset tree)|
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Entries |
	| (rooted)  |           | (report)|
	+-----------+           +---------+

🎯 Purpose:
- Rooted file operations for the patch steps (exists, read, atomic write,
  rename with parent creation)
- Tree level helpers used by the pipeline (copy with ignore globs, prune of
  empty directories, removal)
- Per file status tracking with console output and an end of run summary

🤝 Interfaces:
- FileManager: rooted file operations
- StatusReporter: status tracking
- FileFormatter: summary formatting
*/
package status
