/*
Package operation wires scanning, header rewriting and status tracking
into a single run.

	+----------+     +----------+     +----------+
	| Scanner  | --> | Rewrite  | --> |  Status  |
	| (files)  |     | (policy) |     | (report) |
	+----------+     +----------+     +----------+

🎯 Purpose:
- Enumerates candidate files through the scanner
- Applies the configured header policy to each file
- Writes content back only when it actually changed
- Isolates per-file failures so one bad file never stops the run

🔄 Flow:
1. Scan the root for files matching the configured extensions
2. Read each file and verify it is decodable text
3. Classify and rewrite its header through the policy
4. Write back on change (unless dry-run), track the outcome
5. Report the accumulated summary

⚡ Key Responsibilities:
- Per-file read/rewrite/write lifecycle
- ReadError/WriteError recovery and counting
- Dry-run support
- Deterministic sequential processing
*/
package operation
