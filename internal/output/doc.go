// Package output provides structured output handling for the casebook CLI.
//
// Commands serve two audiences: humans reading a terminal and retrieval
// agents consuming structured results. The Printer switches between the two
// based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.KeyValue("Category", "unit-test")
//	printer.Error(err)
//
// In JSON mode errors are emitted as {"error": "message", "code": N} on the
// main writer; in human mode they are styled and routed to stderr.
//
// # Exit Codes
//
// Errors carry exit codes via ExitError:
//
//	output.ExitSuccess     // 0: success
//	output.ExitUserError   // 1: bad args, unknown entry, invalid top_k
//	output.ExitSystemError // 2: I/O failure, malformed knowledge base
//
// Use the constructors (NewUserError, NewSystemError, ...) so the code
// reaches both the JSON error payload and the process exit status.
package output
