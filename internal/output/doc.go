// Package output provides structured output handling for the stencil CLI.
//
// This package handles both human-readable and JSON output formats, so every
// command works equally well for human users and automated callers.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches format
// based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "workspace initialized"})
//	printer.Error(err)
//	printer.Print("wrote %s\n", path)
//
// # Exit Codes
//
// The package defines standard exit codes and error constructors:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, unknown model, missing argument)
//	output.ExitSystemError // 2: System error (I/O failure)
//	output.ExitConflict    // 3: Conflict (output file already exists)
//
// Errors created with NewUserError, NewSystemError, and NewConflictError carry
// their code through to both the JSON error output and the process exit code.
package output
