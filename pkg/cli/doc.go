/*
Package cli provides command-line interface utilities for the explainer.

The cli package includes output formatters, progress reporters, and common
CLI helpers used by the explainer command.

Output Formatting:

The cli package supports text and JSON output formats for displaying
command results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, snapshots); err != nil {
		return err
	}

Progress Reporting:

For model downloads, use the byte progress reporter:

	progress := cli.NewByteProgress("tinyllama", os.Stderr)
	progress.Start(totalBytes)
	// transfer loop calls progress.Update(written)
	progress.Finish()

Signal Handling:

For graceful cancellation on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
