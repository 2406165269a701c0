package cli

// RunWithOutput runs the CLI writing command output to the given writer
var RunWithOutput = run
