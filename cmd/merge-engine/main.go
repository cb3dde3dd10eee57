package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	var stdinMode bool
	var checkMode bool
	var verbose bool

	root := &cobra.Command{
		Use:   "merge-engine [base] [left] [right] [path]",
		Short: "Three-way merge engine with a layered conflict-resolution pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case stdinMode:
				return runStdin(cmd, verbose)
			case checkMode:
				return runCheck(cmd, args, verbose)
			default:
				return runPositional(cmd, args, verbose)
			}
		},
	}

	root.Flags().BoolVar(&stdinMode, "stdin", false, "read conflict-marked text from stdin and write the resolved text to stdout")
	root.Flags().BoolVar(&checkMode, "check", false, "resolve without writing; report the unresolved conflict count")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline stage timing to stderr")

	return root
}
