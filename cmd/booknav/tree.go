package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"booknav/internal/output"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "display the compiled navigation as a tree",
	RunE:  runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	api, books, err := makeCompiler()
	if err != nil {
		return err
	}
	result := api.BuildNavigation(books)

	allowEscapes := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Fprint(os.Stdout, api.RenderTree(result, allowEscapes))

	colorErrors := term.IsTerminal(int(os.Stderr.Fd()))
	for _, failure := range result.Failures {
		message := failure.Err.Error()
		if colorErrors {
			message = output.TerminalFormatAsError(message)
		}
		fmt.Fprintln(os.Stderr, message)
	}
	return nil
}
