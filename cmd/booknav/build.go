package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"booknav/internal/output"
)

var (
	outputFile string
	strict     bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "compile all books and write the sidebar manifest",
	Long: "Compile every configured book's outline and write the merged\n" +
		"navigation as a JSON manifest. A book whose outline is missing is\n" +
		"reported and omitted, the remaining books still build.",
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&outputFile, "out", "o", "sidebar.json", "manifest output path")
	buildCmd.Flags().BoolVar(&strict, "strict", false, "exit nonzero if any book could not be compiled")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	api, books, err := makeCompiler()
	if err != nil {
		return err
	}
	result := api.BuildNavigation(books)
	if err := api.WriteSidebar(result, outputFile); err != nil {
		return err
	}

	printer := makePrinter()
	printer.Out(output.Normal, "%d of %d %s compiled into %s\n",
		len(books)-len(result.Failures), len(books), output.Plural(books, "book", "books"), outputFile)
	for _, failure := range result.Failures {
		printer.Out(output.Error, "%s\n", failure.Err)
	}
	if strict && len(result.Failures) > 0 {
		return fmt.Errorf("%d %s failed", len(result.Failures), output.Plural(result.Failures, "book", "books"))
	}
	return nil
}
