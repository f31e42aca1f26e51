package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"booknav"
	"booknav/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check [BOOK...]",
	Short: "report outline lines that look like markup but are ignored",
	Long: "Scan book outlines for near-miss lines, e.g. a numbered item with\n" +
		"an unterminated bracket. Such lines compile to nothing, which is\n" +
		"usually not what the author intended. Without arguments all\n" +
		"configured books are checked.",
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	api, books, err := makeCompiler()
	if err != nil {
		return err
	}

	selected := books
	if len(args) > 0 {
		byName := make(map[string]booknav.Book, len(books))
		for _, book := range books {
			byName[book.Name] = book
		}
		selected = nil
		for _, name := range args {
			book, known := byName[name]
			if !known {
				return fmt.Errorf("unknown book %q", name)
			}
			selected = append(selected, book)
		}
	}

	printer := makePrinter()
	total := 0
	for _, book := range selected {
		findings, err := api.LintBook(book)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		for _, finding := range findings {
			printer.Out(output.Required, "%s/TOC.md:%d: %s\n    %s\n",
				book.Name, finding.LineNumber, finding.Hint, finding.Line)
		}
		total += len(findings)
	}
	printer.Out(output.Normal, "%d suspicious %s found\n", total, output.Plural(total, "line", "lines"))
	return nil
}
