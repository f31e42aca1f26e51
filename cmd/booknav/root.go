package main

import (
	"errors"

	"github.com/spf13/cobra"

	"booknav"
	"booknav/internal/output"
)

var (
	verbose   bool
	quiet     bool
	booksFile string
	sourceDir string
)

var rootCmd = &cobra.Command{
	Use:   "booknav",
	Short: "compile book outlines into the site navigation",
	Long: "booknav reads each book's TOC.md outline and compiles the nested\n" +
		"sidebar navigation consumed by the site renderer.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return errors.New("quiet mode and verbose mode are mutually exclusive")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "output more details on what is done")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "output only requested information")
	rootCmd.PersistentFlags().StringVarP(&booksFile, "books", "b", "books.json", "book configuration file")
	rootCmd.PersistentFlags().StringVarP(&sourceDir, "src", "s", "books", "directory containing one subdirectory per book")
}

func makeCompiler() (booknav.Compiler, []booknav.Book, error) {
	books, err := booknav.LoadBooks(booksFile)
	if err != nil {
		return nil, nil, err
	}
	store, err := booknav.NewDirStore(sourceDir)
	if err != nil {
		return nil, nil, err
	}
	var config booknav.CreateConfig
	if verbose {
		config.Verbosity = booknav.VerboseMode
	}
	if quiet {
		config.Verbosity = booknav.QuietMode
	}
	return booknav.New(store, config), books, nil
}

func makePrinter() output.Printer {
	classes := []output.Class{output.Required, output.Error, output.Normal}
	switch {
	case quiet:
		classes = []output.Class{output.Required, output.Error}
	case verbose:
		classes = append(classes, output.Verbose)
	}
	return output.NewPrinter(classes)
}
