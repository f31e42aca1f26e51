// Package booknav compiles per-book markdown outlines into the nested
// navigation configuration consumed by the site renderer's sidebar.
package booknav

import (
	"io"
	"os"

	"booknav/internal/nav"
	"booknav/internal/outline"
)

type VerbosityLevel int

const (
	DefaultVerbosity VerbosityLevel = iota
	VerboseMode
	QuietMode
)

// CreateConfig holds configuration switches that concern all calls to the
// compiler API. The zero value is a sensible default.
type CreateConfig struct {
	Verbosity VerbosityLevel
}

// BookFailure records one book that could not be compiled.
type BookFailure struct {
	Book Book
	Err  error
}

// BuildResult is the outcome of one navigation build. A result with failures
// is still usable, the navigation map simply lacks the failed books.
type BuildResult struct {
	Books      []Book //the descriptors the build ran over, in input order
	Navigation nav.Map
	Failures   []BookFailure
}

type Compiler interface {

	// CompileBook loads and compiles a single book's outline into its
	// navigation tree. The root group is labeled with the book's title.
	CompileBook(book Book) (*nav.Group, error)

	// BuildNavigation compiles all books and merges their trees into one
	// navigation map keyed by root path. Books compile independently; a
	// failed book is reported in the result and does not abort the rest.
	// If two books share a root path the later one wins.
	BuildNavigation(books []Book) BuildResult

	// WriteSidebar persists a build result as the JSON sidebar manifest
	// consumed by the site renderer. The write is atomic, a partially
	// written manifest is never visible under the target path.
	WriteSidebar(result BuildResult, path string) error

	// RenderTree returns a human-readable tree view of a build result.
	RenderTree(result BuildResult, allowEscapes bool) string

	// LintBook reports outline lines of a single book which resemble
	// markup but are dropped during compilation.
	LintBook(book Book) ([]outline.Finding, error)
}

type compiler struct {
	store      ContentStore
	extraOut   io.Writer //output for convenience (repeats context)
	verboseOut io.Writer //most output, talkative
}

// New creates a compiler that reads outline documents from the given store.
// Failures never surface on a stream, they are part of each build result.
func New(store ContentStore, config CreateConfig) Compiler {
	instance := &compiler{store: store, extraOut: io.Discard, verboseOut: io.Discard}
	switch config.Verbosity {
	case VerboseMode:
		instance.verboseOut = os.Stdout
		fallthrough
	case DefaultVerbosity:
		instance.extraOut = os.Stdout
	}
	return instance
}
