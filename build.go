package booknav

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/n2code/ndocid"

	"booknav/internal/nav"
	"booknav/internal/outline"
	"booknav/internal/output"
)

func (c *compiler) CompileBook(book Book) (*nav.Group, error) {
	document, err := c.store.ReadOutline(book)
	if err != nil {
		return nil, &MissingDocumentError{Book: book.Name, cause: err}
	}
	return outline.Parse(book.Title, document), nil
}

// BuildNavigation compiles every book concurrently (outlines are independent
// and compilation is pure once the document is loaded) and assembles the map
// sequentially in input order so that duplicate root paths resolve to the
// later book deterministically.
func (c *compiler) BuildNavigation(books []Book) BuildResult {
	type compilation struct {
		tree *nav.Group
		err  error
	}
	compilations := make([]compilation, len(books))

	var workers sync.WaitGroup
	for i, book := range books {
		workers.Add(1)
		go func(slot int, book Book) {
			defer workers.Done()
			tree, err := c.CompileBook(book)
			compilations[slot] = compilation{tree: tree, err: err}
		}(i, book)
	}
	workers.Wait()

	result := BuildResult{Books: books, Navigation: make(nav.Map, len(books))}
	for i, book := range books {
		if err := compilations[i].err; err != nil {
			fmt.Fprintf(c.verboseOut, "book %s skipped: %s\n", book.Name, err)
			result.Failures = append(result.Failures, BookFailure{Book: book, Err: err})
			continue
		}
		if _, taken := result.Navigation[book.RootPath]; taken {
			fmt.Fprintf(c.extraOut, "root path %s redefined by book %s (later entry wins)\n", book.RootPath, book.Name)
		}
		result.Navigation[book.RootPath] = compilations[i].tree
		fmt.Fprintf(c.verboseOut, "book %s compiled under %s\n", book.Name, book.RootPath)
	}
	return result
}

// sidebarManifest is the persisted form of a build result. The revision is a
// time-derived textual ID so that consecutive builds are distinguishable at
// a glance.
type sidebarManifest struct {
	Revision  string   `json:"revision"`
	Generated int64    `json:"generated"`        //unix seconds
	Failed    []string `json:"failed,omitempty"` //names of books missing from the sidebar
	Sidebar   nav.Map  `json:"sidebar"`
}

const workInProgressFileSuffix = ".wip"

func (c *compiler) WriteSidebar(result BuildResult, path string) (err error) {
	defer func() {
		if err != nil {
			err = newCompileError("writing sidebar manifest failed", err)
		}
	}()

	now := time.Now().Unix()
	manifest := sidebarManifest{
		Revision:  ndocid.EncodeUint64(uint64(now)),
		Generated: now,
		Sidebar:   result.Navigation,
	}
	for _, failure := range result.Failures {
		manifest.Failed = append(manifest.Failed, failure.Book.Name)
	}

	tempPath := path + workInProgressFileSuffix
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "\t")
	if err = encoder.Encode(manifest); err != nil {
		file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return err
	}
	if err = os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("replacing manifest (%s) with temporary working copy (%s) failed: %w", path, tempPath, err)
	}
	fmt.Fprintf(c.verboseOut, "sidebar manifest %s written to %s\n", manifest.Revision, path)
	return nil
}

func (c *compiler) RenderTree(result BuildResult, allowEscapes bool) string {
	visual := output.NewVisualNavTree("navigation", allowEscapes)
	failedNames := make(map[string]bool)
	for _, failure := range result.Failures {
		failedNames[failure.Book.Name] = true
	}
	//of duplicate root paths only the winning (i.e. last compiled) book is shown
	winners := make(map[string]int)
	for i, book := range result.Books {
		if !failedNames[book.Name] {
			winners[book.RootPath] = i
		}
	}
	for i, book := range result.Books {
		if failedNames[book.Name] || winners[book.RootPath] != i {
			continue
		}
		if root, compiled := result.Navigation[book.RootPath]; compiled {
			visual.AddBook(book.RootPath, root)
		}
	}
	return visual.Render()
}

func (c *compiler) LintBook(book Book) ([]outline.Finding, error) {
	document, err := c.store.ReadOutline(book)
	if err != nil {
		return nil, &MissingDocumentError{Book: book.Name, cause: err}
	}
	return outline.Lint(document), nil
}
