package booknav

import (
	"fmt"
	"strings"
)

// CompileError wraps a failure of the compiler API with context.
type CompileError struct {
	message string
	cause   error
}

func (e *CompileError) Error() string {
	var msg strings.Builder
	fmt.Fprint(&msg, e.message)
	if e.cause != nil {
		fmt.Fprint(&msg, ": ", e.cause)
	}
	return msg.String()
}

func (e *CompileError) Unwrap() error {
	return e.cause
}

func newCompileError(message string, cause error) *CompileError {
	return &CompileError{message: message, cause: cause}
}

// MissingDocumentError marks a book whose outline document could not be
// loaded. It fails that single book, never the whole build.
type MissingDocumentError struct {
	Book  string //book name
	cause error
}

func (e *MissingDocumentError) Error() string {
	return fmt.Sprintf("outline document of book %q unavailable: %s", e.Book, e.cause)
}

func (e *MissingDocumentError) Unwrap() error {
	return e.cause
}
