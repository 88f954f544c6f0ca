package catalog

import (
	"fmt"
	"io"
)

// transcript writes the console lines of the catalog. Write errors are ignored,
// a broken console must not fail a catalog operation.
type transcript struct {
	w io.Writer
}

func newTranscript(w io.Writer) *transcript {
	return &transcript{w: w}
}

func (t *transcript) copiesAdded(count int, title string) {
	t.printf("%d copies of %s added to the library.\n", count, title)
}

func (t *transcript) borrowed(title string) {
	t.printf("Book '%s' has been borrowed.\n", title)
}

func (t *transcript) notAvailable(title string) {
	t.printf("Book '%s' not found or not available.\n", title)
}

func (t *transcript) returned(title string) {
	t.printf("Book '%s' is now available.\n", title)
}

func (t *transcript) notBorrowed(title string) {
	t.printf("Book '%s' not found or was not borrowed.\n", title)
}

func (t *transcript) printf(format string, args ...any) {
	if t == nil {
		return
	}

	_, _ = fmt.Fprintf(t.w, format, args...)
}
