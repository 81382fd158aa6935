package tui

import (
	"github.com/artashes-sanoyan/elide/internal/storage"
)

type View int

const (
	ViewDocuments View = iota
	ViewReader
	ViewAddDocument
	ViewDeleteConfirm
)

// docItem adapts a stored document for the bubbles list. The description is
// precomputed by the truncation engine whenever the list width changes.
type docItem struct {
	doc     *storage.Document
	summary string
}

func (d docItem) Title() string       { return d.doc.Title }
func (d docItem) Description() string { return d.summary }
func (d docItem) FilterValue() string { return d.doc.Title + " " + d.doc.Path }

// Messages passed through the bubbletea event loop.

type docsLoadedMsg struct {
	docs []*storage.Document
}

type docRenderedMsg struct {
	content string
}

type docAddedMsg struct {
	doc *storage.Document
	err error
}

type docDeletedMsg struct {
	err error
}

type errorMsg struct {
	err error
}
