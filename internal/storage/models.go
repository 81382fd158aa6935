package storage

import (
	"time"
)

// Document is one entry in the library: a text or markdown file imported for
// viewing. Body is stored verbatim; rendering and truncation happen at view
// time from the latest configuration and width.
type Document struct {
	ID       string    `json:"id"`
	Path     string    `json:"path"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Markdown bool      `json:"markdown"`
	AddedAt  time.Time `json:"added_at"`
	OpenedAt time.Time `json:"opened_at"`
}
