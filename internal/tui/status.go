package tui

import (
	"fmt"
	"strings"
)

// StatusKind indicates severity for status messages.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarn
	StatusError
)

// Canonical short status messages used across the app.
const (
	MsgAddingDocument  = "Adding document…"
	MsgDeleting        = "Deleting…"
	MsgLoadingDocument = "Loading document…"
	MsgDocumentDeleted = "Document deleted"
	MsgNoDocuments     = "No documents"
)

func MsgAddedDocument(title string) string {
	return fmt.Sprintf("Added '%s'", strings.TrimSpace(title))
}

func MsgDocumentCount(n int) string {
	if n == 1 {
		return "1 document"
	}
	return fmt.Sprintf("%d documents", n)
}

func MsgTruncated(didTruncate bool) string {
	if didTruncate {
		return "preview"
	}
	return "full"
}
