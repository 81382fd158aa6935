package tui

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/artashes-sanoyan/elide/internal/debuglog"
	"github.com/artashes-sanoyan/elide/internal/storage"
	"github.com/artashes-sanoyan/elide/internal/validation"
)

func (a *App) loadDocuments() tea.Cmd {
	return func() tea.Msg {
		docs, err := a.store.GetAllDocuments()
		if err != nil {
			return errorMsg{err: wrapErr("loading documents", err)}
		}
		return docsLoadedMsg{docs: docs}
	}
}

// renderDocument produces the rich terminal rendering of a document: glamour
// for markdown, the raw body otherwise. Truncation happens afterwards, on the
// rendered form.
func (a *App) renderDocument(doc *storage.Document) tea.Cmd {
	return func() tea.Msg {
		content := doc.Body
		if doc.Markdown {
			renderer, err := a.getRenderer()
			if err != nil {
				return errorMsg{err: wrapErr("creating renderer", err)}
			}
			rendered, err := renderer.Render(doc.Body)
			if err != nil {
				return errorMsg{err: wrapErr("rendering markdown", err)}
			}
			content = rendered
		}
		return docRenderedMsg{content: strings.TrimRight(content, "\n")}
	}
}

// addDocument imports a file into the library. Re-importing the same path
// refreshes the stored body.
func (a *App) addDocument(path string) tea.Cmd {
	return func() tea.Msg {
		validated, err := a.validator.ValidateFile(path)
		if err != nil {
			return docAddedMsg{err: wrapErr("validating path", err)}
		}

		body, err := os.ReadFile(validated)
		if err != nil {
			return docAddedMsg{err: wrapErr("reading file", err)}
		}

		doc := &storage.Document{
			ID:       storage.DocumentID(validated),
			Path:     validated,
			Title:    strings.TrimSuffix(filepath.Base(validated), filepath.Ext(validated)),
			Body:     string(body),
			Markdown: validation.IsMarkdown(validated),
			AddedAt:  time.Now(),
		}

		if err := a.store.SaveDocument(doc); err != nil {
			return docAddedMsg{err: wrapErr("saving document", err)}
		}

		debuglog.Infof("imported document %s (%d bytes)", doc.Path, len(doc.Body))
		return docAddedMsg{doc: doc}
	}
}

func (a *App) deleteDocument(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.store.DeleteDocument(id); err != nil {
			return docDeletedMsg{err: wrapErr("deleting document", err)}
		}
		return docDeletedMsg{}
	}
}

// touchDocument records the open timestamp; failures are logged, not surfaced.
func (a *App) touchDocument(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.store.TouchDocument(id); err != nil {
			debuglog.Warnf("touching document %s: %v", id, err)
		}
		return nil
	}
}
