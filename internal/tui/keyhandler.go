package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/artashes-sanoyan/elide/internal/config"
)

type KeyHandler struct {
	app         *App
	config      *config.Config
	modifierKey string
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	modifierKey := cfg.Keys.Modifier + "+"
	return &KeyHandler{app: app, config: cfg, modifierKey: modifierKey}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if kh.isInTextInputMode() {
		return kh.handleTextInputMode(msg)
	}

	// While the list filter is active, every key belongs to the filter.
	if kh.app.view == ViewDocuments && kh.app.docList.FilterState() == list.Filtering {
		return kh.delegateToCharm(msg)
	}

	if model, cmd, handled := kh.handleCustomKeys(key); handled {
		return model, cmd
	}

	return kh.delegateToCharm(msg)
}

func (kh *KeyHandler) isInTextInputMode() bool {
	return kh.app.view == ViewAddDocument && kh.app.textInput.Focused()
}

func (kh *KeyHandler) handleTextInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return kh.navigateBack()
	case "ctrl+c":
		return kh.app, tea.Quit
	case "enter":
		input := strings.TrimSpace(kh.app.textInput.Value())
		if input == "" {
			return kh.app, nil
		}
		kh.app.setStatus(MsgAddingDocument, StatusInfo)
		return kh.app, kh.app.addDocument(input)
	default:
		var cmd tea.Cmd
		kh.app.textInput, cmd = kh.app.textInput.Update(msg)
		return kh.app, cmd
	}
}

func (kh *KeyHandler) handleCustomKeys(key string) (tea.Model, tea.Cmd, bool) {
	a := kh.app

	switch key {
	case "ctrl+c", kh.modifierKey + kh.config.Keys.Bindings.Quit:
		return a, tea.Quit, true
	case "esc", kh.config.Keys.Bindings.Back:
		if a.view != ViewDocuments {
			model, cmd := kh.navigateBack()
			return model, cmd, true
		}
		return a, nil, false
	}

	switch a.view {
	case ViewDocuments:
		switch key {
		case kh.modifierKey + kh.config.Keys.Bindings.AddDocument:
			a.view = ViewAddDocument
			a.textInput.SetValue("")
			a.textInput.Focus()
			a.err = nil
			return a, nil, true
		case kh.modifierKey + kh.config.Keys.Bindings.DeleteDoc:
			if item, ok := a.docList.SelectedItem().(docItem); ok {
				a.docToDelete = item.doc
				a.view = ViewDeleteConfirm
			}
			return a, nil, true
		case kh.modifierKey + kh.config.Keys.Bindings.Reload:
			return a, a.loadDocuments(), true
		case "enter":
			if item, ok := a.docList.SelectedItem().(docItem); ok {
				return a, a.openDocument(item.doc), true
			}
			return a, nil, true
		}

	case ViewReader:
		switch key {
		case kh.config.Keys.Bindings.Toggle, " ":
			a.toggleExpand()
			return a, nil, true
		}

	case ViewDeleteConfirm:
		switch key {
		case "enter":
			if a.docToDelete != nil {
				a.setStatus(MsgDeleting, StatusInfo)
				return a, a.deleteDocument(a.docToDelete.ID), true
			}
			return a, nil, true
		}
	}

	return a, nil, false
}

func (kh *KeyHandler) navigateBack() (tea.Model, tea.Cmd) {
	a := kh.app

	switch a.view {
	case ViewReader, ViewAddDocument, ViewDeleteConfirm:
		a.view = ViewDocuments
		a.docToDelete = nil
		a.err = nil
	}

	return a, nil
}

func (kh *KeyHandler) delegateToCharm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app

	switch a.view {
	case ViewDocuments:
		var cmd tea.Cmd
		a.docList, cmd = a.docList.Update(msg)
		return a, cmd
	case ViewReader:
		if a.preview.Expanded() {
			var cmd tea.Cmd
			a.viewport, cmd = a.viewport.Update(msg)
			return a, cmd
		}
	case ViewAddDocument:
		var cmd tea.Cmd
		a.textInput, cmd = a.textInput.Update(msg)
		return a, cmd
	}

	return a, nil
}
