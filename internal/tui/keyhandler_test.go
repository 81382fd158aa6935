package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyHandler_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyCtrlQ},
	} {
		app := newTestApp()
		app.view = ViewDocuments

		_, cmd := app.keyHandler.HandleKey(key)
		require.NotNil(t, cmd, "key %s should produce a command", key.String())
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestKeyHandler_AddDocumentInput(t *testing.T) {
	app := newTestApp()
	app.view = ViewAddDocument
	app.textInput.Focus()

	t.Run("blank input is ignored", func(t *testing.T) {
		app.textInput.SetValue("   ")
		_, cmd := app.keyHandler.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Nil(t, cmd)
	})

	t.Run("path input produces an import command", func(t *testing.T) {
		app.textInput.SetValue("/tmp/doc.txt")
		_, cmd := app.keyHandler.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
		assert.NotNil(t, cmd)
		assert.Equal(t, MsgAddingDocument, app.status)
	})

	t.Run("typing is delegated to the input", func(t *testing.T) {
		app.textInput.SetValue("")
		app.keyHandler.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
		assert.Equal(t, "a", app.textInput.Value())
	})
}

func TestKeyHandler_DeleteConfirm(t *testing.T) {
	app := newTestApp()
	app.view = ViewDeleteConfirm
	app.docToDelete = testDocs()[0]

	_, cmd := app.keyHandler.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd, "confirming should produce a delete command")
	assert.Equal(t, MsgDeleting, app.status)
}

func TestKeyHandler_DeleteConfirmWithoutSelection(t *testing.T) {
	app := newTestApp()
	app.view = ViewDeleteConfirm
	app.docToDelete = nil

	_, cmd := app.keyHandler.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestKeyHandler_ReloadProducesCommand(t *testing.T) {
	app := newTestApp()
	app.view = ViewDocuments

	_, cmd := app.keyHandler.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.NotNil(t, cmd)
}

func TestKeyHandler_SpaceTogglesInReader(t *testing.T) {
	app := newTestApp()
	app.view = ViewReader
	app.currentDoc = testDocs()[0]
	app.preview.SetSource(testDocs()[0].Body)
	app.width = 24
	app.recomputePreview()
	require.True(t, app.preview.Truncated())

	app.keyHandler.HandleKey(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, app.preview.Expanded())
}

func TestNavigateBack_ClearsTransientState(t *testing.T) {
	app := newTestApp()
	app.view = ViewDeleteConfirm
	app.docToDelete = testDocs()[0]
	app.err = assert.AnError

	app.keyHandler.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewDocuments, app.view)
	assert.Nil(t, app.docToDelete)
	assert.NoError(t, app.err)
}
