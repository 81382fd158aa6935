package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/artashes-sanoyan/elide/internal/config"
	"github.com/artashes-sanoyan/elide/internal/debuglog"
	"github.com/artashes-sanoyan/elide/internal/measure"
	"github.com/artashes-sanoyan/elide/internal/storage"
	"github.com/artashes-sanoyan/elide/internal/truncate"
	"github.com/artashes-sanoyan/elide/internal/validation"
)

type App struct {
	config     *config.Config
	store      *storage.Store
	validator  *validation.DocumentValidator
	keyHandler *KeyHandler

	docList   list.Model
	viewport  viewport.Model
	textInput textinput.Model
	help      help.Model

	view        View
	docs        []*storage.Document
	currentDoc  *storage.Document
	docToDelete *storage.Document

	// preview owns the reader's truncation result and expand/collapse state
	preview *truncate.Text

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int // Track the width used for the renderer

	width      int
	height     int
	status     string
	statusKind StatusKind
	loadingDoc bool
	err        error
}

func NewApp(store *storage.Store, cfg *config.Config) *App {
	docList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	docList.Title = "› documents"
	docList.SetShowStatusBar(false)
	docList.SetFilteringEnabled(true)
	docList.SetShowHelp(true) // Let Charm show native help

	vp := viewport.New(0, 0)

	ti := textinput.New()
	ti.Placeholder = "Enter file path..."
	ti.Focus()

	preview := truncate.NewText(measure.NewCellMeasurer(), cfg.Truncate.Options())
	preview.OnTruncate = func(did bool) {
		debuglog.Debugf("recomputed preview: truncated=%v", did)
	}
	preview.OnToggle = func(expanded bool) {
		debuglog.Debugf("preview toggled: expanded=%v", expanded)
	}

	app := &App{
		config:    cfg,
		store:     store,
		validator: validation.NewDocumentValidator(),
		docList:   docList,
		viewport:  vp,
		textInput: ti,
		help:      help.New(),
		view:      ViewDocuments,
		preview:   preview,
	}

	app.keyHandler = NewKeyHandler(app, cfg)

	return app
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	wordWrapWidth := (a.width * 9) / 10
	if wordWrapWidth > 120 {
		wordWrapWidth = 120 // maximum for readability
	}
	if wordWrapWidth < 40 {
		wordWrapWidth = 40 // minimum for readability
	}
	if a.width < 50 {
		wordWrapWidth = a.width - 4
		if wordWrapWidth < 20 {
			wordWrapWidth = 20
		}
	}

	if a.glamourRenderer == nil || abs(a.rendererWidth-wordWrapWidth) > 10 {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrapWidth),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrapWidth
	}

	return a.glamourRenderer, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.loadDocuments(),
		tea.EnterAltScreen,
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.docList.SetSize(msg.Width, msg.Height-3)
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - 5

		inputWidth := msg.Width - 4
		if inputWidth < 20 {
			inputWidth = msg.Width
		}
		a.textInput.Width = inputWidth

		// Resize is the external width-change notification: recompute the
		// truncation from the latest snapshot and refresh list summaries.
		a.recomputePreview()
		a.setDocItems()

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case docsLoadedMsg:
		a.docs = msg.docs
		a.setDocItems()

	case docRenderedMsg:
		if a.view == ViewReader {
			a.preview.SetSource(msg.content)
			a.recomputePreview()
			a.viewport.GotoTop()
			a.loadingDoc = false
		}

	case docAddedMsg:
		if msg.err != nil {
			a.err = msg.err
		} else {
			a.view = ViewDocuments
			a.setStatus(MsgAddedDocument(msg.doc.Title), StatusSuccess)
			return a, a.loadDocuments()
		}

	case docDeletedMsg:
		if msg.err != nil {
			a.err = msg.err
		} else {
			a.view = ViewDocuments
			a.docToDelete = nil
			a.setStatus(MsgDocumentDeleted, StatusSuccess)
			return a, a.loadDocuments()
		}

	case errorMsg:
		a.err = msg.err
	}

	switch a.view {
	case ViewDocuments:
		newListModel, cmd := a.docList.Update(msg)
		a.docList = newListModel
		cmds = append(cmds, cmd)
	case ViewReader:
		// The viewport only scrolls in the expanded state; collapsed previews
		// are a fixed number of lines by construction.
		if a.preview.Expanded() {
			switch msg.(type) {
			case tea.KeyMsg, tea.WindowSizeMsg, tea.MouseMsg:
				newViewport, cmd := a.viewport.Update(msg)
				a.viewport = newViewport
				cmds = append(cmds, cmd)
			}
		}
	case ViewAddDocument:
		newTextInput, cmd := a.textInput.Update(msg)
		a.textInput = newTextInput
		cmds = append(cmds, cmd)
	case ViewDeleteConfirm:
	}

	return a, tea.Batch(cmds...)
}

// recomputePreview runs one truncation pass at the current content width and
// keeps the viewport in sync with the full rendered source.
func (a *App) recomputePreview() {
	if a.preview.Source() == "" {
		return
	}
	a.preview.Recompute(a.contentWidth())
	a.viewport.SetContent(a.preview.Source())
}

func (a *App) contentWidth() int {
	w := a.width - 2
	if w < 1 {
		w = a.width
	}
	return w
}

// toggleExpand flips the reader between the truncated preview and the full
// document.
func (a *App) toggleExpand() {
	if a.view != ViewReader {
		return
	}
	a.preview.Toggle()
	if a.preview.Expanded() {
		a.viewport.GotoTop()
	}
}

// setDocItems rebuilds the list items, running each document's first content
// line through a single-line truncation at the current width.
func (a *App) setDocItems() {
	summaryOpts := a.config.Truncate.Options()
	summaryOpts.Lines = 1
	summaryOpts.Middle = false
	eng := truncate.New(measure.NewCellMeasurer(), summaryOpts)

	w := a.width - 8 // list delegate chrome
	if w < 10 {
		w = 40
	}

	items := make([]list.Item, len(a.docs))
	for i, d := range a.docs {
		items[i] = docItem{
			doc:     d,
			summary: eng.Truncate(firstContentLine(d.Body), w).Display,
		}
	}
	a.docList.SetItems(items)
}

// firstContentLine returns the first non-blank line of body, with markdown
// heading markers stripped so summaries read as prose.
func firstContentLine(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		if line != "" {
			return line
		}
	}
	return ""
}

func (a *App) setStatus(msg string, kind StatusKind) {
	a.status = msg
	a.statusKind = kind
}

func (a *App) openDocument(doc *storage.Document) tea.Cmd {
	a.currentDoc = doc
	a.view = ViewReader
	a.loadingDoc = true
	a.preview.SetSource("")
	return tea.Batch(a.renderDocument(doc), a.touchDocument(doc.ID))
}

func (a *App) View() string {
	var content string

	switch a.view {
	case ViewDocuments:
		if len(a.docs) == 0 {
			content = renderCentered(a.width, a.height-3, GetWelcomeMessage())
		} else {
			content = a.docList.View()
		}

	case ViewReader:
		content = a.readerView()

	case ViewAddDocument:
		content = renderCentered(a.width, a.height-3,
			lipgloss.JoinVertical(
				lipgloss.Center,
				TitleStyle.Render("› add document"),
				"",
				a.textInput.View(),
				"",
				renderHelp("Press Enter to add, Esc to cancel"),
			),
		)

	case ViewDeleteConfirm:
		content = a.deleteConfirmView()
	}

	return lipgloss.JoinVertical(lipgloss.Top, content, a.statusBar())
}

func (a *App) readerView() string {
	if a.currentDoc == nil {
		return renderCentered(a.width, a.height-3, renderMuted(MsgNoDocuments))
	}
	if a.loadingDoc {
		return renderCentered(a.width, a.height-3, renderMuted(MsgLoadingDocument))
	}

	header := renderHeader(a.currentDoc.Title, a.currentDoc.Path, a.width)
	toggleKey := a.config.Keys.Bindings.Toggle

	var body string
	if a.preview.Expanded() {
		body = lipgloss.JoinVertical(
			lipgloss.Top,
			a.viewport.View(),
			renderToggleControl(a.config.UI.Preview.ShowLessLabel, toggleKey),
		)
	} else {
		rows := []string{a.preview.Display()}
		if a.preview.Truncated() {
			rows = append(rows, "", renderToggleControl(a.config.UI.Preview.ShowMoreLabel, toggleKey))
		}
		body = lipgloss.JoinVertical(lipgloss.Top, rows...)
	}

	return ContentWrapper(a.width, a.height-3).Render(
		lipgloss.JoinVertical(lipgloss.Top, header, "", body),
	)
}

func (a *App) deleteConfirmView() string {
	docName := "Unknown Document"
	docPath := ""
	if a.docToDelete != nil {
		docName = a.docToDelete.Title
		docPath = a.docToDelete.Path
	}

	modalWidth := (a.width * 4) / 5
	if modalWidth < 20 {
		modalWidth = a.width - 4
		if modalWidth < 15 {
			modalWidth = a.width
		}
	}

	return renderCentered(a.width, a.height-3,
		lipgloss.JoinVertical(
			lipgloss.Center,
			StatusErrorStyle.Render("⚠ Delete Document"),
			"",
			lipgloss.NewStyle().
				Foreground(TextColor).
				Width(modalWidth).
				Align(lipgloss.Center).
				Render("Remove this document from the library?"),
			"",
			lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true).
				Width(modalWidth).
				Align(lipgloss.Center).
				Render(truncateEnd(docName, modalWidth-4)),
			renderMuted(truncatePath(docPath, modalWidth-4)),
			"",
			"",
			renderHelp("Enter: confirm • Esc: cancel"),
		),
	)
}

func (a *App) statusBar() string {
	left := CompactLogo

	var parts []string
	switch a.view {
	case ViewDocuments:
		parts = append(parts, MsgDocumentCount(len(a.docs)))
	case ViewReader:
		if a.currentDoc != nil && !a.loadingDoc {
			parts = append(parts, MsgTruncated(a.preview.Truncated() && !a.preview.Expanded()))
		}
	}

	if a.err != nil {
		parts = append(parts, StatusErrorStyle.Render(truncateEnd(a.err.Error(), a.width/2)))
	} else if a.status != "" {
		style := StatusInfoStyle
		switch a.statusKind {
		case StatusSuccess:
			style = StatusSuccessStyle
		case StatusWarn:
			style = StatusWarnStyle
		case StatusError:
			style = StatusErrorStyle
		}
		parts = append(parts, style.Render(a.status))
	}

	line := left
	if len(parts) > 0 {
		line += "  " + strings.Join(parts, " • ")
	}
	return StatusBarStyle.Render(truncateEnd(line, a.width))
}
