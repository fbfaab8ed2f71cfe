package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"adrgrip/internal/adr2md"
	"adrgrip/internal/domain"
	"adrgrip/internal/eventbus"
	"adrgrip/internal/store"
)

type focusArea int

const (
	focusList focusArea = iota
	focusEditor
)

// row is one line of the left pane: a repository header or one of its records
type row struct {
	repo *domain.Repository
	adr  *domain.Adr // nil for repository headers
}

// pagerDoneMsg is sent when the preview pager hands the terminal back
type pagerDoneMsg struct {
	err error
}

// Model is the bubbletea model driving the editor
type Model struct {
	store   *store.Store
	bus     eventbus.EventBus
	styles  *Styles
	program *tea.Program

	rows   []row
	cursor int
	offset int
	focus  focusArea

	editor        textarea.Model
	width, height int
	statusMessage string
	statusIsError bool
}

// NewModel creates the UI model over an already-reloaded store
func NewModel(st *store.Store, bus eventbus.EventBus) *Model {
	editor := textarea.New()
	editor.Placeholder = "No record open"
	editor.CharLimit = 0

	m := &Model{
		store:  st,
		bus:    bus,
		styles: NewStyles(),
		editor: editor,
	}

	bus.Subscribe(eventbus.EventAdrOpened, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.AdrOpenedEvent); ok {
			m.statusMessage = "Opened " + adr2md.BaseName(event.Adr.Path)
			m.statusIsError = false
		}
	})
	bus.Subscribe(eventbus.EventModeChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ModeChangedEvent); ok {
			m.statusMessage = "Mode changed to " + string(event.Mode)
			m.statusIsError = false
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			m.statusMessage = event.Message
			m.statusIsError = true
		}
	})

	m.rebuildRows()
	m.syncEditor()
	return m
}

// SetProgram hands the model the running program, needed to release the
// terminal for the preview pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(m.editorWidth())
		m.editor.SetHeight(m.contentHeight())
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Preview failed: %v", msg.err)
			m.statusIsError = true
		}
		return m, nil

	case tea.KeyMsg:
		if m.focus == focusEditor {
			return m.updateEditor(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		m.moveCursor(1)

	case "k", "up":
		m.moveCursor(-1)

	case "g":
		m.cursor = 0
		m.clampCursor()

	case "G":
		m.cursor = len(m.rows) - 1
		m.clampCursor()

	case "enter":
		if r, ok := m.selectedRow(); ok && r.adr != nil {
			m.store.OpenAdr(r.adr)
			m.syncEditor()
		}

	case "tab", "i":
		if m.store.CurrentAdr() != nil {
			m.focus = focusEditor
			m.editor.Focus()
			return m, textarea.Blink
		}

	case "n":
		if r, ok := m.selectedRow(); ok {
			if created := m.store.CreateNewAdr(r.repo); created != nil {
				m.store.OpenAdr(created)
				m.rebuildRows()
				m.syncEditor()
			}
		}

	case "d":
		if r, ok := m.selectedRow(); ok && r.adr != nil {
			m.store.DeleteAdr(r.adr, r.repo)
			m.store.Persist()
			m.rebuildRows()
			m.syncEditor()
		}

	case "x":
		if r, ok := m.selectedRow(); ok {
			m.store.RemoveRepository(r.repo)
			m.rebuildRows()
			m.syncEditor()
		}

	case "m":
		m.store.SetMode(nextMode(m.store.Mode()))

	case "p":
		if adr := m.store.CurrentAdr(); adr != nil && adr.EditedMd != nil {
			return m, m.showPreview(*adr.EditedMd)
		}
	}

	return m, nil
}

func (m *Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusList
		m.editor.Blur()
		m.saveEditor()
		m.rebuildRows() // a rename may have changed the visible path
		return m, nil

	case "ctrl+s":
		m.saveEditor()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) saveEditor() {
	if m.store.CurrentAdr() == nil {
		return
	}
	if err := m.store.UpdateMdOfCurrentAdr(m.editor.Value()); err != nil {
		log.Printf("ui: save failed: %v", err)
		m.statusMessage = fmt.Sprintf("Save failed: %v", err)
		m.statusIsError = true
		return
	}
	m.statusMessage = "Saved"
	m.statusIsError = false
}

// syncEditor loads the open record's markdown into the textarea
func (m *Model) syncEditor() {
	adr := m.store.CurrentAdr()
	if adr == nil || adr.EditedMd == nil {
		m.editor.SetValue("")
		return
	}
	m.editor.SetValue(*adr.EditedMd)
}

// rebuildRows flattens the store's repositories into list rows
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	for _, repo := range m.store.Repositories() {
		m.rows = append(m.rows, row{repo: repo})
		for _, adr := range repo.Adrs {
			m.rows = append(m.rows, row{repo: repo, adr: adr})
		}
	}
	m.clampCursor()
}

func (m *Model) selectedRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	visible := m.contentHeight()
	if visible <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func nextMode(mode domain.Mode) domain.Mode {
	switch mode {
	case domain.ModeBasic:
		return domain.ModeAdvanced
	case domain.ModeAdvanced:
		return domain.ModeProfessional
	default:
		return domain.ModeBasic
	}
}
