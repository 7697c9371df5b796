package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bridgegen/bridge"
	"github.com/wippyai/bridgegen/cheader"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	symbolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// symbol is one browsable row: a declared entity or function.
type symbol struct {
	plain  string // unstyled text, used for filtering
	styled string
}

type interactiveModel struct {
	err      error
	module   *bridge.Module
	filename string
	header   string
	symbols  []symbol
	visible  []symbol
	filter   textinput.Model
	selected int
	state    modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateFilter
	stateHeader
)

type headerMsg struct {
	err    error
	header string
}

func newInteractiveModel(m *bridge.Module, filename string) *interactiveModel {
	filter := textinput.New()
	filter.Placeholder = "filter symbols"
	filter.Prompt = "/ "
	filter.Width = 40

	im := &interactiveModel{
		module:   m,
		filename: filename,
		filter:   filter,
		symbols:  collectSymbols(m),
	}
	im.visible = im.symbols
	return im
}

func collectSymbols(m *bridge.Module) []symbol {
	var out []symbol
	for _, ent := range m.Entities {
		switch e := ent.(type) {
		case bridge.ValueType:
			plain := fmt.Sprintf("struct %s (%d fields)", e.Name, len(e.Fields))
			out = append(out, symbol{
				plain:  plain,
				styled: "struct " + symbolStyle.Render(e.Name) + fmt.Sprintf(" (%d fields)", len(e.Fields)),
			})
		case bridge.OpaqueHandle:
			plain := fmt.Sprintf("handle %s (%s)", e.Name, e.Owner)
			out = append(out, symbol{
				plain:  plain,
				styled: "handle " + symbolStyle.Render(e.Name) + " (" + e.Owner.String() + ")",
			})
		}
	}
	for i := range m.Functions {
		fn := &m.Functions[i]
		out = append(out, symbol{
			plain:  plainSignature(fn),
			styled: styledSignature(fn),
		})
	}
	return out
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) generateHeader() tea.Msg {
	header, err := cheader.Generate(m.module)
	return headerMsg{header: header, err: err}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter", "esc":
				m.state = stateBrowse
				m.filter.Blur()
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateBrowse {
				m.state = stateFilter
				m.filter.Focus()
			}

		case "enter", "g":
			if m.state == stateBrowse {
				return m, m.generateHeader
			}

		case "esc":
			if m.state == stateHeader {
				m.state = stateBrowse
				m.header = ""
				m.err = nil
			}
		}

	case headerMsg:
		m.header = msg.header
		m.err = msg.err
		m.state = stateHeader
	}

	return m, nil
}

func (m *interactiveModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	if query == "" {
		m.visible = m.symbols
	} else {
		m.visible = nil
		for _, s := range m.symbols {
			if strings.Contains(strings.ToLower(s.plain), query) {
				m.visible = append(m.visible, s)
			}
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("bridgegen"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse, stateFilter:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("no matching symbols"))
			b.WriteString("\n")
		}
		for i, s := range m.visible {
			cursor := "  "
			if i == m.selected && m.state == stateBrowse {
				b.WriteString(selectedStyle.Render("> " + s.plain))
			} else {
				b.WriteString(cursor + s.styled)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • / filter • enter generate header • q quit"))

	case stateHeader:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			for _, line := range strings.Split(strings.TrimRight(m.header, "\n"), "\n") {
				if strings.HasPrefix(line, "//") {
					b.WriteString(noticeStyle.Render(line))
				} else if strings.HasPrefix(line, "#include") {
					b.WriteString(typeStyle.Render(line))
				} else {
					b.WriteString(line)
				}
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
	}

	return b.String()
}

func typeStr(t bridge.Type) string {
	switch t := t.(type) {
	case bridge.Scalar:
		return t.String()
	case bridge.OpaqueRef:
		return t.Name
	case bridge.ValueRef:
		return t.Name
	case bridge.RefSlice:
		return "&[" + typeStr(t.Elem) + "]"
	default:
		return fmt.Sprintf("%T", t)
	}
}

func plainSignature(fn *bridge.Function) string {
	var params []string
	if fn.Receiver.HasSelf() {
		params = append(params, "self")
	}
	for _, p := range fn.Params {
		params = append(params, p.Name+": "+typeStr(p.Type))
	}
	name := fn.Name
	if fn.Receiver.HasSelf() {
		name = fn.Receiver.Entity + "." + fn.Name
	}
	out := "fn " + name + "(" + strings.Join(params, ", ") + ")"
	if fn.Result != nil {
		out += " -> " + typeStr(fn.Result)
	}
	return out
}

func styledSignature(fn *bridge.Function) string {
	var params []string
	if fn.Receiver.HasSelf() {
		params = append(params, "self")
	}
	for _, p := range fn.Params {
		params = append(params, p.Name+": "+typeStyle.Render(typeStr(p.Type)))
	}
	name := fn.Name
	if fn.Receiver.HasSelf() {
		name = fn.Receiver.Entity + "." + fn.Name
	}
	out := "fn " + symbolStyle.Render(name) + "(" + strings.Join(params, ", ") + ")"
	if fn.Result != nil {
		out += " -> " + typeStyle.Render(typeStr(fn.Result))
	}
	return out
}

func runInteractive(m *bridge.Module, filename string) error {
	p := tea.NewProgram(newInteractiveModel(m, filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
