//go:build !gui

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marko/internal/buffer"
	"marko/internal/config"
	"marko/internal/extract"
	"marko/internal/overview"
	"marko/internal/state"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFAA00"))

	entryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFAA00"))

	jumpLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#00AAFF"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Padding(0, 1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	focusedPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#FFAA00"))

	blurredPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#444444"))
)

// display implements overview.Presenter. The overview mode calls it
// synchronously during Enable/Refresh/Jump; the bubbletea model reads the
// recorded effects right after each call.
type display struct {
	presented bool
	revealed  bool
	revealOff int
}

func (d *display) Present(src, outline *buffer.Buffer) { d.presented = true }

func (d *display) Reveal(src *buffer.Buffer, offset int) {
	d.revealed = true
	d.revealOff = offset
}

type pane int

const (
	paneOutline pane = iota
	paneSource
)

type model struct {
	reg   *buffer.Registry
	mode  *overview.Mode
	disp  *display
	src   *buffer.Buffer
	store *state.Store
	hash  string

	srcView  viewport.Model
	ready    bool
	entries  []int // outline line indices carrying a source position
	selected int
	focus    pane
	jumpLine int
	width    int
	height   int
	message  string
	quitting bool
}

func newModel(reg *buffer.Registry, mode *overview.Mode, disp *display, src *buffer.Buffer) model {
	return model{
		reg:      reg,
		mode:     mode,
		disp:     disp,
		src:      src,
		jumpLine: -1,
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// entryLines returns the zero-based line indices of the outline buffer that
// carry a source position tag, in order.
func entryLines(out *buffer.Buffer) []int {
	var lines []int
	offset := 0
	for i, line := range strings.Split(out.Contents(), "\n") {
		if _, ok := out.TagWithin(offset, offset+len(line), overview.TagSourcePos); ok {
			lines = append(lines, i)
		}
		offset += len(line) + 1
	}
	return lines
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// syncOutline refreshes the cached entry list after a build or teardown.
func (m *model) syncOutline() {
	if out, ok := m.mode.Outline(); ok {
		m.entries = entryLines(out)
	} else {
		m.entries = nil
	}
	if len(m.entries) == 0 {
		m.selected = 0
	} else {
		m.selected = clamp(m.selected, 0, len(m.entries)-1)
	}
}

// syncSource rebuilds the source pane content, highlighting the last jump
// target line.
func (m *model) syncSource() {
	if !m.ready {
		return
	}
	lines := strings.Split(m.src.Contents(), "\n")
	if m.jumpLine >= 0 && m.jumpLine < len(lines) {
		lines[m.jumpLine] = jumpLineStyle.Render(lines[m.jumpLine])
	}
	m.srcView.SetContent(strings.Join(lines, "\n"))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "Q", "ctrl+c":
			m.saveState()
			m.quitting = true
			return m, tea.Quit

		case "tab":
			if m.mode.Enabled() {
				if m.focus == paneOutline {
					m.focus = paneSource
				} else {
					m.focus = paneOutline
				}
			}
			return m, nil

		case "up", "k":
			if m.focus == paneOutline {
				if m.selected > 0 {
					m.selected--
				}
				return m, nil
			}

		case "down", "j":
			if m.focus == paneOutline {
				if m.selected < len(m.entries)-1 {
					m.selected++
				}
				return m, nil
			}

		case "enter":
			if m.focus == paneOutline && m.mode.Enabled() {
				return m.jump()
			}

		case "r", "R":
			if m.mode.Enabled() {
				if err := m.mode.Refresh(); err != nil {
					m.message = err.Error()
				} else {
					m.message = "overview refreshed"
					m.jumpLine = -1
					m.syncOutline()
					m.syncSource()
				}
			}
			return m, nil

		case "o", "O":
			if m.mode.Enabled() {
				m.mode.Disable()
				m.focus = paneSource
				m.message = "overview disabled"
			} else {
				if err := m.mode.Enable(m.src); err != nil {
					m.message = err.Error()
				} else {
					m.focus = paneOutline
					m.message = ""
				}
			}
			m.syncOutline()
			if m.ready {
				vw, vh := m.sourcePaneSize()
				m.srcView.Width = vw
				m.srcView.Height = vh
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vw, vh := m.sourcePaneSize()
		if !m.ready {
			m.srcView = viewport.New(vw, vh)
			m.ready = true
		} else {
			m.srcView.Width = vw
			m.srcView.Height = vh
		}
		m.syncSource()
		return m, nil
	}

	// Remaining keys scroll the source pane when it has focus.
	if m.focus == paneSource && m.ready {
		var cmd tea.Cmd
		m.srcView, cmd = m.srcView.Update(msg)
		return m, cmd
	}
	return m, nil
}

// jump resolves the selected outline entry back to the source and scrolls
// the source pane there. Navigation failures become a status message; the
// mode stays usable.
func (m model) jump() (tea.Model, tea.Cmd) {
	out, ok := m.mode.Outline()
	if !ok {
		m.message = overview.ErrNoPositionFound.Error()
		return m, nil
	}
	point := 0
	if len(m.entries) > 0 {
		point = out.LineStart(m.entries[m.selected])
	}
	out.SetCursor(point)

	m.disp.revealed = false
	if err := m.mode.Jump(out.Cursor()); err != nil {
		m.message = err.Error()
		return m, nil
	}
	m.message = ""
	if m.disp.revealed {
		m.focus = paneSource
		m.jumpLine = m.src.LineOf(m.disp.revealOff)
		m.syncSource()
		if m.ready {
			half := m.srcView.Height / 2
			m.srcView.SetYOffset(clamp(m.jumpLine-half, 0, m.jumpLine))
		}
	}
	return m, nil
}

func (m *model) saveState() {
	if m.store == nil || m.hash == "" {
		return
	}
	m.store.Set(m.hash, state.ViewState{
		OutlineLine:  m.selected,
		SourceCursor: m.src.Cursor(),
	})
}

// sourcePaneSize returns the inner size of the source pane given the
// current window and whether the outline pane is shown.
func (m model) sourcePaneSize() (w, h int) {
	w = m.width
	if m.mode.Enabled() {
		w -= m.outlineWidth()
	}
	w -= 2           // pane border
	h = m.height - 5 // status, message, controls, border
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	return w, h
}

func (m model) outlineWidth() int {
	w := m.width / 3
	if w < 24 {
		w = 24
	}
	return w
}

func (m model) renderOutline(innerW, innerH int) string {
	out, ok := m.mode.Outline()
	if !ok {
		return ""
	}
	lines := strings.Split(strings.TrimRight(out.Contents(), "\n"), "\n")
	selLine := -1
	if len(m.entries) > 0 {
		selLine = m.entries[m.selected]
	}

	var sb strings.Builder
	for i, line := range lines {
		if len(line) > innerW && innerW > 0 {
			line = line[:innerW]
		}
		switch {
		case i == 0:
			line = titleStyle.Render(line)
		case i == selLine && m.focus == paneOutline:
			line = selectedStyle.Render(line)
		default:
			line = entryStyle.Render(line)
		}
		sb.WriteString(line)
		if i < len(lines)-1 {
			sb.WriteString("\n")
		}
	}
	for i := len(lines); i < innerH; i++ {
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	status := statusStyle.Render(fmt.Sprintf("%s | %s | %d marked span(s)",
		m.src.Name(), m.src.Mode(), len(m.entries)))

	message := ""
	if m.message != "" {
		message = messageStyle.Render(m.message)
	}

	controls := controlsStyle.Render("TAB: pane  ↑/↓: move  ENTER: jump  R: refresh  O: overview  Q: quit")

	srcStyle := blurredPaneStyle
	if m.focus == paneSource || !m.mode.Enabled() {
		srcStyle = focusedPaneStyle
	}

	var body string
	if m.mode.Enabled() {
		ow := m.outlineWidth() - 2
		_, oh := m.sourcePaneSize()
		outStyle := blurredPaneStyle
		if m.focus == paneOutline {
			outStyle = focusedPaneStyle
		}
		outline := outStyle.Width(ow).Height(oh).Render(m.renderOutline(ow, oh))
		body = lipgloss.JoinHorizontal(lipgloss.Top, outline, srcStyle.Render(m.srcView.View()))
	} else {
		body = srcStyle.Render(m.srcView.View())
	}

	return status + "\n" + body + "\n" + message + "\n" + controls
}

func main() {
	modeFlag := flag.String("m", "", "Editing mode for the input (org, markdown); inferred from the file extension when empty")
	freshStart := flag.Bool("fresh", false, "Ignore saved view state")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Marko - Marked Text Overview\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  marko [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  marko notes.org           Outline of marked text in an Org file\n")
		fmt.Fprintf(os.Stderr, "  marko README.md           Outline of marked text in a Markdown file\n")
		fmt.Fprintf(os.Stderr, "  cat notes.md | marko -m markdown\n")
		fmt.Fprintf(os.Stderr, "\nModes:\n")
		for _, name := range extract.ModeNames() {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  TAB      Switch pane\n")
		fmt.Fprintf(os.Stderr, "  ↑/↓      Move outline selection / scroll source\n")
		fmt.Fprintf(os.Stderr, "  ENTER    Jump to the original span\n")
		fmt.Fprintf(os.Stderr, "  R        Refresh the overview\n")
		fmt.Fprintf(os.Stderr, "  O        Toggle the overview\n")
		fmt.Fprintf(os.Stderr, "  Q        Quit\n")
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("marko %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.Default()
	}

	var text, sourceName, sourceFile string

	if flag.NArg() > 0 {
		sourceFile = flag.Arg(0)
		data, err := os.ReadFile(sourceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to read file '%s': %v\n", sourceFile, err)
			os.Exit(1)
		}
		text = string(data)
		sourceName = sourceFile
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Error: No input provided. Provide a file or pipe text to stdin.")
			fmt.Fprintln(os.Stderr, "Try: marko -h")
			os.Exit(1)
		}

		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		text = string(data)
		sourceName = "*stdin*"
	}

	modeName := *modeFlag
	if modeName == "" && sourceFile != "" {
		modeName = cfg.ModeFor(sourceFile, extract.ModeForFile)
	}
	if extract.DialectFor(modeName) == extract.DialectUnsupported {
		if modeName == "" {
			fmt.Fprintln(os.Stderr, "Error: unsupported document kind (use -m to pick a mode)")
		} else {
			fmt.Fprintf(os.Stderr, "Error: unsupported document kind: %s\n", modeName)
		}
		fmt.Fprintln(os.Stderr, "Supported modes:")
		for _, name := range extract.ModeNames() {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		os.Exit(1)
	}

	reg := buffer.NewRegistry()
	src := reg.GetOrCreate(sourceName)
	src.SetContents(text)
	src.SetMode(modeName)

	disp := &display{}
	mode := overview.NewMode(reg, disp, overview.Options{Title: cfg.Title, Bullet: cfg.Bullet})
	if err := mode.Enable(src); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m := newModel(reg, mode, disp, src)
	m.syncOutline()

	// Restore the previous session's selection for file input
	if sourceFile != "" {
		store, err := state.NewStore()
		if err == nil {
			m.store = store
			hash, err := state.ComputeHash(sourceFile)
			if err == nil {
				m.hash = hash
				if !*freshStart {
					vs := store.Get(hash)
					if len(m.entries) > 0 {
						m.selected = clamp(vs.OutlineLine, 0, len(m.entries)-1)
					}
					src.SetCursor(vs.SourceCursor)
				}
			}
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
