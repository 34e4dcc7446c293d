//go:build gui

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

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

// display implements overview.Presenter for the GUI front end.
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

func main() {
	modeFlag := flag.String("m", "", "Editing mode for the input (org, markdown); inferred from the file extension when empty")
	freshStart := flag.Bool("fresh", false, "Ignore saved view state")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Margo - GUI Marked Text Overview\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  margo [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  margo notes.org           Outline of marked text in an Org file\n")
		fmt.Fprintf(os.Stderr, "  cat notes.md | margo -m markdown\n")
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("margo %s (commit: %s, built: %s)\n", version, commit, date)
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
			fmt.Fprintln(os.Stderr, "Try: margo -h")
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
		fmt.Fprintf(os.Stderr, "Error: unsupported document kind: %q\n", modeName)
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

	out, _ := mode.Outline()
	outlineLines := strings.Split(strings.TrimRight(out.Contents(), "\n"), "\n")
	entries := entryLines(out)

	srcLines := strings.Split(src.Contents(), "\n")
	jumpLine := -1

	var store *state.Store
	var fileHash string
	selected := 0
	if sourceFile != "" {
		if s, err := state.NewStore(); err == nil {
			store = s
			if hash, err := state.ComputeHash(sourceFile); err == nil {
				fileHash = hash
				if !*freshStart && len(entries) > 0 {
					selected = clamp(store.Get(hash).OutlineLine, 0, len(entries)-1)
				}
			}
		}
	}

	a := app.New()
	w := a.NewWindow("margo - Marked Text Overview")

	statusLabel := widget.NewLabel(fmt.Sprintf("%s | %s | %d marked span(s)",
		src.Name(), src.Mode(), len(entries)))
	statusLabel.Alignment = fyne.TextAlignCenter

	controlsLabel := widget.NewLabel("Click an entry to jump  R: refresh  Q: quit")
	controlsLabel.Alignment = fyne.TextAlignCenter

	// Source pane: one list row per line so jumps can scroll precisely.
	var sourceList *widget.List
	sourceList = widget.NewList(
		func() int { return len(srcLines) },
		func() fyne.CanvasObject {
			return widget.NewLabel("line")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			label.SetText(srcLines[id])
			label.TextStyle.Bold = id == jumpLine
		},
	)

	var outlineList *widget.List
	outlineList = widget.NewList(
		func() int { return len(outlineLines) },
		func() fyne.CanvasObject {
			return widget.NewLabel("entry")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			label.SetText(outlineLines[id])
			label.TextStyle.Bold = id == 0
		},
	)

	outlineList.OnSelected = func(id widget.ListItemID) {
		disp.revealed = false
		if err := mode.Jump(out.LineStart(id)); err != nil {
			statusLabel.SetText(err.Error())
			return
		}
		statusLabel.SetText(fmt.Sprintf("%s | %s | %d marked span(s)",
			src.Name(), src.Mode(), len(entries)))
		if disp.revealed {
			jumpLine = src.LineOf(disp.revealOff)
			sourceList.Refresh()
			sourceList.ScrollTo(jumpLine)
		}
		for i, line := range entries {
			if line == id {
				selected = i
			}
		}
	}

	refresh := func() {
		if err := mode.Refresh(); err != nil {
			statusLabel.SetText(err.Error())
			return
		}
		out, _ = mode.Outline()
		outlineLines = strings.Split(strings.TrimRight(out.Contents(), "\n"), "\n")
		entries = entryLines(out)
		jumpLine = -1
		outlineList.Refresh()
		sourceList.Refresh()
		statusLabel.SetText(fmt.Sprintf("%s | %s | %d marked span(s)",
			src.Name(), src.Mode(), len(entries)))
	}

	w.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case 'r', 'R':
			refresh()
		case 'q', 'Q':
			if store != nil && fileHash != "" {
				store.Set(fileHash, state.ViewState{OutlineLine: selected, SourceCursor: src.Cursor()})
			}
			a.Quit()
		}
	})

	outlinePanel := container.NewBorder(
		widget.NewLabel("Overview"),
		nil, nil, nil,
		outlineList,
	)

	split := container.NewHSplit(outlinePanel, sourceList)
	split.Offset = 0.33

	w.SetContent(container.NewBorder(statusLabel, controlsLabel, nil, nil, split))
	w.Resize(fyne.NewSize(900, 600))

	if len(entries) > 0 {
		outlineList.ScrollTo(entries[selected])
	}

	w.SetOnClosed(func() {
		if store != nil && fileHash != "" {
			store.Set(fileHash, state.ViewState{OutlineLine: selected, SourceCursor: src.Cursor()})
		}
	})

	w.ShowAndRun()
}
