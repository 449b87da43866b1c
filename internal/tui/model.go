// Package tui is the interactive viewer: a bubbletea program that
// renders the current scene through the viewport transform onto a rune
// canvas, and owns the keyboard surface for pan/zoom/fit, clearing,
// and triggering analysis runs.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/frankdc/hogview/internal/analysis"
	"github.com/frankdc/hogview/internal/creature"
	"github.com/frankdc/hogview/internal/geom"
	"github.com/frankdc/hogview/internal/scene"
	"github.com/frankdc/hogview/internal/state"
	"github.com/frankdc/hogview/internal/viewport"
)

// One terminal cell covers this many viewport pixels. The 1:2 ratio
// keeps circles looking like circles on a typical font.
const (
	cellW = 10.0
	cellH = 20.0
)

const (
	panStep      = 40.0 // viewport pixels per pan key
	creatureTick = 50 * time.Millisecond
)

var (
	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#181825")).
			Foreground(lipgloss.Color("#a6adc8")).
			Padding(0, 1)
	statusTagStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#181825")).
			Foreground(lipgloss.Color("#89b4fa")).
			Bold(true).
			Padding(0, 1)
)

// Options configures the viewer.
type Options struct {
	// Path is a graph description file to load on startup; empty
	// starts in the instructional empty state.
	Path string

	// Folder is the workspace folder used for analysis runs.
	Folder string

	// Watch reloads Path whenever it is rewritten.
	Watch bool

	// Creatures is the sprite count; zero disables the animator.
	Creatures int

	// ShowGrid draws the background grid.
	ShowGrid bool

	// Runner executes analysis runs. Nil disables the "r" binding.
	Runner *analysis.Runner
}

type tickMsg time.Time

type analysisDoneMsg analysis.Result

type fileChangedMsg struct{ path string }

type watchErrMsg struct{ err error }

// Model is the bubbletea model for the viewer.
type Model struct {
	opts    Options
	keys    keyMap
	help    help.Model
	stage   *scene.Stage
	view    viewport.View
	herd    *creature.Herd
	watcher *fsnotify.Watcher

	width   int
	height  int
	canvasH int

	status     string
	animate    bool
	pendingFit bool
}

// New builds the viewer model. The initial file, if any, is loaded
// immediately; fitting is deferred until the first window size arrives.
func New(opts Options) (*Model, error) {
	var herd *creature.Herd
	if opts.Creatures > 0 {
		herd = creature.NewHerd(opts.Creatures, nil)
	}

	m := &Model{
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
		stage:   scene.NewStage(herd),
		view:    viewport.NewView(),
		herd:    herd,
		animate: herd != nil,
		status:  "Ready",
	}

	if opts.Path != "" {
		if err := m.loadFile(opts.Path); err != nil {
			return nil, err
		}
	}

	if opts.Watch && opts.Path != "" {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", opts.Path, err)
		}
		// Watch the directory, not the file: editors replace files by
		// rename+create, which silently drops a watch on the file
		// itself.
		if err := w.Add(filepath.Dir(opts.Path)); err != nil {
			w.Close()
			return nil, fmt.Errorf("watch %s: %w", opts.Path, err)
		}
		m.watcher = w
	}

	return m, nil
}

// Close releases the file watcher, if any.
func (m *Model) Close() {
	if m.watcher != nil {
		m.watcher.Close()
	}
}

func (m *Model) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if m.stage.LoadText(string(data)) {
		m.pendingFit = true
		m.status = fmt.Sprintf("Loaded %s", path)
	} else {
		m.status = "No nodes found"
	}
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.animate {
		cmds = append(cmds, tick())
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher, m.opts.Path))
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(creatureTick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// waitForChange blocks until the watched file is rewritten or replaced.
// Events for other files in the same directory are filtered out. The
// command is re-issued after every delivery.
func waitForChange(w *fsnotify.Watcher, path string) tea.Cmd {
	base := filepath.Base(path)
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 && filepath.Base(ev.Name) == base {
					return fileChangedMsg{path: path}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

// pixelSize is the viewport extent in viewport pixels.
func (m *Model) pixelSize() (float64, float64) {
	return float64(m.width) * cellW, float64(m.canvasH) * cellH
}

func (m *Model) fit() {
	pw, ph := m.pixelSize()
	m.view.FitToContent(m.stage.Scene().Bounds(), pw, ph)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.canvasH = msg.Height - 2
		if m.canvasH < 1 {
			m.canvasH = 1
		}
		m.help.Width = msg.Width
		if m.pendingFit {
			m.fit()
			m.pendingFit = false
		}
		if m.herd != nil {
			pw, ph := m.pixelSize()
			m.herd.SetBounds(m.view.Visible(pw, ph))
		}
		return m, nil

	case tickMsg:
		if m.animate && m.herd != nil {
			m.herd.Tick()
			return m, tick()
		}
		return m, nil

	case analysisDoneMsg:
		res := analysis.Result(msg)
		if res.OK() {
			if m.stage.LoadText(res.Text) {
				m.fit()
				m.status = "Analysis complete"
				_ = state.Remember(m.opts.Folder, m.opts.Runner.Output)
			} else {
				m.status = "No nodes found"
			}
		} else {
			m.stage.ShowError(res.Message)
			m.status = "Analysis failed"
		}
		return m, nil

	case fileChangedMsg:
		if err := m.loadFile(msg.path); err == nil {
			m.fit()
			m.status = fmt.Sprintf("Reloaded %s", msg.path)
		}
		return m, waitForChange(m.watcher, m.opts.Path)

	case watchErrMsg:
		m.status = fmt.Sprintf("Watch error: %v", msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pw, ph := m.pixelSize()
	center := geom.Point{X: pw / 2, Y: ph / 2}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.view.Pan(0, panStep)
	case key.Matches(msg, m.keys.Down):
		m.view.Pan(0, -panStep)
	case key.Matches(msg, m.keys.Left):
		m.view.Pan(panStep, 0)
	case key.Matches(msg, m.keys.Right):
		m.view.Pan(-panStep, 0)
	case key.Matches(msg, m.keys.ZoomIn):
		m.view.Zoom(viewport.ZoomStep, center)
	case key.Matches(msg, m.keys.ZoomOut):
		m.view.Zoom(1/viewport.ZoomStep, center)
	case key.Matches(msg, m.keys.Fit):
		m.fit()
	case key.Matches(msg, m.keys.Clear):
		m.stage.Clear()
		m.fit()
		m.status = "Results cleared"
	case key.Matches(msg, m.keys.Creature):
		if m.herd != nil {
			m.animate = !m.animate
			if m.animate {
				return m, tick()
			}
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Analyze):
		return m, m.startAnalysis()
	}
	return m, nil
}

// startAnalysis kicks off a run. The trigger is rejected, not queued,
// while a run is in flight.
func (m *Model) startAnalysis() tea.Cmd {
	if m.opts.Runner == nil {
		return nil
	}
	if m.opts.Folder == "" {
		m.status = "No folder selected — start with --folder"
		return nil
	}
	if m.opts.Runner.Running() {
		m.status = "Analysis already running"
		return nil
	}

	ch, err := m.opts.Runner.Start(context.Background(), m.opts.Folder)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	m.status = "Running analysis..."
	return func() tea.Msg {
		return analysisDoneMsg(<-ch)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	c := newCanvas(m.width, m.canvasH)
	pw, ph := m.pixelSize()
	visible := m.view.Visible(pw, ph)

	if m.opts.ShowGrid {
		for _, l := range viewport.GridLines(visible, viewport.GridSpacing) {
			x0, y0 := m.toCell(geom.Point{X: l.X1, Y: l.Y1})
			x1, y1 := m.toCell(geom.Point{X: l.X2, Y: l.Y2})
			c.dotted(x0, y0, x1, y1, '·', classGrid)
		}
	}

	sc := m.stage.Scene()
	if sc.Message != "" {
		m.drawMessage(c, sc.Message)
	} else {
		m.drawGraph(c, sc)
	}

	if m.herd != nil && m.animate {
		for _, cr := range m.herd.Creatures() {
			x, y := m.toCell(cr.Pos)
			c.setWide(x, y, []rune(creature.Glyph)[0], classCreature)
		}
	}

	return c.String() + "\n" + m.statusBar() + "\n" + m.help.View(m.keys)
}

func (m *Model) drawGraph(c *canvas, sc *scene.Scene) {
	// Edges and arrows go down first; nodes overdraw them.
	for _, l := range sc.Lines {
		x0, y0 := m.toCell(geom.Point{X: l.X1, Y: l.Y1})
		x1, y1 := m.toCell(geom.Point{X: l.X2, Y: l.Y2})
		c.line(x0, y0, x1, y1, classEdge)
	}
	for _, a := range sc.Arrows {
		x, y := m.toCell(a.Tip)
		c.set(x, y, arrowGlyph(a.Tip.X-a.Left.X, a.Tip.Y-a.Left.Y), classEdge)
	}
	for i, r := range sc.Rects {
		x0, y0 := m.toCell(geom.Point{X: r.Rect.MinX, Y: r.Rect.MinY})
		x1, y1 := m.toCell(geom.Point{X: r.Rect.MaxX, Y: r.Rect.MaxY})
		label := ""
		if i < len(sc.Texts) {
			label = sc.Texts[i].S
		}
		c.box(x0, y0, x1, y1, label, classNode, classLabel)
	}
}

func (m *Model) drawMessage(c *canvas, message string) {
	lines := strings.Split(message, "\n")
	y := m.canvasH/2 - len(lines)/2
	for i, l := range lines {
		r := []rune(l)
		x := (m.width - len(r)) / 2
		c.text(x, y+i, l, classPlaceholder)
	}
}

func (m *Model) toCell(p geom.Point) (int, int) {
	s := m.view.ToScreen(p)
	return int(s.X / cellW), int(s.Y / cellH)
}

func (m *Model) statusBar() string {
	tag := "EMPTY"
	switch m.stage.Mode() {
	case scene.ModeGraph:
		g := m.stage.Graph()
		tag = fmt.Sprintf("GRAPH %d/%d", g.NodeCount(), g.EdgeCount())
	case scene.ModePlaceholder:
		tag = "MESSAGE"
	}
	left := statusTagStyle.Render(tag)
	right := statusStyle.Render(fmt.Sprintf("%s · %.0f%%", m.status, m.view.Scale*100))
	return left + right
}
