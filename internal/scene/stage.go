package scene

import (
	"github.com/frankdc/hogview/internal/creature"
	"github.com/frankdc/hogview/internal/dot"
	"github.com/frankdc/hogview/internal/layout"
	"github.com/frankdc/hogview/internal/model"
)

// Mode is the visualization area state.
type Mode int

const (
	// ModeEmpty shows the fixed instructional message. Initial state,
	// and the state after an explicit clear.
	ModeEmpty Mode = iota

	// ModePlaceholder shows a single message: an empty parse result or
	// an error from the analysis run.
	ModePlaceholder

	// ModeGraph shows rendered graph content.
	ModeGraph
)

// Fixed messages for the non-graph states.
const (
	EmptyMessage   = "Select a folder and run an analysis\nto visualize the call graph"
	NoNodesMessage = "No nodes found in the call graph"
)

// Stage drives the state machine over scenes. Exactly one of
// {rendered graph, placeholder message} is shown at any time. The
// creature herd is decoration, not graph content: it survives every
// transition and only has its bounds refreshed.
type Stage struct {
	mode  Mode
	graph *model.Graph
	scene *Scene
	herd  *creature.Herd
}

// NewStage returns a stage in the Empty state. herd may be nil when
// the animator is disabled; bounds updates are then skipped.
func NewStage(herd *creature.Herd) *Stage {
	s := &Stage{herd: herd}
	s.toPlaceholder(ModeEmpty, EmptyMessage)
	return s
}

// Mode returns the current state.
func (s *Stage) Mode() Mode { return s.mode }

// Scene returns the current drawable scene. Never nil.
func (s *Stage) Scene() *Scene { return s.scene }

// Graph returns the active model, or nil outside ModeGraph.
func (s *Stage) Graph() *model.Graph { return s.graph }

// LoadText parses a graph description and replaces the current model
// wholesale. A non-empty node set moves to ModeGraph and reports true
// so the caller can refit the viewport; an empty result moves to the
// "no nodes" placeholder.
func (s *Stage) LoadText(text string) bool {
	g := model.Build(dot.Parse(text))
	if g.NodeCount() == 0 {
		s.toPlaceholder(ModePlaceholder, NoNodesMessage)
		return false
	}
	layout.Apply(g)
	s.mode = ModeGraph
	s.graph = g
	s.scene = Render(g)
	s.refreshHerd()
	return true
}

// ShowError moves to the placeholder state with a verbatim message.
// Valid from any state; the model, if any, is discarded.
func (s *Stage) ShowError(message string) {
	s.toPlaceholder(ModePlaceholder, message)
}

// Clear discards the model and returns to the Empty state.
func (s *Stage) Clear() {
	s.toPlaceholder(ModeEmpty, EmptyMessage)
}

func (s *Stage) toPlaceholder(mode Mode, message string) {
	s.mode = mode
	s.graph = nil
	s.scene = RenderPlaceholder(message)
	s.refreshHerd()
}

func (s *Stage) refreshHerd() {
	if s.herd != nil {
		s.herd.SetBounds(s.scene.Bounds())
	}
}
