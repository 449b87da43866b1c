package scene

import (
	"math/rand"
	"testing"

	"github.com/frankdc/hogview/internal/creature"
)

const goodGraph = "\"A\" [label=\"a\"]\n\"B\" [label=\"b\"]\n\"A\" -> \"B\""

func TestStageInitialState(t *testing.T) {
	s := NewStage(nil)

	if s.Mode() != ModeEmpty {
		t.Fatalf("expected ModeEmpty, got %v", s.Mode())
	}
	if s.Scene().Message != EmptyMessage {
		t.Errorf("expected instructional message, got %q", s.Scene().Message)
	}
	if s.Graph() != nil {
		t.Error("no model in the empty state")
	}
}

func TestStageLoadText(t *testing.T) {
	s := NewStage(nil)

	if !s.LoadText(goodGraph) {
		t.Fatal("LoadText with nodes must report a graph was shown")
	}
	if s.Mode() != ModeGraph {
		t.Fatalf("expected ModeGraph, got %v", s.Mode())
	}
	if s.Graph() == nil || s.Graph().NodeCount() != 2 {
		t.Error("model missing after load")
	}
	if len(s.Scene().Rects) != 2 {
		t.Errorf("expected 2 node drawables, got %d", len(s.Scene().Rects))
	}
}

func TestStageLoadTextReplacesModel(t *testing.T) {
	s := NewStage(nil)
	s.LoadText(goodGraph)
	first := s.Graph()

	s.LoadText("\"C\" [label=\"c\"]")
	if s.Graph() == first {
		t.Error("reload must replace the model, not mutate it")
	}
	if s.Graph().NodeCount() != 1 {
		t.Errorf("expected 1 node after reload, got %d", s.Graph().NodeCount())
	}
}

func TestStageLoadTextNoNodes(t *testing.T) {
	s := NewStage(nil)

	if s.LoadText("digraph g {\n}\n") {
		t.Fatal("LoadText with no nodes must not report a graph")
	}
	if s.Mode() != ModePlaceholder {
		t.Fatalf("expected ModePlaceholder, got %v", s.Mode())
	}
	if s.Scene().Message != NoNodesMessage {
		t.Errorf("got %q", s.Scene().Message)
	}
}

func TestStageShowErrorFromAnyState(t *testing.T) {
	s := NewStage(nil)
	s.LoadText(goodGraph)

	s.ShowError("Analysis failed:\nboom")
	if s.Mode() != ModePlaceholder {
		t.Fatalf("expected ModePlaceholder, got %v", s.Mode())
	}
	if s.Scene().Message != "Analysis failed:\nboom" {
		t.Errorf("error text must be shown verbatim, got %q", s.Scene().Message)
	}
	if s.Graph() != nil {
		t.Error("model must be discarded on error")
	}
}

func TestStageClear(t *testing.T) {
	s := NewStage(nil)
	s.LoadText(goodGraph)

	s.Clear()
	if s.Mode() != ModeEmpty {
		t.Fatalf("expected ModeEmpty, got %v", s.Mode())
	}
	if len(s.Scene().Rects) != 0 || len(s.Scene().Lines) != 0 {
		t.Error("clear must remove all node/edge drawables")
	}
}

func TestStageCreaturesSurviveTransitions(t *testing.T) {
	herd := creature.NewHerd(2, rand.New(rand.NewSource(1)))
	s := NewStage(herd)

	s.LoadText(goodGraph)
	if herd.Count() != 2 {
		t.Fatal("creature count changed on load")
	}
	s.ShowError("oops")
	if herd.Count() != 2 {
		t.Fatal("creature count changed on error")
	}
	s.Clear()
	if herd.Count() != 2 {
		t.Fatal("creature count changed on clear")
	}
}

func TestStageUpdatesHerdBounds(t *testing.T) {
	herd := creature.NewHerd(1, rand.New(rand.NewSource(1)))
	s := NewStage(herd)

	empty := herd.Bounds()
	s.LoadText(goodGraph)
	loaded := herd.Bounds()

	if loaded == empty {
		t.Error("herd bounds must follow the scene bounds")
	}
	if loaded != s.Scene().Bounds() {
		t.Error("herd bounds must equal the current scene bounds")
	}
}
