// Package creature animates decorative hedgehog sprites on a bounded
// random walk. The animator is independent of graph content: it only
// needs the current scene bounds, refreshed whenever those change.
package creature

import (
	"math"
	"math/rand"
	"time"

	"github.com/frankdc/hogview/internal/geom"
)

const (
	// Sprite glyph shown by renderers. Facing is a mirror flag; the
	// terminal renderer keeps the same glyph either way.
	Glyph = "\U0001F994" // 🦔

	speed        = 2.0
	retargetDist = 20.0
	footprint    = 50.0

	// Horizontal dead zone for facing flips, so near-vertical motion
	// does not flicker the sprite.
	faceDeadZone = 0.1

	// Forced-retarget countdown range, in ticks.
	minCountdown = 100
	maxCountdown = 300

	// Fraction of the bounds kept clear when sampling a target.
	targetMargin = 0.1

	wobbleScale = 0.2
)

// Creature is one sprite: current position, walk target, ticks left
// until a forced retarget, and which way it faces.
type Creature struct {
	ID          int
	Pos         geom.Point
	FacingRight bool

	target    geom.Point
	countdown int
}

// Herd owns a fixed set of creatures and the bounds they are confined
// to. All methods are single-goroutine; the UI tick is the only caller.
type Herd struct {
	rng       *rand.Rand
	bounds    geom.Rect
	creatures []*Creature
}

// NewHerd creates n creatures scattered near the origin. rng may be nil
// for a time-seeded source; tests pass a fixed seed.
func NewHerd(n int, rng *rand.Rand) *Herd {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	h := &Herd{rng: rng}
	for i := 0; i < n; i++ {
		c := &Creature{
			ID:          i,
			Pos:         geom.Point{X: float64(rng.Intn(400) - 200), Y: float64(rng.Intn(300) - 150)},
			FacingRight: true,
		}
		h.pickTarget(c)
		h.creatures = append(h.creatures, c)
	}
	return h
}

// Creatures returns the sprites for rendering.
func (h *Herd) Creatures() []*Creature { return h.creatures }

// Count returns the number of sprites. Stable for the herd's lifetime.
func (h *Herd) Count() int { return len(h.creatures) }

// SetBounds confines the herd to r. Called whenever the scene bounds
// change: a new graph, a placeholder, or a resize.
func (h *Herd) SetBounds(r geom.Rect) { h.bounds = r }

// Bounds returns the current confinement rectangle.
func (h *Herd) Bounds() geom.Rect { return h.bounds }

// Tick advances every creature one step.
func (h *Herd) Tick() {
	for _, c := range h.creatures {
		h.walk(c)
	}
}

// pickTarget samples a new walk target inside a 10% inset of the
// bounds, plus a fresh forced-retarget countdown.
func (h *Herd) pickTarget(c *Creature) {
	if h.bounds.Valid() {
		mx := h.bounds.Width() * targetMargin
		my := h.bounds.Height() * targetMargin
		inner := h.bounds.Inset(mx, my)
		c.target = geom.Point{
			X: inner.MinX + h.rng.Float64()*inner.Width(),
			Y: inner.MinY + h.rng.Float64()*inner.Height(),
		}
	} else {
		c.target = geom.Point{
			X: float64(h.rng.Intn(500) - 250),
			Y: float64(h.rng.Intn(400) - 200),
		}
	}
	c.countdown = minCountdown + h.rng.Intn(maxCountdown-minCountdown)
}

func (h *Herd) walk(c *Creature) {
	dx := c.target.X - c.Pos.X
	dy := c.target.Y - c.Pos.Y
	dist := math.Hypot(dx, dy)

	c.countdown--
	if dist < retargetDist || c.countdown <= 0 {
		h.pickTarget(c)
		dx = c.target.X - c.Pos.X
		dy = c.target.Y - c.Pos.Y
		dist = math.Hypot(dx, dy)
	}

	if dist <= 0 {
		return
	}
	dx /= dist
	dy /= dist

	// Small vertical perturbation so the walk isn't a straight line.
	wobble := (h.rng.Float64() - 0.5) * wobbleScale
	dy += wobble

	next := geom.Point{X: c.Pos.X + dx*speed, Y: c.Pos.Y + dy*speed}

	if dx < -faceDeadZone && c.FacingRight {
		c.FacingRight = false
	} else if dx > faceDeadZone && !c.FacingRight {
		c.FacingRight = true
	}

	if h.bounds.Valid() {
		next.X = geom.Clamp(next.X, h.bounds.MinX, h.bounds.MaxX-footprint)
		next.Y = geom.Clamp(next.Y, h.bounds.MinY, h.bounds.MaxY-footprint)
	}

	c.Pos = next
}
