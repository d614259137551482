package layout

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// dragThreshold is the cumulative pointer displacement in pixels past which a
// press becomes a drag. Releases under the threshold are clicks.
const dragThreshold = 5

// springBackTicks bounds the spring-back animation to one second at the
// simulation frame rate.
const (
	simulationFPS   = 60
	springBackTicks = simulationFPS
)

// Release classifies what a pointer release meant.
type Release int

const (
	// ReleaseClick selects the item; the item never left its rest position.
	ReleaseClick Release = iota
	// ReleaseDrag ends a drag; the item springs back to its rest position.
	ReleaseDrag
)

type dragSession struct {
	item           *Item
	startX, startY float64
	dragged        bool
}

type springBack struct {
	item      *Item
	spring    harmonica.Spring
	vx, vy    float64
	remaining int
}

// PointerDown begins a pointer interaction with the identified item. Grabbing
// an item that is still springing back supersedes the animation. Returns
// false when no such item exists.
func (s *Simulation) PointerDown(id string, x, y float64) bool {
	it := s.find(id)
	if it == nil {
		return false
	}

	s.cancelSpringBack(it)
	s.drag = &dragSession{item: it, startX: x, startY: y}
	it.Fixed = true
	it.FX = it.X
	it.FY = it.Y
	s.alphaTarget = interactionAlphaTarget
	s.reheat(interactionAlphaTarget)
	return true
}

// PointerMove updates the held item's pinned position. Vertical movement is
// clamped to the visible band even mid-drag.
func (s *Simulation) PointerMove(x, y float64) {
	d := s.drag
	if d == nil {
		return
	}

	dx := x - d.startX
	dy := y - d.startY
	if math.Hypot(dx, dy) > dragThreshold {
		d.dragged = true
	}

	d.item.FX = x
	d.item.FY = s.clampY(y, d.item.Radius)
}

// PointerUp ends the interaction and classifies it. A click releases the item
// in place; a drag pins it to a spring animating back to its rest position,
// released after at most springBackTicks ticks.
func (s *Simulation) PointerUp() (Release, *Item) {
	d := s.drag
	if d == nil {
		return ReleaseClick, nil
	}
	s.drag = nil
	it := d.item

	if !d.dragged {
		it.Fixed = false
		s.alphaTarget = 0
		return ReleaseClick, it
	}

	// Cooling starts at release; the spring keeps the item pinned while the
	// rest of the layout relaxes around it.
	s.alphaTarget = 0
	s.springs = append(s.springs, &springBack{
		item:      it,
		spring:    harmonica.NewSpring(harmonica.FPS(simulationFPS), 8.0, 0.9),
		remaining: springBackTicks,
	})
	return ReleaseDrag, it
}

// Dragging reports whether a pointer currently holds an item.
func (s *Simulation) Dragging() bool { return s.drag != nil }

// stepSpringBack advances in-flight spring-back animations one tick and
// releases items whose animation finished or timed out. A settling spring
// parks its item exactly at rest and cools the simulation before unpinning,
// so the still-decaying forces cannot shove the item back off its position.
func (s *Simulation) stepSpringBack() {
	if len(s.springs) == 0 {
		return
	}
	kept := s.springs[:0]
	for _, sb := range s.springs {
		it := sb.item
		it.FX, sb.vx = sb.spring.Update(it.FX, sb.vx, it.OriginalX)
		it.FY, sb.vy = sb.spring.Update(it.FY, sb.vy, it.OriginalY)
		sb.remaining--

		settled := sb.remaining <= 0 ||
			(math.Abs(it.FX-it.OriginalX) < 0.5 && math.Abs(it.FY-it.OriginalY) < 0.5 &&
				math.Abs(sb.vx) < 0.5 && math.Abs(sb.vy) < 0.5)
		if settled {
			it.X, it.Y = it.OriginalX, s.clampY(it.OriginalY, it.Radius)
			it.VX, it.VY = 0, 0
			it.Fixed = false
			continue
		}
		kept = append(kept, sb)
	}
	s.springs = kept
	if len(s.springs) == 0 && s.drag == nil {
		s.alphaTarget = 0
		s.alpha = alphaMin
	}
}

func (s *Simulation) cancelSpringBack(it *Item) {
	kept := s.springs[:0]
	for _, sb := range s.springs {
		if sb.item != it {
			kept = append(kept, sb)
		}
	}
	s.springs = kept
}

func (s *Simulation) find(id string) *Item {
	for _, it := range s.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}
