package layout

import (
	"math"

	"garden-backend/internal/logger"
)

// Viewport is the window over the extended garden canvas. It owns its tick
// subscription on the simulation; Close must be called on teardown.
type Viewport struct {
	sim           *Simulation
	width, height float64
	offsetX       float64

	unsubscribe func()
	log         *logger.Logger
}

// NewViewport attaches a viewport of the given size to a simulation.
func NewViewport(sim *Simulation, width, height float64) *Viewport {
	v := &Viewport{
		sim:    sim,
		width:  width,
		height: height,
		log:    logger.New(),
	}
	v.unsubscribe = sim.Subscribe(v.clampOffset)
	return v
}

// OffsetX returns the current horizontal pan offset.
func (v *Viewport) OffsetX() float64 { return v.offsetX }

// Resize updates the viewport dimensions and propagates the new canvas size
// to the simulation.
func (v *Viewport) Resize(width, height float64) {
	v.width = width
	v.height = height
	v.sim.Resize(width, height)
	v.clampOffset()
}

// PanTo scrolls the viewport so canvas coordinate x sits at its center.
func (v *Viewport) PanTo(x float64) {
	v.offsetX = x - v.width/2
	v.clampOffset()
}

// HighlightProject pans the viewport to the item for the given project id and
// returns it. An unmatched id logs and pans to the middle of the cluster area
// so navigation still gives visible feedback.
func (v *Viewport) HighlightProject(projectID uint) *Item {
	for _, it := range v.sim.Items() {
		if it.Project && it.ProjectID == projectID {
			v.PanTo(it.X)
			return it
		}
	}

	v.log.WithField("project_id", projectID).Warn("highlight target not in garden, panning to cluster area")
	v.PanTo(v.sim.extendedWidth() / 2)
	return nil
}

// Close releases the viewport's simulation subscription.
func (v *Viewport) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// clampOffset keeps the pan inside the extended canvas.
func (v *Viewport) clampOffset() {
	maxOffset := math.Max(0, v.sim.extendedWidth()-v.width)
	v.offsetX = math.Max(0, math.Min(maxOffset, v.offsetX))
}
