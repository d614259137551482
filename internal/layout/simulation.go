package layout

import "math"

// Force tuning. Targets and strengths follow the garden's visual design: a
// firm pull toward the floor line, a gentler pull toward the cluster column,
// overlap resolution scaled by radius, and a weak long-range attraction that
// keeps clusters from fraying.
const (
	clusterStrength = 0.3
	floorStrength   = 0.6
	floorOffset     = 100
	collideStrength = 0.7
	chargeStrength  = 5
	chargeMaxDist   = 200

	topMargin    = 60
	bottomMargin = 20

	settleTicks = 300

	alphaMin      = 0.001
	velocityDecay = 0.6

	interactionAlphaTarget = 0.3
)

// alphaDecay cools the simulation so a free-running relaxation reaches
// alphaMin in about settleTicks iterations.
var alphaDecay = 1 - math.Pow(alphaMin, 1.0/settleTicks)

// Simulation relaxes a set of items toward their cluster targets. It is not
// safe for concurrent use; callers serialize Tick and pointer events.
type Simulation struct {
	items         []*Item
	width, height float64
	grouping      Grouping

	alpha       float64
	alphaTarget float64

	drag    *dragSession
	springs []*springBack

	listeners  map[int]func()
	listenerID int
}

// NewSimulation creates a simulation over items on a width x height canvas
// and assigns initial clusters for the given grouping.
func NewSimulation(items []*Item, width, height float64, grouping Grouping) *Simulation {
	s := &Simulation{
		items:    items,
		width:    width,
		height:   height,
		grouping: grouping,
		alpha:    1,
	}
	s.assignClusters()
	return s
}

// Items exposes the simulated items in their creation order.
func (s *Simulation) Items() []*Item { return s.items }

// Grouping returns the active grouping mode.
func (s *Simulation) Grouping() Grouping { return s.grouping }

// Settle runs the fixed pre-paint relaxation and records each item's rest
// position as its spring-back target.
func (s *Simulation) Settle() {
	for i := 0; i < settleTicks; i++ {
		s.Tick()
	}
	for _, it := range s.items {
		it.OriginalX = it.X
		it.OriginalY = it.Y
	}
}

// Tick advances the relaxation one step.
func (s *Simulation) Tick() {
	s.alpha += (s.alphaTarget - s.alpha) * alphaDecay

	for _, it := range s.items {
		it.VX += (it.clusterX - it.X) * clusterStrength * s.alpha
		it.VY += (s.height - floorOffset - it.Y) * floorStrength * s.alpha
	}
	s.applyCharge()
	s.applyCollide()

	for _, it := range s.items {
		if it.Fixed {
			it.X = it.FX
			it.Y = it.FY
			it.VX = 0
			it.VY = 0
		} else {
			it.VX *= velocityDecay
			it.VY *= velocityDecay
			it.X += it.VX
			it.Y += it.VY
		}
		it.Y = s.clampY(it.Y, it.Radius)
	}

	s.stepSpringBack()

	for _, fn := range s.listeners {
		fn()
	}
}

// Subscribe registers a callback invoked after every tick and returns its
// cancel function. Subscribers must cancel on teardown.
func (s *Simulation) Subscribe(fn func()) (cancel func()) {
	if s.listeners == nil {
		s.listeners = make(map[int]func())
	}
	id := s.listenerID
	s.listenerID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// SetGrouping switches the clustering key. Current positions and velocities
// are preserved as the starting state of the next relaxation, and the
// simulation is reheated so the transition animates instead of snapping.
func (s *Simulation) SetGrouping(g Grouping) {
	if g == s.grouping {
		return
	}
	s.grouping = g
	s.assignClusters()
	s.reheat(interactionAlphaTarget)
}

// Resize updates the canvas dimensions, recomputes cluster targets, and
// reheats the relaxation.
func (s *Simulation) Resize(width, height float64) {
	s.width = width
	s.height = height
	s.assignClusters()
	s.reheat(interactionAlphaTarget)
}

// reheat raises alpha so a cooled simulation starts moving again.
func (s *Simulation) reheat(alpha float64) {
	if s.alpha < alpha {
		s.alpha = alpha
	}
}

func (s *Simulation) clampY(y, radius float64) float64 {
	return math.Max(radius+topMargin, math.Min(s.height-radius-bottomMargin, y))
}

// applyCharge applies the weak long-range pairwise force, cut off beyond
// chargeMaxDist.
func (s *Simulation) applyCharge() {
	for i, a := range s.items {
		for _, b := range s.items[i+1:] {
			dx := b.X - a.X
			dy := b.Y - a.Y
			l2 := dx*dx + dy*dy
			if l2 == 0 || l2 > chargeMaxDist*chargeMaxDist {
				continue
			}
			w := chargeStrength * s.alpha / l2
			a.VX += dx * w
			a.VY += dy * w
			b.VX -= dx * w
			b.VY -= dy * w
		}
	}
}

// applyCollide pushes apart item pairs whose projected positions overlap,
// splitting the correction by relative radius.
func (s *Simulation) applyCollide() {
	for i, a := range s.items {
		for _, b := range s.items[i+1:] {
			r := a.Radius + b.Radius
			dx := (b.X + b.VX) - (a.X + a.VX)
			dy := (b.Y + b.VY) - (a.Y + a.VY)
			l2 := dx*dx + dy*dy
			if l2 >= r*r {
				continue
			}
			l := math.Sqrt(l2)
			if l == 0 {
				// Coincident centers get a deterministic nudge.
				l = 1e-6
				dx = 1e-6
			}
			d := (r - l) / l * collideStrength
			share := b.Radius * b.Radius / (a.Radius*a.Radius + b.Radius*b.Radius)
			a.VX -= dx * d * share
			a.VY -= dy * d * share
			b.VX += dx * d * (1 - share)
			b.VY += dy * d * (1 - share)
		}
	}
}
