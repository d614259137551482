// Package layout arranges garden icons on a 2D canvas with a force-directed
// relaxation: items are pulled toward their cluster's horizontal target and a
// soft floor line, pushed apart when they overlap, and clamped to a visible
// vertical band. The engine also runs the pointer interaction state machine
// (click vs drag vs spring-back) for each item.
package layout

import "fmt"

// Item is one icon in the garden. Project items are clickable and carry the
// project's grouping attributes; decorative items only fill out the scene.
type Item struct {
	ID        string
	ProjectID uint
	Project   bool

	// Visual attributes, fixed at creation.
	Shape    int
	Radius   float64
	Rotation float64
	Opacity  float64

	// Grouping keys, empty on decorative items.
	Adjective string
	Location  string
	Feeling   string

	// Simulation state.
	X, Y   float64
	VX, VY float64

	// Fixed position while a pointer holds the item.
	Fixed  bool
	FX, FY float64

	// Rest position recorded after settling, the spring-back target.
	OriginalX, OriginalY float64

	Cluster  int
	clusterX float64
}

const (
	projectRadius    = 75
	decorativeRadius = 50
)

// NewProjectItem builds the garden item for a project. The index drives the
// deterministic rotation offset so repeated loads render identically.
func NewProjectItem(index int, projectID uint, shape int, adjective, location, feeling string) *Item {
	if shape < 1 || shape > 15 {
		shape = (index % 15) + 1
	}
	return &Item{
		ID:        fmt.Sprintf("project-%d", projectID),
		ProjectID: projectID,
		Project:   true,
		Shape:     shape,
		Radius:    projectRadius,
		Rotation:  float64((index*17 - 10) % 360),
		Opacity:   0.98,
		Adjective: adjective,
		Location:  location,
		Feeling:   feeling,
	}
}

// DecorativeItems returns the fixed set of background icons.
func DecorativeItems() []*Item {
	specs := []struct {
		shape    int
		rotation float64
		opacity  float64
	}{
		{15, 8, 0.85},
		{1, -12, 0.85},
		{3, 16, 0.8},
		{5, -9, 0.8},
		{7, 14, 0.85},
		{9, -11, 0.8},
		{11, 18, 0.82},
		{13, -15, 0.78},
	}

	items := make([]*Item, len(specs))
	for i, s := range specs {
		items[i] = &Item{
			ID:       fmt.Sprintf("dec-%d", i+1),
			Shape:    s.shape,
			Radius:   decorativeRadius,
			Rotation: s.rotation,
			Opacity:  s.opacity,
		}
	}
	return items
}
