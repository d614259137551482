package layout

import "sort"

// Grouping selects the clustering key for the garden.
type Grouping string

const (
	GroupingNone      Grouping = "none"
	GroupingAdjective Grouping = "adjective"
	GroupingLocation  Grouping = "location"
	GroupingFeeling   Grouping = "feeling"
)

// ParseGrouping maps a request parameter to a grouping mode, defaulting to
// ungrouped for anything unrecognized.
func ParseGrouping(s string) Grouping {
	switch Grouping(s) {
	case GroupingAdjective, GroupingLocation, GroupingFeeling:
		return Grouping(s)
	default:
		return GroupingNone
	}
}

func (g Grouping) key(it *Item) string {
	switch g {
	case GroupingAdjective:
		return it.Adjective
	case GroupingLocation:
		return it.Location
	case GroupingFeeling:
		return it.Feeling
	default:
		return ""
	}
}

// ungroupedClusters is the number of scatter columns in the ungrouped mode.
const ungroupedClusters = 5

// extendedWidth is the overflow canvas width the cluster targets spread
// across. Ungrouped gardens widen with item count so dense gardens scroll
// horizontally instead of piling up.
func (s *Simulation) extendedWidth() float64 {
	scale := 1.5
	if s.grouping == GroupingNone && len(s.items) > 20 {
		scale = 1.5 * float64(len(s.items)) / 20
	}
	return s.width * scale
}

// assignClusters recomputes each item's bucket and target X for the active
// grouping. Only cluster targets change; positions and velocities are left
// alone so a regroup relaxes smoothly from the current frame.
func (s *Simulation) assignClusters() {
	ext := s.extendedWidth()

	if s.grouping == GroupingNone {
		for i, it := range s.items {
			it.Cluster = i % ungroupedClusters
			it.clusterX = ext * float64(it.Cluster+1) / ungroupedClusters
		}
		return
	}

	// Bucket order is sorted by key so targets are stable across calls.
	buckets := make(map[string]int)
	var keys []string
	for _, it := range s.items {
		k := s.grouping.key(it)
		if _, ok := buckets[k]; !ok {
			buckets[k] = 0
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for i, k := range keys {
		buckets[k] = i
	}

	n := float64(len(keys))
	for _, it := range s.items {
		idx := buckets[s.grouping.key(it)]
		it.Cluster = idx
		it.clusterX = ext * float64(idx+1) / n
	}
}
