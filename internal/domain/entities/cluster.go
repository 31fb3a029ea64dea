package entities

// Cluster is a synthetic aggregate produced by the grid clusterer — it is
// never persisted and exists only inside one response. The center is the
// arithmetic mean of member coordinates, not a true spherical centroid;
// for map-marker aggregation at the cell sizes involved the difference is
// negligible, and the simplification is kept deliberately.
type Cluster struct {
	Center  Location `json:"center"`
	Count   int      `json:"count"`
	Spots   []Spot   `json:"spots"`
	TopSpot *Spot    `json:"topSpot,omitempty"`

	// Cell coordinates in the zoom-dependent grid. Kept on the struct so
	// output ordering is reproducible; not part of the wire contract.
	CellX int `json:"-"`
	CellY int `json:"-"`
}

// SpotDistance pairs a spot with its computed distance from a reference
// point. Used by the "distances" operation and distance-bounded filtering.
type SpotDistance struct {
	Spot
	Distance float64 `json:"distance"`
}

// RoutedSpot is a corridor-search result: the spot plus its detour cost
// (extra kilometers incurred by visiting it on the way from route start to
// route end) and its distance from the route start.
type RoutedSpot struct {
	Spot
	Detour        float64 `json:"detour"`
	DistFromStart float64 `json:"distFromStart"`
}
