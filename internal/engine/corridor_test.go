package engine

import (
	"testing"

	"hitchmap/internal/domain/entities"
	"hitchmap/pkg/geoutil"
)

func TestCorridor_ParisToLyon(t *testing.T) {
	paris := entities.Location{Lat: 48.8566, Lng: 2.3522}
	lyon := entities.Location{Lat: 45.7640, Lng: 4.8357}

	// Auxerre sits roughly on the A6 between Paris and Lyon; Berlin is far
	// off-route in every sense.
	auxerre := entities.Spot{ID: "auxerre", Lat: fp(47.7982), Lng: fp(3.5730)}
	spots := []entities.Spot{berlinSpot(), auxerre, lyonSpot(), parisSpot()}

	got := Corridor(spots, paris, lyon, 50)

	for _, r := range got {
		if r.ID == "berlin" {
			t.Fatal("berlin should not appear in a Paris→Lyon corridor")
		}
		if r.Detour >= 50 {
			t.Errorf("%s detour %v exceeds corridor width", r.ID, r.Detour)
		}
	}

	// Ascending by distance from the start.
	for i := 1; i < len(got); i++ {
		if got[i].DistFromStart < got[i-1].DistFromStart {
			t.Errorf("results not ordered by distFromStart: %v then %v",
				got[i-1].DistFromStart, got[i].DistFromStart)
		}
	}

	found := false
	for _, r := range got {
		if r.ID == "auxerre" {
			found = true
			if r.DistFromStart < 100 || r.DistFromStart > 200 {
				t.Errorf("auxerre distFromStart = %v, want ≈150", r.DistFromStart)
			}
		}
	}
	if !found {
		t.Error("auxerre should be inside the corridor")
	}
}

func TestCorridor_DegenerateRoute(t *testing.T) {
	paris := entities.Location{Lat: 48.8566, Lng: 2.3522}

	near := entities.Spot{ID: "near", Lat: fp(48.90), Lng: fp(2.40)}  // a few km out
	far := entities.Spot{ID: "far", Lat: fp(49.30), Lng: fp(2.3522)} // ~49 km north

	got := Corridor([]entities.Spot{near, far}, paris, paris, 50)

	// With coincident endpoints, detour = 2 × distance-to-point, so every
	// survivor is within the width of the point (here, within 25 km).
	for _, r := range got {
		d := geoutil.HaversineDistance(paris.Lat, paris.Lng, *r.Lat, *r.Lng)
		if d > 50 {
			t.Errorf("%s is %v km from the point, outside the width", r.ID, d)
		}
	}

	if len(got) != 1 || got[0].ID != "near" {
		t.Errorf("got %v, want only the near spot", got)
	}
}

func TestCorridor_PositionlessExcluded(t *testing.T) {
	paris := entities.Location{Lat: 48.8566, Lng: 2.3522}
	lyon := entities.Location{Lat: 45.7640, Lng: 4.8357}
	ghost := entities.Spot{ID: "ghost", Country: "France"}

	got := Corridor([]entities.Spot{ghost, parisSpot()}, paris, lyon, 50)
	for _, r := range got {
		if r.ID == "ghost" {
			t.Fatal("positionless spot should be excluded from corridor search")
		}
	}
}

func TestCorridor_DetourAnnotation(t *testing.T) {
	paris := entities.Location{Lat: 48.8566, Lng: 2.3522}
	lyon := entities.Location{Lat: 45.7640, Lng: 4.8357}

	got := Corridor([]entities.Spot{parisSpot()}, paris, lyon, 50)
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	// The start point itself has zero detour and zero distance from start.
	if got[0].Detour != 0 || got[0].DistFromStart != 0 {
		t.Errorf("start spot detour=%v distFromStart=%v, want 0/0", got[0].Detour, got[0].DistFromStart)
	}
}
