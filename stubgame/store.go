package stubgame

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"
)

// Placement is one tool placed on the map.
type Placement struct {
	ID       string    `json:"id"`
	Tool     string    `json:"tool"`
	X        int       `json:"x"`
	Y        int       `json:"y"`
	PlacedAt time.Time `json:"placedAt"`
}

// Global placement storage
var (
	placementsMu sync.Mutex
	placements   []Placement
)

// generatePlacementID creates a unique placement identifier
func generatePlacementID() string {
	bytes := make([]byte, 4)
	rand.Read(bytes)
	return fmt.Sprintf("%x", bytes)
}

// RecordPlacement stores a placement and returns it.
func RecordPlacement(tool string, x, y int) Placement {
	p := Placement{
		ID:       generatePlacementID(),
		Tool:     tool,
		X:        x,
		Y:        y,
		PlacedAt: time.Now(),
	}

	placementsMu.Lock()
	placements = append(placements, p)
	placementsMu.Unlock()

	return p
}

// Placements returns a copy of all recorded placements.
func Placements() []Placement {
	placementsMu.Lock()
	defer placementsMu.Unlock()

	out := make([]Placement, len(placements))
	copy(out, placements)
	return out
}

// ResetPlacements clears the store between test runs.
func ResetPlacements() {
	placementsMu.Lock()
	defer placementsMu.Unlock()

	placements = nil
}
