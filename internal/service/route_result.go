package service

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/nexalabs/nexa-task-api/internal/domain"
)

// TaskView is the display form of a task: the serialized record plus,
// for optimize_route tasks, a synthesized result block.
type TaskView struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Result    *RouteResult   `json:"result,omitempty"`
}

// RouteResult is the mock optimization result attached to the view of
// an optimize_route task. The figures are placeholders, not a computed
// optimization; no algorithm runs anywhere in this system.
type RouteResult struct {
	TotalDistance       float64             `json:"total_distance"`
	SuggestedOrder      []int               `json:"suggested_order"`
	Timestamp           string              `json:"timestamp"`
	OptimizationDetails OptimizationDetails `json:"optimization_details"`
}

// OptimizationDetails carries the fixed algorithm label and the two
// synthesized savings figures.
type OptimizationDetails struct {
	Algorithm string `json:"algorithm"`
	TimeSaved string `json:"time_saved"`
	FuelSaved string `json:"fuel_saved"`
}

// Bounds for the synthesized figures. These mirror the documented
// contract: distance 10.5-150.8, 3-8 stops when the caller supplied no
// locations, 5-45 minutes saved, 2.1-8.5 liters saved.
const (
	minDistance = 10.5
	maxDistance = 150.8

	minLocations = 3
	maxLocations = 8

	minMinutesSaved = 5
	maxMinutesSaved = 45

	minLitersSaved = 2.1
	maxLitersSaved = 8.5

	algorithmLabel = "greedy_nearest_neighbor"
)

// RouteResultBuilder synthesizes mock route optimization results.
// The random source is injected so tests can seed it; the production
// wiring seeds from the current time, keeping the result block
// intentionally non-reproducible across calls.
type RouteResultBuilder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRouteResultBuilder creates a RouteResultBuilder using the given
// random source. A nil rng seeds a new source from the current time.
func NewRouteResultBuilder(rng *rand.Rand) *RouteResultBuilder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RouteResultBuilder{rng: rng}
}

// Build synthesizes a result block for the given task. The suggested
// order has one entry per caller-supplied location; when the payload
// carries no locations, a random count between 3 and 8 is used.
func (b *RouteResultBuilder) Build(task *domain.Task) *RouteResult {
	b.mu.Lock()
	defer b.mu.Unlock()

	numLocations := locationCount(task.Payload)
	if numLocations == 0 {
		numLocations = minLocations + b.rng.Intn(maxLocations-minLocations+1)
	}

	order := make([]int, numLocations)
	for i := range order {
		order[i] = i + 1
	}

	return &RouteResult{
		TotalDistance:  roundTo(b.uniform(minDistance, maxDistance), 2),
		SuggestedOrder: order,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		OptimizationDetails: OptimizationDetails{
			Algorithm: algorithmLabel,
			TimeSaved: fmt.Sprintf("%d minutes",
				minMinutesSaved+b.rng.Intn(maxMinutesSaved-minMinutesSaved+1)),
			FuelSaved: fmt.Sprintf("%.1f liters",
				b.uniform(minLitersSaved, maxLitersSaved)),
		},
	}
}

// uniform returns a random float64 in [min, max).
// Callers must hold b.mu.
func (b *RouteResultBuilder) uniform(min, max float64) float64 {
	return min + b.rng.Float64()*(max-min)
}

// locationCount extracts the number of caller-supplied locations from
// the payload. JSON decoding yields []any for arrays; a missing key,
// a non-array value, or an empty array all count as zero.
func locationCount(payload map[string]any) int {
	locations, ok := payload["locations"].([]any)
	if !ok {
		return 0
	}
	return len(locations)
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
