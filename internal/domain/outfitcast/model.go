package outfitcast

import (
	"time"

	"github.com/yanqian/outfitcast/internal/domain/outfit"
	"github.com/yanqian/outfitcast/internal/domain/weather"
)

// Request captures the payload accepted by the forecast service.
type Request struct {
	Location string `json:"location"`
	// At pins the forecast clock; the service clock is used when nil.
	At *time.Time `json:"at,omitempty"`
}

// Result is the composite forecast handed back to the caller.
type Result struct {
	Location       string                `json:"location"`
	City           string                `json:"city"`
	Weather        weather.Reading       `json:"weather"`
	Recommendation outfit.Recommendation `json:"recommendation"`
	Hourly         []weather.HourlySlot  `json:"hourly"`
	GeneratedAt    time.Time             `json:"generatedAt"`
}

// Config wires runtime options for the forecast domain.
type Config struct {
	// Locations overrides the built-in capital catalog when non-empty.
	Locations []string
}
