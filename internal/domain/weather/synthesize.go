package weather

const (
	minTemperatureC = 12
	minHumidityPct  = 30
	minWindKmh      = 5
)

// Synthesize expands a seed into a reading. Each field reads its own bit window of the seed.
func Synthesize(seed uint32) Reading {
	r := Reading{
		TemperatureC:    minTemperatureC + int(seed%26),
		HumidityPct:     minHumidityPct + int((seed>>3)%71),
		PrecipChancePct: int((seed >> 6) % 101),
		WindKmh:         minWindKmh + int((seed>>10)%36),
	}
	r.Condition = Classify(r)
	r.Emoji = r.Condition.Symbol().Emoji()
	return r
}
