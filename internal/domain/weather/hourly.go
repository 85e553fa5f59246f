package weather

import (
	"time"

	"github.com/yanqian/outfitcast/pkg/util"
)

// HourlySlots is the fixed length of the hourly forecast.
const HourlySlots = 6

// ExpandHourly builds the hourly forecast starting at now. Temperatures swing within
// [-3, +3] of baseTemp; labels use now's location.
func ExpandHourly(baseTemp int, base Condition, now time.Time) []HourlySlot {
	offset := mod(baseTemp, 7)
	slots := make([]HourlySlot, 0, HourlySlots)
	for i := 0; i < HourlySlots; i++ {
		symbol := hourlySymbol(i, offset, base)
		slots = append(slots, HourlySlot{
			Hour:         util.HourLabel(now.Add(time.Duration(i) * time.Hour)),
			TemperatureC: baseTemp + (i+offset)%7 - 3,
			Symbol:       symbol,
			Emoji:        symbol.Emoji(),
		})
	}
	return slots
}

func hourlySymbol(i, offset int, base Condition) Symbol {
	switch {
	case (base == ConditionRain || base == ConditionStorm) && i%2 == 0:
		return SymbolRain
	case base == ConditionClear:
		if (i+offset)%5 < 3 {
			return SymbolClear
		}
		return SymbolPartly
	default:
		return base.Symbol()
	}
}

// mod keeps the offset non-negative for sub-zero temperatures.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
