package outfit

import (
	"fmt"
	"strings"

	"github.com/yanqian/outfitcast/internal/domain/weather"
)

const (
	noOuterwear      = "None"
	packableRaincoat = "Packable raincoat"
	umbrella         = "Umbrella"
)

type triad struct {
	primary Set
	alt1    Set
	alt2    Set
}

// bandRule selects the outfit triad. Only the first matching band applies.
type bandRule struct {
	band    Band
	weight  int
	matches func(r weather.Reading) bool
	note    func(r weather.Reading) string
	triad   func(r weather.Reading) triad
}

// modifierRule adjusts the primary outfit. Every matching modifier applies.
type modifierRule struct {
	name    string
	weight  int
	matches func(r weather.Reading) bool
	apply   func(primary *Set)
	note    func(r weather.Reading) string
}

var bandRules = []bandRule{
	{
		band:    BandHotHumid,
		weight:  2,
		matches: func(r weather.Reading) bool { return r.TemperatureC >= 30 && r.HumidityPct >= 65 },
		note: func(r weather.Reading) string {
			return fmt.Sprintf("High temperature (%d °C) and humidity (%d%%) → breathable fabrics", r.TemperatureC, r.HumidityPct)
		},
		triad: func(r weather.Reading) triad {
			alt2Accessory := "Cap"
			if r.PrecipChancePct > 30 {
				alt2Accessory = "Small umbrella"
			}
			return triad{
				primary: Set{Top: "Breathable cotton t-shirt", Bottom: "Light cotton shorts", Outerwear: noOuterwear, Footwear: "Sandals", Accessories: "Cap"},
				alt1:    Set{Top: "Linen shirt", Bottom: "Chino shorts", Outerwear: "Light scarf", Footwear: "Slip-ons", Accessories: "Sunglasses"},
				alt2:    Set{Top: "Moisture-wicking tee", Bottom: "Athletic shorts", Outerwear: noOuterwear, Footwear: "Sport sandals", Accessories: alt2Accessory},
			}
		},
	},
	{
		band:    BandWarm,
		weight:  2,
		matches: func(r weather.Reading) bool { return r.TemperatureC >= 22 && r.TemperatureC < 30 },
		note: func(r weather.Reading) string {
			return fmt.Sprintf("Moderate temperature (%d °C) → light layers", r.TemperatureC)
		},
		triad: func(weather.Reading) triad {
			return triad{
				primary: Set{Top: "Light long-sleeve tee", Bottom: "Chinos", Outerwear: "Light layer (cardigan)", Footwear: "Sneakers", Accessories: "Watch"},
				alt1:    Set{Top: "Polo shirt", Bottom: "Jeans", Outerwear: "Light jacket", Footwear: "Casual sneakers", Accessories: "Sunglasses"},
				alt2:    Set{Top: "Button-up shirt", Bottom: "Tailored shorts", Outerwear: "Light hoodie", Footwear: "Loafers", Accessories: "Cap"},
			}
		},
	},
	{
		band:    BandCool,
		weight:  2,
		matches: func(r weather.Reading) bool { return r.TemperatureC >= 18 && r.TemperatureC < 22 },
		note: func(r weather.Reading) string {
			return fmt.Sprintf("Cool temperature (%d °C) → consider light outerwear", r.TemperatureC)
		},
		triad: func(weather.Reading) triad {
			return triad{
				primary: Set{Top: "Long-sleeve shirt", Bottom: "Jeans", Outerwear: "Light jacket", Footwear: "Sneakers", Accessories: "Beanie (optional)"},
				alt1:    Set{Top: "Thermal tee", Bottom: "Corduroy pants", Outerwear: "Denim jacket", Footwear: "Ankle boots", Accessories: "Scarf"},
				alt2:    Set{Top: "Sweater", Bottom: "Chinos", Outerwear: "Trench coat", Footwear: "Casual boots", Accessories: "Watch"},
			}
		},
	},
	{
		// Terminal band: everything below 18 °C plus hot readings too dry for hot-humid.
		band:    BandCold,
		weight:  3,
		matches: func(weather.Reading) bool { return true },
		note: func(r weather.Reading) string {
			return fmt.Sprintf("Cold temperature (%d °C) → warm outerwear recommended", r.TemperatureC)
		},
		triad: func(weather.Reading) triad {
			return triad{
				primary: Set{Top: "Thermal top", Bottom: "Warm trousers", Outerwear: "Warm coat", Footwear: "Boots", Accessories: "Scarf & gloves"},
				alt1:    Set{Top: "Wool sweater", Bottom: "Jeans", Outerwear: "Puffer jacket", Footwear: "Insulated boots", Accessories: "Beanie"},
				alt2:    Set{Top: "Turtleneck", Bottom: "Wool skirt + tights", Outerwear: "Overcoat", Footwear: "Knee boots", Accessories: "Gloves"},
			}
		},
	},
}

var modifierRules = []modifierRule{
	{
		name:    "precipitation",
		weight:  2,
		matches: func(r weather.Reading) bool { return r.PrecipChancePct > 40 },
		apply: func(primary *Set) {
			primary.Accessories = appendAccessory(primary.Accessories, umbrella)
			if primary.Outerwear == "" || primary.Outerwear == noOuterwear {
				primary.Outerwear = packableRaincoat
			}
		},
		note: func(r weather.Reading) string {
			return fmt.Sprintf("High precipitation chance (%d%%) → carry umbrella or wear raincoat", r.PrecipChancePct)
		},
	},
	{
		name:    "humidity",
		weight:  1,
		matches: func(r weather.Reading) bool { return r.HumidityPct > 70 },
		apply: func(primary *Set) {
			primary.Top = strings.ReplaceAll(primary.Top, "Wool", "Breathable wool-blend")
		},
		note: func(r weather.Reading) string {
			return fmt.Sprintf("High humidity (%d%%) → prefer breathable fabrics and avoid heavy layers", r.HumidityPct)
		},
	},
	{
		name:    "wind",
		weight:  1,
		matches: func(r weather.Reading) bool { return r.WindKmh > 30 },
		apply:   func(*Set) {},
		note: func(r weather.Reading) string {
			return fmt.Sprintf("Windy (%d km/h) → consider secure footwear and windproof layers", r.WindKmh)
		},
	},
}

func selectBand(r weather.Reading) bandRule {
	for _, rule := range bandRules {
		if rule.matches(r) {
			return rule
		}
	}
	return bandRules[len(bandRules)-1]
}

func appendAccessory(current, item string) string {
	parts := strings.Split(current, ",")
	for _, p := range parts {
		if strings.TrimSpace(p) == item {
			return current
		}
	}
	return strings.Trim(current+", "+item, ", ")
}
