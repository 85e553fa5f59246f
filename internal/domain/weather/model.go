package weather

// Condition is the categorical label derived from the numeric weather fields.
type Condition string

const (
	ConditionClear  Condition = "clear"
	ConditionPartly Condition = "partly"
	ConditionCloudy Condition = "cloudy"
	ConditionRain   Condition = "rain"
	ConditionStorm  Condition = "storm"
	ConditionSnow   Condition = "snow"
	ConditionMist   Condition = "mist"
)

// Symbol tags an hourly slot for display.
type Symbol string

const (
	SymbolClear  Symbol = "clear"
	SymbolPartly Symbol = "partly"
	SymbolCloudy Symbol = "cloudy"
	SymbolRain   Symbol = "rain"
	SymbolStorm  Symbol = "storm"
	SymbolSnow   Symbol = "snow"
	SymbolMist   Symbol = "mist"
	// SymbolMild is used for conditions without a registered symbol.
	SymbolMild Symbol = "mild"
)

var symbolEmoji = map[Symbol]string{
	SymbolClear:  "☀️",
	SymbolPartly: "⛅",
	SymbolCloudy: "☁️",
	SymbolRain:   "🌧️",
	SymbolStorm:  "⛈️",
	SymbolSnow:   "❄️",
	SymbolMist:   "🌫️",
	SymbolMild:   "🌤️",
}

// Emoji returns the pictogram shown next to the symbol.
func (s Symbol) Emoji() string {
	if e, ok := symbolEmoji[s]; ok {
		return e
	}
	return symbolEmoji[SymbolMild]
}

var conditionSymbols = map[Condition]Symbol{
	ConditionClear:  SymbolClear,
	ConditionPartly: SymbolPartly,
	ConditionCloudy: SymbolCloudy,
	ConditionRain:   SymbolRain,
	ConditionStorm:  SymbolStorm,
	ConditionSnow:   SymbolSnow,
	ConditionMist:   SymbolMist,
}

// Symbol maps the condition to its registered symbol, falling back to SymbolMild.
func (c Condition) Symbol() Symbol {
	if s, ok := conditionSymbols[c]; ok {
		return s
	}
	return SymbolMild
}

// Reading is a synthetic weather observation.
type Reading struct {
	TemperatureC    int       `json:"temperatureC"`
	HumidityPct     int       `json:"humidityPct"`
	PrecipChancePct int       `json:"precipChancePct"`
	WindKmh         int       `json:"windKmh"`
	Condition       Condition `json:"condition"`
	Emoji           string    `json:"emoji"`
}

// HourlySlot is a single entry of the short-horizon forecast.
type HourlySlot struct {
	Hour         string `json:"hour"`
	TemperatureC int    `json:"temperatureC"`
	Symbol       Symbol `json:"symbol"`
	Emoji        string `json:"emoji"`
}
