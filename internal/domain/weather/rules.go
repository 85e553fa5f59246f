package weather

// ConditionRule pairs a predicate over the numeric fields with the condition it selects.
type ConditionRule struct {
	Name      string
	Matches   func(r Reading) bool
	Condition Condition
}

// Evaluated top to bottom; the last rule always matches.
var conditionRules = []ConditionRule{
	{
		Name:      "heavy precipitation with strong wind",
		Matches:   func(r Reading) bool { return r.PrecipChancePct > 60 && r.WindKmh > 25 },
		Condition: ConditionStorm,
	},
	{
		Name:      "heavy precipitation",
		Matches:   func(r Reading) bool { return r.PrecipChancePct > 60 },
		Condition: ConditionRain,
	},
	{
		Name:      "likely precipitation with humid air",
		Matches:   func(r Reading) bool { return r.PrecipChancePct > 25 && r.HumidityPct > 60 },
		Condition: ConditionRain,
	},
	{
		Name:      "likely precipitation",
		Matches:   func(r Reading) bool { return r.PrecipChancePct > 25 },
		Condition: ConditionPartly,
	},
	{
		Name:      "freezing",
		Matches:   func(r Reading) bool { return r.TemperatureC <= 5 },
		Condition: ConditionSnow,
	},
	{
		Name:      "humid and cool",
		Matches:   func(r Reading) bool { return r.HumidityPct > 80 && r.TemperatureC < 20 },
		Condition: ConditionMist,
	},
	{
		Name:      "hot",
		Matches:   func(r Reading) bool { return r.TemperatureC >= 30 },
		Condition: ConditionClear,
	},
	{
		Name:      "warm",
		Matches:   func(r Reading) bool { return r.TemperatureC >= 22 },
		Condition: ConditionPartly,
	},
	{
		Name:      "default",
		Matches:   func(Reading) bool { return true },
		Condition: ConditionCloudy,
	},
}

// ConditionRules returns a copy of the ordered classification table.
func ConditionRules() []ConditionRule {
	out := make([]ConditionRule, len(conditionRules))
	copy(out, conditionRules)
	return out
}

// Classify returns the condition of the first rule matching the reading. The stored
// Condition field of r is ignored.
func Classify(r Reading) Condition {
	for _, rule := range conditionRules {
		if rule.Matches(r) {
			return rule.Condition
		}
	}
	return ConditionCloudy
}
