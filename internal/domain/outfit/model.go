package outfit

// Set is one complete outfit.
type Set struct {
	Top         string `json:"top"`
	Bottom      string `json:"bottom"`
	Outerwear   string `json:"outerwear"`
	Footwear    string `json:"footwear"`
	Accessories string `json:"accessories"`
}

// Band is the temperature/humidity tier that selected the outfit triad.
type Band string

const (
	BandHotHumid Band = "hot-humid"
	BandWarm     Band = "warm"
	BandCool     Band = "cool"
	BandCold     Band = "cold"
)

// Recommendation is the outcome of the rule engine.
type Recommendation struct {
	Primary       Set      `json:"primary"`
	Alternates    []Set    `json:"alternates"`
	Band          Band     `json:"band"`
	ConfidencePct int      `json:"confidencePct"`
	Reasoning     string   `json:"reasoning"`
	Notes         []string `json:"notes"`
}
