package outfitcast

// capitals lists the "State — Capital" keys offered to callers.
var capitals = []string{
	"Andhra Pradesh — Amaravati",
	"Arunachal Pradesh — Itanagar",
	"Assam — Dispur",
	"Bihar — Patna",
	"Chhattisgarh — Raipur",
	"Goa — Panaji",
	"Gujarat — Gandhinagar",
	"Haryana — Chandigarh",
	"Himachal Pradesh — Shimla",
	"Jharkhand — Ranchi",
	"Karnataka — Bengaluru",
	"Kerala — Thiruvananthapuram",
	"Madhya Pradesh — Bhopal",
	"Maharashtra — Mumbai",
	"Manipur — Imphal",
	"Meghalaya — Shillong",
	"Mizoram — Aizawl",
	"Nagaland — Kohima",
	"Odisha — Bhubaneswar",
	"Punjab — Chandigarh",
	"Rajasthan — Jaipur",
	"Sikkim — Gangtok",
	"Tamil Nadu — Chennai",
	"Telangana — Hyderabad",
	"Tripura — Agartala",
	"Uttar Pradesh — Lucknow",
	"Uttarakhand — Dehradun",
	"West Bengal — Kolkata",
	"Andaman and Nicobar Islands — Port Blair",
	"Chandigarh — Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu — Daman",
	"Delhi (NCT) — New Delhi",
	"Jammu & Kashmir — Srinagar",
	"Ladakh — Leh",
	"Lakshadweep — Kavaratti",
	"Puducherry — Puducherry",
}

// DefaultLocations returns a copy of the built-in capital catalog.
func DefaultLocations() []string {
	out := make([]string, len(capitals))
	copy(out, capitals)
	return out
}
