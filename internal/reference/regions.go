package reference

import "sort"

// RegionOther is the explicit bucket for states without a region
// assignment. Unmapped states are grouped here, never dropped.
const RegionOther = "Other"

// stateRegions assigns each state/union territory to a coarse
// geographic region used for regional roll-ups.
var stateRegions = map[string]string{
	"Punjab":            "North",
	"Haryana":           "North",
	"Himachal Pradesh":  "North",
	"Jammu and Kashmir": "North",
	"Delhi":             "North",
	"Uttarakhand":       "North",

	"Karnataka":      "South",
	"Tamil Nadu":     "South",
	"Andhra Pradesh": "South",
	"Telangana":      "South",
	"Kerala":         "South",

	"West Bengal": "East",
	"Odisha":      "East",
	"Jharkhand":   "East",
	"Bihar":       "East",

	"Maharashtra": "West",
	"Gujarat":     "West",
	"Rajasthan":   "West",
	"Goa":         "West",

	"Madhya Pradesh": "Central",
	"Chhattisgarh":   "Central",
	"Uttar Pradesh":  "Central",

	"Assam":             "Northeast",
	"Meghalaya":         "Northeast",
	"Manipur":           "Northeast",
	"Mizoram":           "Northeast",
	"Nagaland":          "Northeast",
	"Tripura":           "Northeast",
	"Arunachal Pradesh": "Northeast",
	"Sikkim":            "Northeast",

	"Andaman and Nicobar Islands": "Islands",
	"Lakshadweep":                 "Islands",
}

// RegionForState maps a state name to its region label. States with no
// assignment map to RegionOther.
func RegionForState(state string) string {
	if r, ok := stateRegions[state]; ok {
		return r
	}
	return RegionOther
}

// Regions returns all region labels, sorted, including RegionOther.
func Regions() []string {
	seen := map[string]struct{}{RegionOther: {}}
	for _, r := range stateRegions {
		seen[r] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
