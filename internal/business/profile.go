// Package business holds the immutable facts the assistant is allowed to state
// about the company. Compliance rules (no quoted prices, Montana-only service
// claims) all interpolate from this one place.
package business

// Profile is the process-wide business profile. It is constructed once at
// startup and never mutated, so it is safe for unlimited concurrent readers.
type Profile struct {
	Name        string
	Phone       string
	Email       string
	Address     string
	YearFounded int
	Heritage    string
	Guarantee   string

	// ServiceAreas lists the Montana towns the company will claim to serve.
	ServiceAreas []string
	// NonServiceIndicators are out-of-region place names. A location question
	// mentioning one of these gets the fixed out-of-area reply, never the LLM.
	NonServiceIndicators []string
}

// Default returns the production profile for Creative Drywall.
func Default() *Profile {
	return &Profile{
		Name:        "Creative Drywall",
		Phone:       "(406) 239-0850",
		Email:       "info@creativedrywall.buzz",
		Address:     "6785 Prairie Schooner Lane, Missoula, MT 59808",
		YearFounded: 1976,
		Heritage:    "49+ years of family expertise and 4 generations of craftsmanship",
		Guarantee:   "100% satisfaction guarantee",

		ServiceAreas: []string{
			"missoula", "lolo", "florence", "stevensville", "hamilton",
			"frenchtown", "bonner", "clinton", "seeley lake", "drummond",
			"philipsburg", "deer lodge", "anaconda", "butte", "helena",
			"great falls", "kalispell", "whitefish", "polson", "ronan",
			"bozeman", "livingston", "billings", "miles city", "montana",
		},
		NonServiceIndicators: []string{
			"california", "texas", "new york", "florida", "washington",
			"oregon", "idaho", "wyoming", "colorado", "utah", "arizona",
			"nevada", "canada", "overseas", "international",
		},
	}
}
