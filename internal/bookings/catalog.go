package bookings

// CatalogEntry describes one bookable studio service: its hourly rate
// and the default session length. A negative rate means the service is
// quoted per project and cannot go through the self-serve booking flow.
type CatalogEntry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Rate        float64 `json:"rate"`
	Duration    int     `json:"duration"`
	Description string  `json:"description"`
}

// QuoteOnly reports whether the service requires a custom quote.
func (e CatalogEntry) QuoteOnly() bool {
	return e.Rate < 0
}

// Cost returns the total session cost (rate times default duration).
func (e CatalogEntry) Cost() float64 {
	return e.Rate * float64(e.Duration)
}

// serviceCatalog is the static studio service configuration.
var serviceCatalog = map[string]CatalogEntry{
	"studio-tour": {
		ID:          "studio-tour",
		Name:        "Studio Consultation",
		Rate:        0,
		Duration:    1,
		Description: "Free consultation and tour of our facilities",
	},
	"drive-in-studio": {
		ID:          "drive-in-studio",
		Name:        "Video Studio with Greenscreen",
		Rate:        150,
		Duration:    4,
		Description: "Multicamera setup with video switcher, livestream capability, professional audio",
	},
	"podcast-recording": {
		ID:          "podcast-recording",
		Name:        "Podcast Recording",
		Rate:        100,
		Duration:    2,
		Description: "Audio recording and mixing",
	},
	"digital-marketing": {
		ID:          "digital-marketing",
		Name:        "Digital Marketing",
		Rate:        -1,
		Duration:    0,
		Description: "Complete marketing solutions including video content and website development",
	},
	"mobile-ad-campaign": {
		ID:          "mobile-ad-campaign",
		Name:        "Mobile Ad Campaign",
		Rate:        -1,
		Duration:    0,
		Description: "Complete campaign production, contact for custom quote",
	},
	"ai-filmmaking": {
		ID:          "ai-filmmaking",
		Name:        "AI Filmmaking",
		Rate:        -1,
		Duration:    0,
		Description: "AI-enhanced content creation, contact for project pricing",
	},
}

// LookupService resolves a service catalog entry by id.
func LookupService(id string) (CatalogEntry, bool) {
	entry, ok := serviceCatalog[id]
	return entry, ok
}
