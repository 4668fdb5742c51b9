package config

// ListingConfig controls the public job listing behavior.
type ListingConfig struct {
	// LookbackDays is the time span within which a job must have been created
	// to appear in either listing partition.
	LookbackDays int `env:"LISTING_LOOKBACK_DAYS" envDefault:"60"`

	// PageSize is the fixed page size of the non-sponsored list.
	PageSize int `env:"LISTING_PAGE_SIZE" envDefault:"20"`

	// SponsoredLimit caps the sponsored highlight set.
	SponsoredLimit int `env:"LISTING_SPONSORED_LIMIT" envDefault:"3"`

	// FeedSize is the number of jobs published in the syndication feed.
	FeedSize int `env:"LISTING_FEED_SIZE" envDefault:"10"`
}

// Sanitize applies guardrails to listing configuration values.
func (l *ListingConfig) Sanitize() {
	if l.LookbackDays <= 0 {
		l.LookbackDays = 60
	}
	if l.PageSize <= 0 {
		l.PageSize = 20
	}
	if l.SponsoredLimit < 0 {
		l.SponsoredLimit = 0
	}
	if l.FeedSize <= 0 {
		l.FeedSize = 10
	}
}
