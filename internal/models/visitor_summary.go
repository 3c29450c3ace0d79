package models

const TopN = 5

// VisitorSummary is the visitor analytics over every committed log entry.
//
// Example JSON:
//
//	{
//	  "totalVisits": 1200,
//	  "uniqueVisitors": 87,
//	  "botVisits": 140,
//	  "topPages": [{"page": "/", "count": 600}, {"page": "/about", "count": 120}],
//	  "topCountries": [{"country": "Germany", "count": 300}],
//	  "topBrowsers": [{"browser": "Chrome", "count": 800}]
//	}
//
// Rankings hold at most TopN items; ties keep the order in which the key was first stored.
type VisitorSummary struct {
	TotalVisits    int64          `json:"totalVisits"`
	UniqueVisitors int64          `json:"uniqueVisitors"`
	BotVisits      int64          `json:"botVisits"`
	TopPages       []PageCount    `json:"topPages"`
	TopCountries   []CountryCount `json:"topCountries"`
	TopBrowsers    []BrowserCount `json:"topBrowsers"`
}

type PageCount struct {
	Page  string `json:"page"`
	Count int64  `json:"count"`
}

type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

type BrowserCount struct {
	Browser string `json:"browser"`
	Count   int64  `json:"count"`
}

// NewEmptyVisitorSummary returns a zero summary with non-nil rankings so it serializes as [] instead of null.
func NewEmptyVisitorSummary() *VisitorSummary {
	return &VisitorSummary{
		TopPages:     []PageCount{},
		TopCountries: []CountryCount{},
		TopBrowsers:  []BrowserCount{},
	}
}
