package models

const (
	RuleBruteForce = "brute_force"
	RuleScanning   = "scanning"
)

// SuspiciousIP is an IP address whose count of entries with a rule's status code
// strictly exceeded the rule's threshold.
type SuspiciousIP struct {
	IP    string `json:"ip"`
	Count int64  `json:"count"`
}

// RuleAlert is the evaluation of one anomaly rule; Candidates are sorted by Count descending.
type RuleAlert struct {
	Rule       string         `json:"rule"`
	StatusCode int            `json:"statusCode"`
	Threshold  int64          `json:"threshold"`
	Candidates []SuspiciousIP `json:"candidates"`
}

// SecurityAlertSet holds one RuleAlert per evaluated rule, in rule table order.
//
// Example JSON:
//
//	{
//	  "alerts": [
//	    {"rule": "brute_force", "statusCode": 401, "threshold": 5, "candidates": [{"ip": "1.1.1.1", "count": 6}]},
//	    {"rule": "scanning", "statusCode": 404, "threshold": 10, "candidates": []}
//	  ]
//	}
type SecurityAlertSet struct {
	Alerts []RuleAlert `json:"alerts"`
}

// Candidates returns the candidates reported by the named rule, or nil if the rule was not evaluated.
func (s *SecurityAlertSet) Candidates(rule string) []SuspiciousIP {
	for _, alert := range s.Alerts {
		if alert.Rule == rule {
			return alert.Candidates
		}
	}
	return nil
}

func (s *SecurityAlertSet) BruteForceCandidates() []SuspiciousIP {
	return s.Candidates(RuleBruteForce)
}

func (s *SecurityAlertSet) ScanningCandidates() []SuspiciousIP {
	return s.Candidates(RuleScanning)
}
