package detectors

import (
	"context"
	"fmt"

	"access-analytics/internal/models"
	"access-analytics/internal/shared/loggers"
	"access-analytics/internal/shared/metrics"
	"access-analytics/internal/stores"
)

// Rule flags every IP whose number of entries with StatusCode is strictly greater than Threshold.
type Rule struct {
	Label      string
	StatusCode int
	Threshold  int64
}

// DefaultRules: repeated 401s look like password guessing, repeated 404s like path scanning.
var DefaultRules = []Rule{
	{Label: models.RuleBruteForce, StatusCode: 401, Threshold: 5},
	{Label: models.RuleScanning, StatusCode: 404, Threshold: 10},
}

//go:generate mockgen -source=anomaly_detector.go -destination=./mocks/anomaly_detector_mock.go -package=mocks
type AnomalyDetector interface {
	// Detect evaluates every rule against one snapshot of the committed entries.
	Detect(ctx context.Context) (*models.SecurityAlertSet, error)
}

type anomalyDetector struct {
	store stores.LogEntryStore
	rules []Rule
}

// NewAnomalyDetector builds a detector over rules; nil rules means DefaultRules.
func NewAnomalyDetector(store stores.LogEntryStore, rules []Rule) AnomalyDetector {
	if rules == nil {
		rules = DefaultRules
	}
	return &anomalyDetector{store: store, rules: rules}
}

func (d *anomalyDetector) Detect(ctx context.Context) (*models.SecurityAlertSet, error) {
	logger := loggers.Ctx(ctx)

	alerts := make([]models.RuleAlert, 0, len(d.rules))
	err := d.store.View(ctx, func(reader stores.LogEntryReader) error {
		for _, rule := range d.rules {
			alert, err := d.evaluate(ctx, reader, rule)
			if err != nil {
				return err
			}
			alerts = append(alerts, *alert)
		}
		return nil
	})
	if err != nil {
		svcErr := errInternalDetectionQueryFailed(err)
		metricDetectionRunTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	for _, alert := range alerts {
		if len(alert.Candidates) == 0 {
			continue
		}
		metricSuspiciousIPReportedTotal.WithLabelValues(alert.Rule).Add(float64(len(alert.Candidates)))
		logger.Info().Msgf("rule %s flagged %d ip(s) above %d x %d", alert.Rule, len(alert.Candidates), alert.Threshold, alert.StatusCode)
	}
	metricDetectionRunTotal.WithLabelValues(metrics.ValueNoError).Inc()

	return &models.SecurityAlertSet{Alerts: alerts}, nil
}

func (d *anomalyDetector) evaluate(ctx context.Context, reader stores.LogEntryReader, rule Rule) (*models.RuleAlert, error) {
	groups, err := reader.GroupCount(ctx, stores.FieldIPAddress,
		stores.EntryFilter{StatusCode: rule.StatusCode},
		stores.GroupOptions{CountAbove: rule.Threshold},
	)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", rule.Label, err)
	}

	candidates := make([]models.SuspiciousIP, 0, len(groups))
	for _, group := range groups {
		candidates = append(candidates, models.SuspiciousIP{IP: group.Key, Count: group.Count})
	}

	return &models.RuleAlert{
		Rule:       rule.Label,
		StatusCode: rule.StatusCode,
		Threshold:  rule.Threshold,
		Candidates: candidates,
	}, nil
}
