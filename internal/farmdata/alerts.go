package farmdata

// AlertCounts is always derived from an alert list, never stored.
type AlertCounts struct {
	Critical int
	Warning  int
	Safe     int
}

func (c AlertCounts) Total() int { return c.Critical + c.Warning + c.Safe }

func AlertSummary(alerts []Alert) AlertCounts {
	return AlertCounts{
		Critical: len(FilterAlerts(alerts, SeverityCritical)),
		Warning:  len(FilterAlerts(alerts, SeverityWarning)),
		Safe:     len(FilterAlerts(alerts, SeveritySafe)),
	}
}

// FilterAlerts keeps alerts of one severity. An empty severity keeps all.
func FilterAlerts(alerts []Alert, severity Severity) []Alert {
	out := make([]Alert, 0, len(alerts))
	for _, a := range alerts {
		if severity == "" || a.Severity == severity {
			out = append(out, a)
		}
	}
	return out
}

type MoistureBand string

const (
	BandOptimal MoistureBand = "optimal"
	BandGood    MoistureBand = "good"
	BandMedium  MoistureBand = "medium"
	BandLow     MoistureBand = "low"
)

// BandFor classifies a heatmap cell.
func BandFor(v int) MoistureBand {
	switch {
	case v >= 55:
		return BandOptimal
	case v >= 45:
		return BandGood
	case v >= 35:
		return BandMedium
	default:
		return BandLow
	}
}
