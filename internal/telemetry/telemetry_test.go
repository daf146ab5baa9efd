package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCountersIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ScreenViewed("dashboard")
	m.ScreenViewed("dashboard")
	m.DeviceToggled("pump", "isOn")
	m.NavigationRefused("sensor-without-id")
	m.LanguageChanged("Hindi")

	require.Equal(t, 2.0, testutil.ToFloat64(m.screenViews.WithLabelValues("dashboard")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.deviceToggles.WithLabelValues("pump", "isOn")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.refusedRoutes.WithLabelValues("sensor-without-id")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.languageSets.WithLabelValues("Hindi")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.ScreenViewed("x")
	m.DeviceToggled("x", "y")
	m.NavigationRefused("z")
	m.LanguageChanged("English")
}
