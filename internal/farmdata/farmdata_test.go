package farmdata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedSample(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.Len(t, c.Sensors, 5)
	require.Len(t, c.FieldNodes, 5)
	require.Len(t, c.Devices, 5)
	require.Len(t, c.Alerts, 6)
	require.Len(t, c.SensorDetail.Series["monthly"], 4)
	require.Len(t, c.Analytics.Heatmap, 6)
	require.Equal(t, "North Field A", c.Field.Name)
}

func TestAlertSummaryMatchesFilteredList(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	got := AlertSummary(c.Alerts)
	require.Equal(t, AlertCounts{Critical: 1, Warning: 3, Safe: 2}, got)
	require.Equal(t, len(c.Alerts), got.Total())
}

func TestFilterAlertsEmptySeverityKeepsAll(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.Len(t, FilterAlerts(c.Alerts, ""), len(c.Alerts))
	for _, a := range FilterAlerts(c.Alerts, SeverityWarning) {
		require.Equal(t, SeverityWarning, a.Severity)
	}
}

func TestParseRejectsDuplicateDeviceIDs(t *testing.T) {
	_, err := Parse([]byte(`
devices:
  - {id: pump, name: A}
  - {id: pump, name: B}
`))
	require.True(t, errors.Is(err, ErrDuplicateID), "got %v", err)
}

func TestParseRequiresRangeDatasets(t *testing.T) {
	_, err := Parse([]byte(`sensors: []`))
	require.True(t, errors.Is(err, ErrMissingRange), "got %v", err)
}

func TestSensorResolvesGridAndMapIDs(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	soil, ok := c.Sensor("soil")
	require.True(t, ok)
	require.Equal(t, "42%", soil.Value)
	require.Equal(t, StatusWarning, soil.Status)

	node, ok := c.Sensor("s5")
	require.True(t, ok)
	require.Equal(t, "38%", node.Value)

	_, ok = c.Sensor("nope")
	require.False(t, ok)
}

func TestBandFor(t *testing.T) {
	cases := map[int]MoistureBand{62: BandOptimal, 55: BandOptimal, 54: BandGood, 45: BandGood, 44: BandMedium, 35: BandMedium, 34: BandLow}
	for v, want := range cases {
		require.Equalf(t, want, BandFor(v), "value %d", v)
	}
}

func TestCloneDevicesIsIndependent(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	devs := c.CloneDevices()
	devs[0].IsOn = !devs[0].IsOn
	require.NotEqual(t, devs[0].IsOn, c.Devices[0].IsOn)
}
