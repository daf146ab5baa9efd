// Package farmdata loads the static sample datasets shown by the dashboard
// screens. Nothing here is mutated at runtime except the device list, which
// callers copy before handing to a controller.
package farmdata

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

var (
	ErrDuplicateID  = errors.New("duplicate id")
	ErrMissingRange = errors.New("missing range dataset")
)

type Status string

const (
	StatusSafe    Status = "safe"
	StatusWarning Status = "warning"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeveritySafe     Severity = "safe"
)

type SensorReading struct {
	ID       string `yaml:"id"`
	LabelKey string `yaml:"label_key"`
	Value    string `yaml:"value"`
	Status   Status `yaml:"status"`
	Trend    string `yaml:"trend"`
	Range    string `yaml:"range"`
}

// FieldNode is a sensor placed on the field map. X and Y are percentages of
// the map extent.
type FieldNode struct {
	ID       string `yaml:"id"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Temp     int    `yaml:"temp"`
	Moisture int    `yaml:"moisture"`
	Status   Status `yaml:"status"`
}

type Zone struct {
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Moisture string `yaml:"moisture"`
}

type Point struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

type Recommendation struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
}

type SensorDetail struct {
	Prediction      string             `yaml:"prediction"`
	Series          map[string][]Point `yaml:"series"`
	Recommendations []Recommendation   `yaml:"recommendations"`
}

type Alert struct {
	ID             int      `yaml:"id"`
	Severity       Severity `yaml:"severity"`
	Title          string   `yaml:"title"`
	Message        string   `yaml:"message"`
	Timestamp      string   `yaml:"timestamp"`
	Recommendation string   `yaml:"recommendation"`
}

type Device struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	IsOn     bool   `yaml:"is_on"`
	AutoMode bool   `yaml:"auto_mode"`
	Schedule string `yaml:"schedule"`
	Status   string `yaml:"status"`
}

type PestRisk struct {
	Name    string `yaml:"name"`
	Level   string `yaml:"level"`
	Percent int    `yaml:"percent"`
}

type IrrigationSlot struct {
	Day      string `yaml:"day"`
	Time     string `yaml:"time"`
	Duration string `yaml:"duration"`
	Amount   string `yaml:"amount"`
	Status   string `yaml:"status"`
}

type Share struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

type Insights struct {
	GrowthStage  int              `yaml:"growth_stage"`
	Harvest      string           `yaml:"harvest"`
	GrowthNote   string           `yaml:"growth_note"`
	YieldTotal   string           `yaml:"yield_total"`
	Yield        []Point          `yaml:"yield"`
	PestRisks    []PestRisk       `yaml:"pest_risks"`
	PestTip      string           `yaml:"pest_tip"`
	Irrigation   []IrrigationSlot `yaml:"irrigation"`
	Resources    []Share          `yaml:"resources"`
	ResourceNote string           `yaml:"resource_note"`
}

type FieldSeries struct {
	Field  string  `yaml:"field"`
	Points []Point `yaml:"points"`
}

type Analytics struct {
	Moisture    map[string][]FieldSeries `yaml:"moisture"`
	Temperature map[string][]Point       `yaml:"temperature"`
	Heatmap     [][]int                  `yaml:"heatmap"`
}

type FieldInfo struct {
	Name  string  `yaml:"name"`
	Acres float64 `yaml:"acres"`
}

type Weather struct {
	Temperature string `yaml:"temperature"`
	Wind        string `yaml:"wind"`
}

type Catalog struct {
	Field        FieldInfo       `yaml:"field"`
	Weather      Weather         `yaml:"weather"`
	Sensors      []SensorReading `yaml:"sensors"`
	FieldNodes   []FieldNode     `yaml:"field_nodes"`
	Zones        []Zone          `yaml:"zones"`
	SensorDetail SensorDetail    `yaml:"sensor_detail"`
	Alerts       []Alert         `yaml:"alerts"`
	Devices      []Device        `yaml:"devices"`
	Insights     Insights        `yaml:"insights"`
	Analytics    Analytics       `yaml:"analytics"`
}

// Load parses the embedded sample dataset.
func Load() (*Catalog, error) {
	return Parse(sampleYAML)
}

// LoadFile parses a dataset override from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]struct{}, len(c.Sensors)+len(c.FieldNodes))
	for _, s := range c.Sensors {
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("sensor %q: %w", s.ID, ErrDuplicateID)
		}
		seen[s.ID] = struct{}{}
	}
	for _, n := range c.FieldNodes {
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("field sensor %q: %w", n.ID, ErrDuplicateID)
		}
		seen[n.ID] = struct{}{}
	}
	devices := make(map[string]struct{}, len(c.Devices))
	for _, d := range c.Devices {
		if _, dup := devices[d.ID]; dup {
			return fmt.Errorf("device %q: %w", d.ID, ErrDuplicateID)
		}
		devices[d.ID] = struct{}{}
	}
	alerts := make(map[int]struct{}, len(c.Alerts))
	for _, a := range c.Alerts {
		if _, dup := alerts[a.ID]; dup {
			return fmt.Errorf("alert %d: %w", a.ID, ErrDuplicateID)
		}
		alerts[a.ID] = struct{}{}
	}
	for _, r := range []string{"24h", "weekly", "monthly"} {
		if _, ok := c.SensorDetail.Series[r]; !ok {
			return fmt.Errorf("sensor series %s: %w", r, ErrMissingRange)
		}
	}
	for _, r := range []string{"week", "month", "year"} {
		if _, ok := c.Analytics.Moisture[r]; !ok {
			return fmt.Errorf("analytics moisture %s: %w", r, ErrMissingRange)
		}
		if _, ok := c.Analytics.Temperature[r]; !ok {
			return fmt.Errorf("analytics temperature %s: %w", r, ErrMissingRange)
		}
	}
	return nil
}

// SensorView is what the detail screen shows for a selected sensor id.
type SensorView struct {
	ID       string
	LabelKey string
	Label    string
	Value    string
	Status   Status
	Trend    string
	Range    string
}

// Sensor resolves an id from either the dashboard grid or the field map.
func (c *Catalog) Sensor(id string) (SensorView, bool) {
	for _, s := range c.Sensors {
		if s.ID == id {
			return SensorView{ID: s.ID, LabelKey: s.LabelKey, Value: s.Value, Status: s.Status, Trend: s.Trend, Range: s.Range}, true
		}
	}
	for _, n := range c.FieldNodes {
		if n.ID == id {
			return SensorView{
				ID:       n.ID,
				LabelKey: "sensor.soilMoisture",
				Label:    fmt.Sprintf("Sensor %s", n.ID),
				Value:    fmt.Sprintf("%d%%", n.Moisture),
				Status:   n.Status,
				Trend:    fmt.Sprintf("%d°C", n.Temp),
				Range:    "45-65%",
			}, true
		}
	}
	return SensorView{}, false
}

// CloneDevices returns a copy callers may mutate.
func (c *Catalog) CloneDevices() []Device {
	out := make([]Device, len(c.Devices))
	copy(out, c.Devices)
	return out
}
