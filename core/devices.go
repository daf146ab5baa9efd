package core

import (
	"slices"

	"github.com/jask/smartfarm/internal/farmdata"
)

type DeviceSummary struct {
	Active int
	Auto   int
	Total  int
}

// DeviceList holds the automation devices in display order. Counts are
// always derived from the list.
type DeviceList struct {
	devices []farmdata.Device
	index   map[string]int
}

func NewDeviceList(devices []farmdata.Device) *DeviceList {
	l := &DeviceList{devices: slices.Clone(devices), index: make(map[string]int, len(devices))}
	for i, d := range l.devices {
		l.index[d.ID] = i
	}
	return l
}

func (l *DeviceList) Len() int { return len(l.devices) }

func (l *DeviceList) At(i int) farmdata.Device { return l.devices[i] }

func (l *DeviceList) Devices() []farmdata.Device { return slices.Clone(l.devices) }

func (l *DeviceList) Get(id string) (farmdata.Device, bool) {
	i, ok := l.index[id]
	if !ok {
		return farmdata.Device{}, false
	}
	return l.devices[i], true
}

// ToggleOn flips IsOn for id and returns the new value.
func (l *DeviceList) ToggleOn(id string) (bool, bool) {
	i, ok := l.index[id]
	if !ok {
		return false, false
	}
	l.devices[i].IsOn = !l.devices[i].IsOn
	return l.devices[i].IsOn, true
}

// ToggleAuto flips AutoMode for id and returns the new value.
func (l *DeviceList) ToggleAuto(id string) (bool, bool) {
	i, ok := l.index[id]
	if !ok {
		return false, false
	}
	l.devices[i].AutoMode = !l.devices[i].AutoMode
	return l.devices[i].AutoMode, true
}

// SetAllOn powers every device on or off and returns how many changed.
func (l *DeviceList) SetAllOn(on bool) int {
	changed := 0
	for i := range l.devices {
		if l.devices[i].IsOn != on {
			l.devices[i].IsOn = on
			changed++
		}
	}
	return changed
}

func (l *DeviceList) Summary() DeviceSummary {
	s := DeviceSummary{Total: len(l.devices)}
	for _, d := range l.devices {
		if d.IsOn {
			s.Active++
		}
		if d.AutoMode {
			s.Auto++
		}
	}
	return s
}
