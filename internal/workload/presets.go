package workload

import "fmt"

// Preset is a named built-in process sequence.
type Preset struct {
	ID           int
	ArrivalTimes []int
	BurstTimes   []int
}

// Sequence renders the preset in the "arrival,burst;..." format.
func (p Preset) Sequence() string {
	return FormatSequence(p.ArrivalTimes, p.BurstTimes)
}

// Presets returns the built-in sequences, numbered from 1. A fresh copy is
// returned on every call.
func Presets() []Preset {
	return []Preset{
		{ID: 1, ArrivalTimes: []int{0, 1, 3, 4, 8, 14, 25}, BurstTimes: []int{1, 11, 3, 1, 6, 2, 1}},
		{ID: 2, ArrivalTimes: []int{0, 1, 2, 3, 4, 5}, BurstTimes: []int{7, 5, 3, 1, 2, 1}},
		{ID: 3, ArrivalTimes: []int{0, 1, 12, 15, 21}, BurstTimes: []int{2, 4, 4, 5, 10}},
	}
}

// LookupPreset returns the preset with the given id.
func LookupPreset(id int) (Preset, error) {
	for _, p := range Presets() {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %d; valid: 1-%d", id, len(Presets()))
}
