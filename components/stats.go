package components

import "github.com/yohamta/donburi"

type StatID int

const (
	StatSpeed StatID = iota
	StatStrength
	StatDefense
	StatMaxHealth
)

// Modifier adjusts one stat. Modifiers are kept in application order:
// effective = base, then every Add in order, then every Mult in order.
type Modifier struct {
	Stat StatID
	Add  float64
	Mult float64 // 0 is treated as 1 (no scaling)
}

type StatsData struct {
	BaseSpeed     float64
	BaseStrength  float64
	BaseDefense   float64
	BaseMaxHealth float64

	Modifiers []Modifier
}

var Stats = donburi.NewComponentType[StatsData]()

func (s *StatsData) base(id StatID) float64 {
	switch id {
	case StatSpeed:
		return s.BaseSpeed
	case StatStrength:
		return s.BaseStrength
	case StatDefense:
		return s.BaseDefense
	case StatMaxHealth:
		return s.BaseMaxHealth
	}
	return 0
}

// Effective computes the stat with all modifiers applied.
func (s *StatsData) Effective(id StatID) float64 {
	v := s.base(id)
	for _, m := range s.Modifiers {
		if m.Stat == id {
			v += m.Add
		}
	}
	for _, m := range s.Modifiers {
		if m.Stat == id && m.Mult != 0 {
			v *= m.Mult
		}
	}
	return v
}

// AddModifier appends a modifier, preserving application order.
func (s *StatsData) AddModifier(m Modifier) {
	s.Modifiers = append(s.Modifiers, m)
}
