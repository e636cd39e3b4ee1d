package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()

// Damage subtracts amount and clamps at zero. Returns the health
// actually removed.
func (h *HealthData) Damage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > h.Current {
		amount = h.Current
	}
	h.Current -= amount
	return amount
}

// Heal adds amount and clamps at Max. Returns the health actually
// restored.
func (h *HealthData) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if h.Current+amount > h.Max {
		amount = h.Max - h.Current
	}
	h.Current += amount
	return amount
}

// Kill forces health to zero. Hazard contact uses this; it bypasses
// defense and invincibility.
func (h *HealthData) Kill() {
	h.Current = 0
}

func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

func (h *HealthData) Full() bool {
	return h.Current >= h.Max
}
