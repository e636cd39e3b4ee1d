package components

import "testing"

func TestHealthDamageClampsAtZero(t *testing.T) {
	h := HealthData{Current: 3, Max: 10}

	if dealt := h.Damage(2); dealt != 2 || h.Current != 1 {
		t.Errorf("Damage(2): dealt %d, current %d; want 2, 1", dealt, h.Current)
	}
	if dealt := h.Damage(5); dealt != 1 || h.Current != 0 {
		t.Errorf("overkill: dealt %d, current %d; want 1, 0", dealt, h.Current)
	}
	if dealt := h.Damage(-4); dealt != 0 || h.Current != 0 {
		t.Errorf("negative amount: dealt %d, current %d; want 0, 0", dealt, h.Current)
	}
	if !h.Dead() {
		t.Error("zero health is not dead")
	}
}

func TestHealthHealClampsAtMax(t *testing.T) {
	h := HealthData{Current: 7, Max: 10}

	if restored := h.Heal(2); restored != 2 || h.Current != 9 {
		t.Errorf("Heal(2): restored %d, current %d; want 2, 9", restored, h.Current)
	}
	if restored := h.Heal(6); restored != 1 || h.Current != 10 {
		t.Errorf("overheal: restored %d, current %d; want 1, 10", restored, h.Current)
	}
	if restored := h.Heal(-3); restored != 0 || h.Current != 10 {
		t.Errorf("negative amount: restored %d, current %d; want 0, 10", restored, h.Current)
	}
	if !h.Full() {
		t.Error("max health is not full")
	}
}

func TestHealthKillBypassesClamping(t *testing.T) {
	h := HealthData{Current: 10, Max: 10}
	h.Kill()
	if h.Current != 0 || !h.Dead() {
		t.Errorf("after Kill: current %d, dead %v; want 0, true", h.Current, h.Dead())
	}
}
