package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// tuningOverlay is the optional on-disk overlay for gameplay tuning.
// Only fields present in the file override the built-in defaults, so a
// partial file is fine.
type tuningOverlay struct {
	Player struct {
		Speed           *float64 `yaml:"speed"`
		JumpImpulse     *float64 `yaml:"jump_impulse"`
		Gravity         *float64 `yaml:"gravity"`
		MaxHealth       *int     `yaml:"max_health"`
		ShootCooldownMS *int64   `yaml:"shoot_cooldown_ms"`
		InvincibilityMS *int64   `yaml:"invincibility_ms"`
	} `yaml:"player"`

	Drops struct {
		BigHealCeiling   *int `yaml:"big_heal_ceiling"`
		SmallHealCeiling *int `yaml:"small_heal_ceiling"`
		ScoreCeiling     *int `yaml:"score_ceiling"`
	} `yaml:"drops"`

	Enemies map[string]struct {
		Health         *int     `yaml:"health"`
		Score          *int     `yaml:"score"`
		DetectionRange *float64 `yaml:"detection_range"`
		FireRateMS     *int64   `yaml:"fire_rate_ms"`
	} `yaml:"enemies"`
}

// LoadTuning applies the YAML overlay at path to the global config.
// A missing file is not an error; a malformed file is logged and skipped
// so bad tuning never kills a session.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var overlay tuningOverlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		logger.Error("tuning overlay is malformed, keeping defaults", "path", path, "err", err)
		return nil
	}

	applyOverlay(&overlay)
	logger.Info("tuning overlay applied", "path", path)
	return nil
}

func applyOverlay(o *tuningOverlay) {
	setF(&Player.Speed, o.Player.Speed)
	setF(&Player.JumpImpulse, o.Player.JumpImpulse)
	setF(&Player.Gravity, o.Player.Gravity)
	setI(&Player.MaxHealth, o.Player.MaxHealth)
	setI64(&Player.ShootCooldownMS, o.Player.ShootCooldownMS)
	setI64(&Player.InvincibilityMS, o.Player.InvincibilityMS)

	setI(&Item.BigHealCeiling, o.Drops.BigHealCeiling)
	setI(&Item.SmallHealCeiling, o.Drops.SmallHealCeiling)
	setI(&Item.ScoreCeiling, o.Drops.ScoreCeiling)

	for name, ov := range o.Enemies {
		tc, ok := Enemy.Types[name]
		if !ok {
			logger.Error("tuning overlay names unknown enemy type", "type", name)
			continue
		}
		setI(&tc.Health, ov.Health)
		setI(&tc.Score, ov.Score)
		setF(&tc.DetectionRange, ov.DetectionRange)
		setI64(&tc.FireRateMS, ov.FireRateMS)
		Enemy.Types[name] = tc
	}
}

func setF(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setI(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setI64(dst *int64, src *int64) {
	if src != nil {
		*dst = *src
	}
}

// WatchTuning reloads the overlay whenever the file changes. Returns a
// stop function. Intended for development only.
func WatchTuning(path string) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory; editors often replace the file wholesale,
	// which drops the watch on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := LoadTuning(path); err != nil {
					logger.Error("tuning reload failed", "err", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("tuning watcher error", "err", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
