// internal/defs/enemies.go
package defs

import "fmt"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	ContactDamage int     `yaml:"contactDamage"`
	KillReward    int     `yaml:"killReward"`
	UnlockRound   int     `yaml:"unlockRound"`
	Box           Size    `yaml:"box"`
}

func (d *EnemyDefinition) applyDefaults() {
	if d.Box.IsZero() {
		d.Box = DefaultEnemyBox
	}
	if d.UnlockRound < 1 {
		d.UnlockRound = 1
	}
	if d.Name == "" {
		d.Name = d.ID
	}
}

func (d *EnemyDefinition) validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("enemy definition without id")
	case d.Health <= 0:
		return fmt.Errorf("enemy %q: health must be positive", d.ID)
	case d.Speed <= 0:
		return fmt.Errorf("enemy %q: speed must be positive", d.ID)
	case d.ContactDamage < 0 || d.KillReward < 0:
		return fmt.Errorf("enemy %q: contact damage and kill reward must not be negative", d.ID)
	}
	if err := d.Box.validate("box"); err != nil {
		return fmt.Errorf("enemy %q: %w", d.ID, err)
	}
	return nil
}
