// internal/defs/towers.go
package defs

import "fmt"

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID                 string    `yaml:"id"`
	Name               string    `yaml:"name"`
	Kind               TowerKind `yaml:"kind"`
	Cost               int       `yaml:"cost"`
	Range              float64   `yaml:"range"`
	FireInterval       float64   `yaml:"fireInterval"` // seconds between shots
	Damage             int       `yaml:"damage"`
	ProjectileSpeed    float64   `yaml:"projectileSpeed"`
	ProjectileLifetime float64   `yaml:"projectileLifetime"`
	Directions         int       `yaml:"directions"`
	Footprint          Size      `yaml:"footprint"`
	ProjectileBox      Size      `yaml:"projectileBox"`
}

func (d *TowerDefinition) applyDefaults() {
	if d.Kind == "" {
		d.Kind = TowerStandard
	}
	if d.Footprint.IsZero() {
		d.Footprint = DefaultTowerFootprint
	}
	if d.ProjectileBox.IsZero() {
		d.ProjectileBox = DefaultProjectileBox
	}
	if d.Name == "" {
		d.Name = d.ID
	}
}

func (d *TowerDefinition) validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("tower definition without id")
	case !d.Kind.Valid():
		return fmt.Errorf("tower %q: unknown kind %q", d.ID, d.Kind)
	case d.Cost <= 0:
		return fmt.Errorf("tower %q: cost must be positive", d.ID)
	case d.Range <= 0:
		return fmt.Errorf("tower %q: range must be positive", d.ID)
	case d.FireInterval <= 0:
		return fmt.Errorf("tower %q: fire interval must be positive", d.ID)
	case d.Damage <= 0:
		return fmt.Errorf("tower %q: damage must be positive", d.ID)
	case d.ProjectileSpeed <= 0 || d.ProjectileLifetime <= 0:
		return fmt.Errorf("tower %q: projectile speed and lifetime must be positive", d.ID)
	case d.Kind == TowerDirectional && d.Directions < 1:
		return fmt.Errorf("tower %q: directional tower needs at least one direction", d.ID)
	}
	if err := d.Footprint.validate("footprint"); err != nil {
		return fmt.Errorf("tower %q: %w", d.ID, err)
	}
	if err := d.ProjectileBox.validate("projectile box"); err != nil {
		return fmt.Errorf("tower %q: %w", d.ID, err)
	}
	return nil
}
