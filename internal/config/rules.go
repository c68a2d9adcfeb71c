// internal/config/rules.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WaveRules tunes the round difficulty curve.
type WaveRules struct {
	InitialEnemies         int     `yaml:"initialEnemies"`
	BaseIncrement          int     `yaml:"baseIncrement"`
	RampEvery              int     `yaml:"rampEvery"`
	RampStep               int     `yaml:"rampStep"`
	InitialSpawnInterval   float64 `yaml:"initialSpawnInterval"`
	SpawnIntervalDecrement float64 `yaml:"spawnIntervalDecrement"`
	SpawnIntervalFloor     float64 `yaml:"spawnIntervalFloor"`
}

// UpgradeRules is the fixed price and stat delta of one tower upgrade.
type UpgradeRules struct {
	Cost          int     `yaml:"cost"`
	RangeDelta    float64 `yaml:"rangeDelta"`
	IntervalDelta float64 `yaml:"intervalDelta"`
	IntervalFloor float64 `yaml:"intervalFloor"`
}

// Rules are the gameplay tunables of a session.
type Rules struct {
	StartingCoins    int          `yaml:"startingCoins"`
	BaseHealth       int          `yaml:"baseHealth"`
	AutoAdvance      bool         `yaml:"autoAdvance"`
	Seed             int64        `yaml:"seed"` // 0 = seed from the clock
	ArrivalThreshold float64      `yaml:"arrivalThreshold"`
	LeadDistance     float64      `yaml:"leadDistance"`
	HitReward        int          `yaml:"hitReward"`
	Waves            WaveRules    `yaml:"waves"`
	Upgrade          UpgradeRules `yaml:"upgrade"`
}

// DefaultRules returns the stock tuning.
func DefaultRules() Rules {
	return Rules{
		StartingCoins:    150,
		BaseHealth:       20,
		AutoAdvance:      false,
		ArrivalThreshold: 6,
		LeadDistance:     20,
		HitReward:        1,
		Waves: WaveRules{
			InitialEnemies:         2,
			BaseIncrement:          3,
			RampEvery:              3,
			RampStep:               1,
			InitialSpawnInterval:   1.6,
			SpawnIntervalDecrement: 0.1,
			SpawnIntervalFloor:     0.4,
		},
		Upgrade: UpgradeRules{
			Cost:          40,
			RangeDelta:    20,
			IntervalDelta: 0.1,
			IntervalFloor: 0.1,
		},
	}
}

// LoadRules overlays a YAML file on DefaultRules. Keys missing from the file
// keep their default values.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("failed to parse rules YAML from %s: %w", path, err)
	}
	if err := rules.Validate(); err != nil {
		return rules, fmt.Errorf("rules %s: %w", path, err)
	}
	return rules, nil
}

// Validate rejects tunings the simulation cannot run with.
func (r Rules) Validate() error {
	switch {
	case r.StartingCoins < 0:
		return fmt.Errorf("startingCoins must not be negative")
	case r.BaseHealth <= 0:
		return fmt.Errorf("baseHealth must be positive")
	case r.ArrivalThreshold <= 0:
		return fmt.Errorf("arrivalThreshold must be positive")
	case r.LeadDistance < 0:
		return fmt.Errorf("leadDistance must not be negative")
	case r.HitReward < 0:
		return fmt.Errorf("hitReward must not be negative")
	case r.Waves.InitialEnemies < 0:
		return fmt.Errorf("waves.initialEnemies must not be negative")
	case r.Waves.BaseIncrement <= 0:
		return fmt.Errorf("waves.baseIncrement must be positive")
	case r.Waves.RampEvery <= 0:
		return fmt.Errorf("waves.rampEvery must be positive")
	case r.Waves.RampStep < 0:
		return fmt.Errorf("waves.rampStep must not be negative")
	case r.Waves.SpawnIntervalFloor <= 0:
		return fmt.Errorf("waves.spawnIntervalFloor must be positive")
	case r.Waves.InitialSpawnInterval < r.Waves.SpawnIntervalFloor:
		return fmt.Errorf("waves.initialSpawnInterval must not be below the floor")
	case r.Waves.SpawnIntervalDecrement < 0:
		return fmt.Errorf("waves.spawnIntervalDecrement must not be negative")
	case r.Upgrade.Cost <= 0:
		return fmt.Errorf("upgrade.cost must be positive")
	case r.Upgrade.IntervalFloor <= 0:
		return fmt.Errorf("upgrade.intervalFloor must be positive")
	case r.Upgrade.RangeDelta < 0 || r.Upgrade.IntervalDelta < 0:
		return fmt.Errorf("upgrade deltas must not be negative")
	}
	return nil
}
