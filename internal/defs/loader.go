// internal/defs/loader.go
package defs

import (
	"embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed data/enemies.yaml data/towers.yaml
var dataFS embed.FS

// Library holds every archetype keyed by id, plus the file order of each table.
type Library struct {
	Enemies    map[string]EnemyDefinition
	Towers     map[string]TowerDefinition
	TowerOrder []string
	enemyOrder []string // sorted by id
}

// Default builds the library from the embedded archetype tables.
func Default() (*Library, error) {
	enemies, err := dataFS.ReadFile("data/enemies.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded enemy definitions: %w", err)
	}
	towers, err := dataFS.ReadFile("data/towers.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tower definitions: %w", err)
	}
	return Parse(enemies, towers)
}

// Load reads the enemy and tower definition files.
func Load(enemiesPath, towersPath string) (*Library, error) {
	enemies, err := os.ReadFile(enemiesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	towers, err := os.ReadFile(towersPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower definitions file: %w", err)
	}
	return Parse(enemies, towers)
}

// Parse decodes and validates both archetype tables.
func Parse(enemiesYAML, towersYAML []byte) (*Library, error) {
	var enemyDefs []EnemyDefinition
	if err := yaml.Unmarshal(enemiesYAML, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	var towerDefs []TowerDefinition
	if err := yaml.Unmarshal(towersYAML, &towerDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}
	return NewLibrary(enemyDefs, towerDefs)
}

// NewLibrary validates definitions and indexes them by id.
func NewLibrary(enemyDefs []EnemyDefinition, towerDefs []TowerDefinition) (*Library, error) {
	if len(enemyDefs) == 0 {
		return nil, fmt.Errorf("no enemy definitions")
	}
	lib := &Library{
		Enemies: make(map[string]EnemyDefinition, len(enemyDefs)),
		Towers:  make(map[string]TowerDefinition, len(towerDefs)),
	}
	for _, def := range enemyDefs {
		def.applyDefaults()
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, dup := lib.Enemies[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy id %q", def.ID)
		}
		lib.Enemies[def.ID] = def
		lib.enemyOrder = append(lib.enemyOrder, def.ID)
	}
	slices.Sort(lib.enemyOrder)
	if len(lib.UnlockedEnemies(1)) == 0 {
		return nil, fmt.Errorf("no enemy is unlocked in round 1")
	}

	for _, def := range towerDefs {
		def.applyDefaults()
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, dup := lib.Towers[def.ID]; dup {
			return nil, fmt.Errorf("duplicate tower id %q", def.ID)
		}
		lib.Towers[def.ID] = def
		lib.TowerOrder = append(lib.TowerOrder, def.ID)
	}
	return lib, nil
}

// Tower looks up a tower archetype.
func (l *Library) Tower(id string) (TowerDefinition, bool) {
	def, ok := l.Towers[id]
	return def, ok
}

// Enemy looks up an enemy archetype.
func (l *Library) Enemy(id string) (EnemyDefinition, bool) {
	def, ok := l.Enemies[id]
	return def, ok
}

// UnlockedEnemies returns the archetypes available in the given round, sorted by id.
func (l *Library) UnlockedEnemies(round int) []EnemyDefinition {
	var out []EnemyDefinition
	for _, id := range l.enemyOrder {
		if def := l.Enemies[id]; def.UnlockRound <= round {
			out = append(out, def)
		}
	}
	return out
}
