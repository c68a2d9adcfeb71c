// internal/component/wave.go
package component

// Wave — состояние раунда. Единственный экземпляр на игру.
type Wave struct {
	Round          int
	TotalEnemies   int
	EnemiesSpawned int
	// EnemiesKilled counts every resolved enemy: kills and leaks alike.
	EnemiesKilled int
	Completed     bool
	SpawnInterval float64
	SpawnTimer    Timer
	AutoAdvance   bool
}

// Running reports whether a round is in progress.
func (w *Wave) Running() bool { return !w.Completed }
