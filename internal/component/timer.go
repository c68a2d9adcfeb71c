// internal/component/timer.go
package component

// Timer accumulates elapsed game time.
type Timer struct {
	Elapsed float64
}

func (t *Timer) Add(dt float64) { t.Elapsed += dt }

func (t *Timer) Reset() { t.Elapsed = 0 }

// Reached reports whether at least limit seconds have accumulated.
func (t *Timer) Reached(limit float64) bool { return t.Elapsed >= limit }
