// internal/entity/commands.go
package entity

import "go-waypoint-defense/internal/types"

// RemovalCause says why an entity leaves the world.
type RemovalCause int

const (
	CauseKilled     RemovalCause = iota // враг убит
	CauseLeaked                         // враг дошёл до базы
	CauseExpired                        // снаряд истёк (промах)
	CauseConsumed                       // снаряд попал
	CauseCancelled                      // отмена установки башни
	CauseDemolished                     // активная башня снесена
)

func (c RemovalCause) String() string {
	switch c {
	case CauseKilled:
		return "killed"
	case CauseLeaked:
		return "leaked"
	case CauseExpired:
		return "expired"
	case CauseConsumed:
		return "consumed"
	case CauseCancelled:
		return "cancelled"
	case CauseDemolished:
		return "demolished"
	default:
		return "unknown"
	}
}

// Removal is a queued destroy intent. Amount carries the cause-specific
// value: kill reward for CauseKilled, base damage for CauseLeaked.
type Removal struct {
	ID     types.EntityID
	Cause  RemovalCause
	Amount int
}

// SpawnFunc creates an entity during Flush and returns its id.
type SpawnFunc func(ecs *ECS) types.EntityID

// CommandBuffer collects intents during a tick. Systems read live state and
// queue here; nothing is applied until ECS.Flush.
type CommandBuffer struct {
	removals []Removal
	queued   map[types.EntityID]struct{}
	spawns   []SpawnFunc
	reward   int
}

func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{queued: make(map[types.EntityID]struct{})}
}

// QueueRemoval records a destroy intent. It returns false, and keeps the
// first intent, when the entity is already queued this tick.
func (cb *CommandBuffer) QueueRemoval(id types.EntityID, cause RemovalCause, amount int) bool {
	if _, dup := cb.queued[id]; dup {
		return false
	}
	cb.queued[id] = struct{}{}
	cb.removals = append(cb.removals, Removal{ID: id, Cause: cause, Amount: amount})
	return true
}

// Pending reports whether id is queued for removal.
func (cb *CommandBuffer) Pending(id types.EntityID) bool {
	_, ok := cb.queued[id]
	return ok
}

func (cb *CommandBuffer) QueueSpawn(fn SpawnFunc) {
	cb.spawns = append(cb.spawns, fn)
}

// QueueReward adds coins credited at flush time.
func (cb *CommandBuffer) QueueReward(amount int) {
	if amount > 0 {
		cb.reward += amount
	}
}

// Len returns the number of queued removals and spawns.
func (cb *CommandBuffer) Len() int { return len(cb.removals) + len(cb.spawns) }

func (cb *CommandBuffer) reset() {
	cb.removals = cb.removals[:0]
	clear(cb.queued)
	cb.spawns = cb.spawns[:0]
	cb.reward = 0
}
