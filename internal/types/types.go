// internal/types/types.go
package types

// EntityID identifies an entity in the ECS. Zero is never handed out.
type EntityID uint64
