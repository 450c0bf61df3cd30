// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в симуляции.
type EntityID uint64
