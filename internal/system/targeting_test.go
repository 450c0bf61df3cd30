// internal/system/targeting_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindClosestEnemyEmptySet(t *testing.T) {
	ecs := newTestECS()

	_, _, found := FindClosestEnemy(ecs, 100, 100)
	assert.False(t, found)
}

func TestFindClosestEnemyPicksMinimum(t *testing.T) {
	ecs := newTestECS()
	far := spawnTestEnemy(ecs, 300, 300, 30)
	near := spawnTestEnemy(ecs, 160, 100, 30)
	_ = far

	id, distance, found := FindClosestEnemy(ecs, 100, 100)
	require.True(t, found)
	assert.Equal(t, near, id)
	assert.InDelta(t, 60.0, distance, 1e-9)
}

func TestFindClosestEnemyIgnoresPositionless(t *testing.T) {
	ecs := newTestECS()
	id := spawnTestEnemy(ecs, 160, 100, 30)
	delete(ecs.Positions, id)

	_, _, found := FindClosestEnemy(ecs, 100, 100)
	assert.False(t, found)
}
