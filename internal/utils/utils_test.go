// internal/utils/utils_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-ninja-idle/internal/defs"
)

func TestChooseWeightedRespectsWeights(t *testing.T) {
	rng := NewPRNGService(1)
	entries := []defs.SpawnEntry{
		{EnemyID: "A", Weight: 90},
		{EnemyID: "B", Weight: 10},
	}

	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		counts[rng.ChooseWeighted(entries)]++
	}
	assert.Greater(t, counts["A"], counts["B"])
	assert.Greater(t, counts["B"], 0, "редкий вес тоже выпадает")
}

func TestChooseWeightedDegenerateTables(t *testing.T) {
	rng := NewPRNGService(1)

	assert.Equal(t, "", rng.ChooseWeighted(nil))
	assert.Equal(t, "A", rng.ChooseWeighted([]defs.SpawnEntry{{EnemyID: "A", Weight: 0}}))
	assert.Equal(t, "A", rng.ChooseWeighted([]defs.SpawnEntry{{EnemyID: "A", Weight: 5}}))
}

func TestSeededSequencesAreReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-1, 0, 10))
	assert.Equal(t, 10.0, Clamp(11, 0, 10))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
	assert.Equal(t, 0.0, Distance(7, 7, 7, 7))
}

func TestNormalize(t *testing.T) {
	dx, dy := Normalize(3, 4)
	assert.InDelta(t, 0.6, dx, 1e-9)
	assert.InDelta(t, 0.8, dy, 1e-9)

	dx, dy = Normalize(0, 0)
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 0.0, dy)
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0, 10, 0))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
	assert.Equal(t, 2.5, Lerp(0, 10, 0.25))
}
