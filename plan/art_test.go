package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandInstances_ReplicasFlatten(t *testing.T) {
	specs := []ArtSpec{
		{ID: "azure", Difficulty: 1.5, Primary: true, Replicas: 2},
		{ID: "vajra", Difficulty: 0.8, Replicas: 1, MaxLevel: 199},
	}
	got := ExpandInstances(specs)
	want := []Instance{
		{ID: "azure#0", Difficulty: 1.5, Primary: true},
		{ID: "azure#1", Difficulty: 1.5, Primary: true},
		{ID: "vajra#0", Difficulty: 0.8, MaxLevel: 199},
	}
	assert.Equal(t, want, got)
}

func TestExpandInstances_ZeroReplicasContributeNothing(t *testing.T) {
	specs := []ArtSpec{
		{ID: "azure", Difficulty: 1.0, Replicas: 0},
		{ID: "vajra", Difficulty: 1.0, Replicas: 1},
	}
	got := ExpandInstances(specs)
	assert.Len(t, got, 1)
	assert.Equal(t, "vajra#0", got[0].ID)
}

func TestExpandInstances_EmptyInput(t *testing.T) {
	assert.Empty(t, ExpandInstances(nil))
	assert.Empty(t, ExpandInstances([]ArtSpec{}))
}
