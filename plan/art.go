package plan

import "fmt"

// ArtSpec describes one cultivation art as configured by the caller.
// Replicas > 1 requests that many independently planned copies.
type ArtSpec struct {
	ID         string  // unique art identifier
	Difficulty float64 // cost/value scaling rating (must be > 0)
	Primary    bool    // primary art (carried through to output, no curve effect)
	Replicas   int     // number of independent copies to plan (>= 0)
	MaxLevel   int     // optional grid cap for this art (0 = LevelMax)
}

// Instance is one independently optimized copy of an art. Instances share no
// mutable state; each owns its option curve and its slot in frontier choice
// vectors.
type Instance struct {
	ID         string
	Difficulty float64
	Primary    bool
	MaxLevel   int
}

// ExpandInstances flattens specs into instances: a spec with Replicas k
// yields k instances identified by "<id>#<replica>", replica indices starting
// at zero. Specs with zero replicas contribute nothing.
func ExpandInstances(specs []ArtSpec) []Instance {
	instances := make([]Instance, 0, len(specs))
	for _, s := range specs {
		for i := 0; i < s.Replicas; i++ {
			instances = append(instances, Instance{
				ID:         fmt.Sprintf("%s#%d", s.ID, i),
				Difficulty: s.Difficulty,
				Primary:    s.Primary,
				MaxLevel:   s.MaxLevel,
			})
		}
	}
	return instances
}
