package progression

import (
	"github.com/KirkDiggler/codequest/internal/entities"
)

// Evaluator checks achievement predicates over cumulative stats
type Evaluator struct {
	defs []entities.Achievement
}

// NewEvaluator creates an evaluator over the catalog definitions
func NewEvaluator(defs []entities.Achievement) *Evaluator {
	return &Evaluator{defs: append([]entities.Achievement(nil), defs...)}
}

// Earned lists achievements whose predicate holds for stats and that are not
// already recorded
func (e *Evaluator) Earned(p entities.Player) []entities.Achievement {
	var out []entities.Achievement
	for _, a := range e.defs {
		if p.HasAchievement(a.ID) {
			continue
		}
		if p.Stats[a.Stat] >= a.Threshold {
			out = append(out, a)
		}
	}
	return out
}

// UpdateStats merges delta into the stat counters, then records any newly earned
// achievements. Negative deltas are dropped so counters never decrease.
func (e *Evaluator) UpdateStats(p entities.Player, delta map[string]int) (entities.Player, []entities.Achievement) {
	out := p.Clone()
	for k, v := range delta {
		if v < 0 {
			continue
		}
		out.Stats[k] += v
	}

	earned := e.Earned(out)
	for _, a := range earned {
		out.Achievements = append(out.Achievements, a.ID)
	}
	return out, earned
}
