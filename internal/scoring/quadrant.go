package scoring

import "github.com/jonathan/candidate-assessor/internal/types"

// highThreshold is the boundary for "high" on both axes. Exactly 70 counts
// as high.
const highThreshold = 70

// Classify maps normalized WILL% and SKILL% to one of the four quadrants.
// Pure and total over [0,100]x[0,100]: every point maps to exactly one
// quadrant.
func Classify(willPercent, skillPercent int) string {
	highWill := willPercent >= highThreshold
	highSkill := skillPercent >= highThreshold

	switch {
	case highSkill && highWill:
		return types.QuadrantStar
	case !highSkill && highWill:
		return types.QuadrantWilling
	case highSkill && !highWill:
		return types.QuadrantReluctant
	default:
		return types.QuadrantNotReady
	}
}
