package scoring

import (
	"strings"

	"github.com/jonathan/candidate-assessor/internal/types"
)

// genericVertical is substituted when the candidate has no resolvable
// primary vertical.
const genericVertical = "General"

// verticalSlot says which vertical preference a role template references.
type verticalSlot int

const (
	slotNone verticalSlot = iota
	slotPrimary
	slotSecondary
)

// roleTemplate is one row of the recommendation decision table. Role names
// containing {{vertical}} have the slot's vertical display name substituted.
// Templates referencing the secondary slot are dropped when the candidate
// named only one vertical.
type roleTemplate struct {
	role       string
	slot       verticalSlot
	confidence int
	reason     string
}

// anyStyle is the decision-table key matched when no style-specific branch
// exists for a quadrant.
const anyStyle = "*"

// recommendationTable is the quadrant x leadership-style decision table.
// Confidence values are fixed per branch, not computed from raw scores.
var recommendationTable = map[string]map[string][]roleTemplate{
	types.QuadrantStar: {
		types.StyleStrategic: {
			{role: "Co-Chair", confidence: 90, reason: "Your strategic thinking and high commitment make you ideal for this leadership position"},
			{role: "{{vertical}} Vertical Chair", slot: slotPrimary, confidence: 85, reason: "Perfect fit for your #1 vertical choice. Strategic thinking aligns with vertical goals"},
			{role: "{{vertical}} Vertical Co-Chair", slot: slotSecondary, confidence: 75, reason: "Strong secondary interest. Can support while developing expertise"},
			{role: "Project Lead", confidence: 80, reason: "Can handle independent initiatives with excellence"},
		},
		types.StyleLeader: {
			{role: "{{vertical}} Vertical Chair", slot: slotPrimary, confidence: 85, reason: "Natural leadership style paired with high skill and commitment"},
			{role: "Co-Chair", confidence: 80, reason: "Ready to take on significant organizational responsibilities"},
			{role: "Multi-Vertical Coordinator", confidence: 75, reason: "Can manage multiple initiatives effectively"},
		},
		anyStyle: {
			{role: "{{vertical}} Vertical Chair", slot: slotPrimary, confidence: 80, reason: "High execution capability with strong commitment"},
			{role: "Co-Chair", confidence: 75, reason: "Ready to step into major leadership role"},
			{role: "Project Lead", confidence: 80, reason: "Excellent at getting things done independently"},
		},
	},
	types.QuadrantWilling: {
		types.StyleLeader: {
			{role: "{{vertical}} Vertical Co-Chair", slot: slotPrimary, confidence: 85, reason: "High commitment with leadership potential - excellent co-leadership fit"},
			{role: "Team Lead", confidence: 80, reason: "Strong willingness to lead smaller teams effectively"},
			{role: "Active Volunteer", confidence: 75, reason: "Can contribute significantly while building skills"},
		},
		types.StyleStrategic: {
			{role: "{{vertical}} Vertical Co-Chair", slot: slotPrimary, confidence: 85, reason: "High commitment with leadership potential - excellent co-leadership fit"},
			{role: "Team Lead", confidence: 80, reason: "Strong willingness to lead smaller teams effectively"},
			{role: "Active Volunteer", confidence: 75, reason: "Can contribute significantly while building skills"},
		},
		anyStyle: {
			{role: "Active Volunteer", confidence: 90, reason: "High energy and commitment will drive impact in volunteer role"},
			{role: "Event Coordinator", confidence: 80, reason: "Great at execution with strong follow-through"},
			{role: "{{vertical}} Vertical Co-Chair", slot: slotPrimary, confidence: 70, reason: "Can grow into leadership with mentorship"},
		},
	},
	types.QuadrantReluctant: {
		anyStyle: {
			{role: "Advisory Role", confidence: 70, reason: "High skills can contribute through strategic guidance"},
			{role: "Specific Project Lead", confidence: 60, reason: "Can lead defined projects matching your expertise"},
			{role: "Mentor", confidence: 65, reason: "Skills make you valuable for coaching others"},
		},
	},
	types.QuadrantNotReady: {
		anyStyle: {
			{role: "General Volunteer", confidence: 80, reason: "Start building experience and skills in supportive role"},
			{role: "Shadow Program", confidence: 75, reason: "Learn by observing experienced members"},
			{role: "Wait for Next Cycle", confidence: 70, reason: "Use this year to develop skills and come back stronger"},
		},
	},
}

// Recommend produces the ordered role recommendation list for a quadrant,
// vertical display names (priority order), and leadership style. The list
// is never empty; its first entry is the recommended role.
func Recommend(quadrant string, verticalNames []string, leadershipStyle string) []types.Recommendation {
	branches, ok := recommendationTable[quadrant]
	if !ok {
		branches = recommendationTable[types.QuadrantNotReady]
	}

	templates, ok := branches[leadershipStyle]
	if !ok {
		templates = branches[anyStyle]
	}

	primary := genericVertical
	if len(verticalNames) > 0 && verticalNames[0] != "" {
		primary = verticalNames[0]
	}
	secondary := ""
	if len(verticalNames) > 1 {
		secondary = verticalNames[1]
	}

	recs := make([]types.Recommendation, 0, len(templates))
	for _, t := range templates {
		name := primary
		if t.slot == slotSecondary {
			if secondary == "" {
				continue
			}
			name = secondary
		}
		recs = append(recs, types.Recommendation{
			Role:       strings.ReplaceAll(t.role, "{{vertical}}", name),
			Confidence: t.confidence,
			Reason:     t.reason,
		})
	}
	return recs
}
