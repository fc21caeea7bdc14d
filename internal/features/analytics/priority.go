package analytics

import "workforce/internal/features/skills"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	}

	return 2
}

// PriorityRule pins a recruitment priority for one skill/band pair,
// overriding the fulfillment thresholds.
type PriorityRule struct {
	SkillName      string
	ExperienceBand skills.ExperienceBand
	Priority       Priority
}

func DefaultPriorityRules() []PriorityRule {
	return []PriorityRule{
		{SkillName: "DevOps", ExperienceBand: skills.Band7To10, Priority: PriorityHigh},
		{SkillName: "AWS", ExperienceBand: skills.Band10Plus, Priority: PriorityMedium},
		{SkillName: "React.js", ExperienceBand: skills.Band5To7, Priority: PriorityLow},
	}
}

// priorityFor falls back to fulfillment thresholds when no rule matches:
// below 50 percent is high, below 80 is medium, everything else low.
func priorityFor(rules []PriorityRule, skillName string, band skills.ExperienceBand, fulfillment int) Priority {
	for _, rule := range rules {
		if rule.SkillName == skillName && rule.ExperienceBand == band {
			return rule.Priority
		}
	}

	if fulfillment < 50 {
		return PriorityHigh
	}
	if fulfillment < 80 {
		return PriorityMedium
	}

	return PriorityLow
}
