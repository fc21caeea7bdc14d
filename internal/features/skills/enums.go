package skills

// ExperienceBand is a coarse bucket of years of experience used instead of
// raw years when matching supply to demand.
type ExperienceBand string

const (
	Band0To2   ExperienceBand = "0-2"
	Band2To5   ExperienceBand = "2-5"
	Band5To7   ExperienceBand = "5-7"
	Band7To10  ExperienceBand = "7-10"
	Band10Plus ExperienceBand = "10+"
)

// AllExperienceBands is in display order; the skill distribution emits every
// band even when its count is zero.
var AllExperienceBands = []ExperienceBand{Band0To2, Band2To5, Band5To7, Band7To10, Band10Plus}

func (b ExperienceBand) IsValid() bool {
	switch b {
	case Band0To2, Band2To5, Band5To7, Band7To10, Band10Plus:
		return true
	default:
		return false
	}
}

type SkillRating string

const (
	RatingBeginner     SkillRating = "Beginner"
	RatingIntermediate SkillRating = "Intermediate"
	RatingExpert       SkillRating = "Expert"
)

func (r SkillRating) IsValid() bool {
	switch r {
	case RatingBeginner, RatingIntermediate, RatingExpert:
		return true
	default:
		return false
	}
}
