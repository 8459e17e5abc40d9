package skills

import "errors"

// Skill is read-only reference data describing a learnable skill
type Skill struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	Learners      int      `json:"learners"`
	Courses       int      `json:"courses"`
	AvgTime       string   `json:"avgTime"`
	Description   string   `json:"description"`
	RelatedSkills []string `json:"relatedSkills"`
}

var ErrSkillNotFound = errors.New("skill not found")
