package opportunities

import "errors"

// Opportunity represents an internship or job opening. Openings is
// informational capacity only: the apply flow never enforces it.
type Opportunity struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Deadline     string   `json:"deadline,omitempty"`
	Location     string   `json:"location,omitempty"`
	Type         string   `json:"type,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Stipend      string   `json:"stipend,omitempty"`
	Skills       []string `json:"skills"`
	Requirements []string `json:"requirements,omitempty"`
	Logo         string   `json:"logo,omitempty"`
	Category     string   `json:"category"`
	Applicants   int      `json:"applicants"`
	Openings     int      `json:"openings"`
}

var ErrOpportunityNotFound = errors.New("opportunity not found")
