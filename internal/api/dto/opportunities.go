package dto

import "github.com/SIDDARDHA2006/OpporLink/internal/domain/opportunities"

// ApplyOpportunityResponse is the envelope returned by a successful
// application
type ApplyOpportunityResponse struct {
	Success     bool                      `json:"success"`
	Message     string                    `json:"message"`
	Opportunity opportunities.Opportunity `json:"opportunity"`
}
