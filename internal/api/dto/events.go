package dto

import "github.com/SIDDARDHA2006/OpporLink/internal/domain/events"

// RegisterEventResponse is the envelope returned by a successful
// registration; the front end reads all three fields
type RegisterEventResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Event   events.Event `json:"event"`
}
