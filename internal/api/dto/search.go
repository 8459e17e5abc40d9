package dto

import (
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/events"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/opportunities"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/skills"
)

// SearchResponse bundles the cross-content search results
type SearchResponse struct {
	Events        []events.Event              `json:"events"`
	Opportunities []opportunities.Opportunity `json:"opportunities"`
	Skills        []skills.Skill              `json:"skills"`
}

// StatsResponse reports the size of every catalog collection
type StatsResponse struct {
	TotalEvents         int `json:"totalEvents"`
	TotalOpportunities  int `json:"totalOpportunities"`
	TotalSkills         int `json:"totalSkills"`
	TotalUsers          int `json:"totalUsers"`
	TotalCommunityPosts int `json:"totalCommunityPosts"`
	TotalStudyGroups    int `json:"totalStudyGroups"`
}
