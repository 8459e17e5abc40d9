package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SIDDARDHA2006/OpporLink/internal/api/dto"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/community"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/events"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/opportunities"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/skills"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/user"
	"github.com/SIDDARDHA2006/OpporLink/internal/infrastructure/persistence/memory"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupSearchRouter(t *testing.T) *gin.Engine {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, store.Seed())

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	eventsSvc := events.NewService(memory.NewEventRepository(store), memory.NewUserRepository(store), zap.NewNop())
	opportunitiesSvc := opportunities.NewService(memory.NewOpportunityRepository(store), zap.NewNop())
	skillsSvc := skills.NewService(memory.NewSkillRepository(store))
	usersSvc := user.NewService(memory.NewUserRepository(store), zap.NewNop())
	communitySvc := community.NewService(memory.NewCommunityRepository(store), quiet)

	handler := NewSearchHandler(eventsSvc, opportunitiesSvc, skillsSvc, usersSvc, communitySvc)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/search", handler.Search)
	router.GET("/api/stats", handler.Stats)
	return router
}

func TestSearchEndpoint(t *testing.T) {
	router := setupSearchRouter(t)

	t.Run("Empty query returns empty collections", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/search", nil)

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"events":[],"opportunities":[],"skills":[]}`, w.Body.String())
	})

	t.Run("Blank query is treated as empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/search?query=%20%20", nil)

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"events":[],"opportunities":[],"skills":[]}`, w.Body.String())
	})

	t.Run("Query fans out across collections", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/search?query=machine", nil)

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Skills)
	})
}

func TestStatsEndpoint(t *testing.T) {
	router := setupSearchRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.TotalEvents)
	assert.Equal(t, 5, resp.TotalOpportunities)
	assert.Equal(t, 6, resp.TotalSkills)
	assert.Equal(t, 1, resp.TotalUsers)
	assert.Equal(t, 2, resp.TotalCommunityPosts)
	assert.Equal(t, 2, resp.TotalStudyGroups)
}
