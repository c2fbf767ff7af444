package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forhad-fhj/SkillBridge/catalog"
	"github.com/forhad-fhj/SkillBridge/engine"
	"github.com/forhad-fhj/SkillBridge/models"
)

func newResourcesRouter(c engine.ResourceCatalog) *gin.Engine {
	h := NewResourcesHandler(c, 0)
	router := gin.New()
	router.GET("/api/resources", h.GetResources)
	return router
}

func TestGetResources(t *testing.T) {
	router := newResourcesRouter(newTestCatalog())

	w := doJSON(router, http.MethodGet, "/api/resources?skill=Python", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ResourcesResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Python", resp.Skill)
	assert.Len(t, resp.Resources, 3)

	w = doJSON(router, http.MethodGet, "/api/resources?skill=Python&limit=1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	require.Len(t, resp.Resources, 1)
	assert.Equal(t, "Python.org", resp.Resources[0].Title)
}

func TestGetResources_UnknownSkill(t *testing.T) {
	w := doJSON(newResourcesRouter(newTestCatalog()), http.MethodGet, "/api/resources?skill=Elixir", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ResourcesResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp.Resources, 1)
	assert.Equal(t, "search", resp.Resources[0].Type)

	strict := catalog.New(catalog.Builtin(), catalog.Options{})
	w = doJSON(newResourcesRouter(strict), http.MethodGet, "/api/resources?skill=Elixir", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.NotNil(t, resp.Resources)
	assert.Empty(t, resp.Resources)
}

func TestGetResources_BadQuery(t *testing.T) {
	router := newResourcesRouter(newTestCatalog())

	for _, path := range []string{
		"/api/resources?skill=",
		"/api/resources?skill=%20",
		"/api/resources?skill=Go&limit=zero",
		"/api/resources?skill=Go&limit=-2",
	} {
		w := doJSON(router, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestGetResources_ListsSkillsWithoutQuery(t *testing.T) {
	w := doJSON(newResourcesRouter(newTestCatalog()), http.MethodGet, "/api/resources", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SkillListResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, newTestCatalog().Skills(), resp.Skills)
	assert.Equal(t, newTestCatalog().Len(), resp.Total)
	assert.Contains(t, resp.Skills, "Python")

	w = doJSON(newResourcesRouter(nil), http.MethodGet, "/api/resources", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.Skills)
	assert.Zero(t, resp.Total)
}
