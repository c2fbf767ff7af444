package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forhad-fhj/SkillBridge/engine"
	"github.com/forhad-fhj/SkillBridge/models"
)

// ResourcesHandler serves learning resources from the catalog
type ResourcesHandler struct {
	catalog      engine.ResourceCatalog
	defaultLimit int
}

// NewResourcesHandler creates a new resources handler
func NewResourcesHandler(catalog engine.ResourceCatalog, defaultLimit int) *ResourcesHandler {
	if defaultLimit <= 0 {
		defaultLimit = engine.DefaultMaxResources
	}
	return &ResourcesHandler{
		catalog:      catalog,
		defaultLimit: defaultLimit,
	}
}

// SkillLister is a catalog that can enumerate its skills. *catalog.Catalog
// satisfies it.
type SkillLister interface {
	Skills() []string
}

// GetResources returns learning resources for a skill
// @Summary Get learning resources
// @Description Look up learning resources for a skill. Without the skill parameter the catalog's skills are listed instead (models.SkillListResponse).
// @Tags Resources
// @Produce json
// @Param skill query string false "Skill name" example(React)
// @Param limit query int false "Maximum resources" default(3)
// @Success 200 {object} models.ResourcesResponse "Resources"
// @Failure 400 {object} models.ErrorResponse "Invalid query"
// @Failure 500 {object} models.ErrorResponse "Lookup failed"
// @Router /resources [get]
func (h *ResourcesHandler) GetResources(c *gin.Context) {
	raw, present := c.GetQuery("skill")
	if !present {
		h.listSkills(c)
		return
	}

	skill := strings.TrimSpace(raw)
	if skill == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Query parameter 'skill' is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Invalid limit",
				Code:    http.StatusBadRequest,
				Details: "limit must be a positive integer",
			})
			return
		}
		limit = n
	}

	response := models.ResourcesResponse{
		Skill:     skill,
		Resources: []models.Resource{},
	}
	if h.catalog == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	entry, err := h.catalog.Lookup(skill)
	if err != nil {
		log.Printf("[ResourcesHandler] Lookup failed for %s: %v", skill, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to look up resources",
			Code:  http.StatusInternalServerError,
		})
		return
	}
	if entry != nil {
		resources := entry.Resources
		if len(resources) > limit {
			resources = resources[:limit]
		}
		response.Resources = append(response.Resources, resources...)
	}

	c.JSON(http.StatusOK, response)
}

// listSkills lists the catalog's skills. Catalogs that cannot enumerate
// their entries list nothing.
func (h *ResourcesHandler) listSkills(c *gin.Context) {
	response := models.SkillListResponse{Skills: []string{}}
	if lister, ok := h.catalog.(SkillLister); ok {
		response.Skills = append(response.Skills, lister.Skills()...)
	}
	response.Total = len(response.Skills)
	c.JSON(http.StatusOK, response)
}
