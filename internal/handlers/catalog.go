package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/internal/service"
)

// CatalogHandler serves the behavior and trigger type catalogs
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListBehaviorTypes handles GET /api/v1/behavior-types
func (h *CatalogHandler) ListBehaviorTypes(c *gin.Context) {
	h.list(c, h.catalogService.ListBehaviorTypes)
}

// CreateBehaviorType handles POST /api/v1/behavior-types
func (h *CatalogHandler) CreateBehaviorType(c *gin.Context) {
	h.create(c, h.catalogService.CreateBehaviorType)
}

// DeleteBehaviorType handles DELETE /api/v1/behavior-types/:id
func (h *CatalogHandler) DeleteBehaviorType(c *gin.Context) {
	h.delete(c, "behavior type", h.catalogService.DeleteBehaviorType)
}

// ListTriggerTypes handles GET /api/v1/trigger-types
func (h *CatalogHandler) ListTriggerTypes(c *gin.Context) {
	h.list(c, h.catalogService.ListTriggerTypes)
}

// CreateTriggerType handles POST /api/v1/trigger-types
func (h *CatalogHandler) CreateTriggerType(c *gin.Context) {
	h.create(c, h.catalogService.CreateTriggerType)
}

// DeleteTriggerType handles DELETE /api/v1/trigger-types/:id
func (h *CatalogHandler) DeleteTriggerType(c *gin.Context) {
	h.delete(c, "trigger type", h.catalogService.DeleteTriggerType)
}

func (h *CatalogHandler) list(c *gin.Context, list func(context.Context) ([]models.CatalogEntry, error)) {
	entries, err := list(c.Request.Context())
	if err != nil {
		writeError(c, err, "", "")
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *CatalogHandler) create(
	c *gin.Context,
	create func(context.Context, *models.CreateCatalogEntryRequest) (*models.CatalogEntry, error),
) {
	var req models.CreateCatalogEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err, "", "")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *CatalogHandler) delete(c *gin.Context, resource string, remove func(context.Context, int64) error) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := remove(c.Request.Context(), id); err != nil {
		writeError(c, err, resource, strconv.FormatInt(id, 10))
		return
	}

	c.Status(http.StatusNoContent)
}
