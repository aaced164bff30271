package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/internal/service"
)

const eventResource = "behavior event"

// BehaviorHandler serves the behavior event log
type BehaviorHandler struct {
	behaviorService service.BehaviorService
}

// NewBehaviorHandler creates a new behavior handler
func NewBehaviorHandler(behaviorService service.BehaviorService) *BehaviorHandler {
	return &BehaviorHandler{
		behaviorService: behaviorService,
	}
}

// CreateEvent handles POST /api/v1/events
func (h *BehaviorHandler) CreateEvent(c *gin.Context) {
	var req models.BehaviorEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.behaviorService.LogBehavior(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err, eventResource, "")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// QuickAdd handles POST /api/v1/events/quick
func (h *BehaviorHandler) QuickAdd(c *gin.Context) {
	var req models.QuickAddRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.behaviorService.QuickAdd(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err, eventResource, "")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvent handles GET /api/v1/events/:id
func (h *BehaviorHandler) GetEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	event, err := h.behaviorService.GetBehavior(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, eventResource, strconv.FormatInt(id, 10))
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent handles PUT /api/v1/events/:id. The body replaces every
// mutable field.
func (h *BehaviorHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.BehaviorEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.behaviorService.UpdateBehavior(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err, eventResource, strconv.FormatInt(id, 10))
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/v1/events/:id
func (h *BehaviorHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.behaviorService.DeleteBehavior(c.Request.Context(), id); err != nil {
		writeError(c, err, eventResource, strconv.FormatInt(id, 10))
		return
	}

	c.Status(http.StatusNoContent)
}
