package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/pawlog/backend/internal/analytics"
	"github.com/JonnyWalker81/pawlog/backend/internal/apierror"
	"github.com/JonnyWalker81/pawlog/backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetDashboard handles GET /api/v1/analytics/dashboard
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.analyticsService.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err, "", "")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetHistory handles GET /api/v1/events. Query parameters search, date_range,
// type and intensity narrow the result; omitted ones match everything.
func (h *AnalyticsHandler) GetHistory(c *gin.Context) {
	var fieldErrors []apierror.FieldError
	filter := analytics.FilterSpec{
		SearchText: strings.TrimSpace(c.Query("search")),
		Type:       c.Query("type"),
	}

	dateRange, err := analytics.ParseDateRange(c.Query("date_range"))
	if err != nil {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field:   "date_range",
			Message: "must be one of all, today, pastWeek, pastMonth",
			Code:    "invalid_value",
		})
	}
	filter.DateRange = dateRange

	if raw := c.Query("intensity"); raw != "" && raw != analytics.FilterAll {
		intensity, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrors = append(fieldErrors, apierror.FieldError{
				Field:   "intensity",
				Message: "must be an integer",
				Code:    "invalid_type",
			})
		}
		filter.Intensity = intensity
	}

	if len(fieldErrors) > 0 {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), fieldErrors))
		return
	}

	history, err := h.analyticsService.History(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err, "", "")
		return
	}

	c.JSON(http.StatusOK, history)
}

// GetInsights handles GET /api/v1/analytics/insights?days=N. Without days
// the configured default window is used.
func (h *AnalyticsHandler) GetInsights(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{{
				Field:   "days",
				Message: "must be a positive integer",
				Code:    "invalid_value",
			}}))
			return
		}
		days = parsed
	}

	report, err := h.analyticsService.Insights(c.Request.Context(), days)
	if err != nil {
		writeError(c, err, "", "")
		return
	}

	c.JSON(http.StatusOK, report)
}
