package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the behavior log API on rg
func RegisterRoutes(rg *gin.RouterGroup, behavior *BehaviorHandler, catalog *CatalogHandler, analytics *AnalyticsHandler) {
	// Event routes
	rg.GET("/events", analytics.GetHistory)
	rg.POST("/events", behavior.CreateEvent)
	rg.POST("/events/quick", behavior.QuickAdd)
	rg.GET("/events/:id", behavior.GetEvent)
	rg.PUT("/events/:id", behavior.UpdateEvent)
	rg.DELETE("/events/:id", behavior.DeleteEvent)

	// Catalog routes
	rg.GET("/behavior-types", catalog.ListBehaviorTypes)
	rg.POST("/behavior-types", catalog.CreateBehaviorType)
	rg.DELETE("/behavior-types/:id", catalog.DeleteBehaviorType)
	rg.GET("/trigger-types", catalog.ListTriggerTypes)
	rg.POST("/trigger-types", catalog.CreateTriggerType)
	rg.DELETE("/trigger-types/:id", catalog.DeleteTriggerType)

	// Analytics routes
	rg.GET("/analytics/dashboard", analytics.GetDashboard)
	rg.GET("/analytics/insights", analytics.GetInsights)
}
