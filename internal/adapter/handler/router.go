package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires all HTTP endpoints onto the echo instance
func RegisterRoutes(e *echo.Echo, summaryCtrl *SummaryController) {
	e.GET("/healthz", summaryCtrl.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.POST("/meetings/:id/summary", summaryCtrl.GenerateSummary)
	v1.GET("/meetings/:id/summary", summaryCtrl.GetSummary)
	v1.GET("/meetings/:id/action-items", summaryCtrl.GetActionItems)
	v1.GET("/summary/stats", summaryCtrl.GetStats)
}
