package controllers

import (
	"net/http"

	"hotel-reservation-api/services"
	"hotel-reservation-api/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsSvc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsSvc: svc}
}

// GetRevenue (GET /api/admin/analytics/revenue?period=day|week|month|year)
func (ac *AnalyticsController) GetRevenue(c *gin.Context) {
	period := c.DefaultQuery("period", "day")
	if !services.IsValidPeriod(period) {
		utils.JSONError(c, http.StatusBadRequest, "period must be one of day, week, month, year.")
		return
	}

	series, err := ac.AnalyticsSvc.Revenue(period)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Revenue series retrieved.", gin.H{
		"period": period,
		"series": series,
	})
}

// GetDashboard (GET /api/admin/analytics/dashboard)
func (ac *AnalyticsController) GetDashboard(c *gin.Context) {
	stats, err := ac.AnalyticsSvc.Dashboard()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Dashboard stats retrieved.", stats)
}
