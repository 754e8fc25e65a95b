package controller

import (
	"geeksboard/app_error"
	"geeksboard/service"
	"geeksboard/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboardService *service.DashboardService
}

func NewDashboardController() *DashboardController {
	return &DashboardController{
		dashboardService: service.NewDashboardService(),
	}
}

func setupDashboardController() []RouteInfo {
	e := NewDashboardController()
	basePath := "/dashboard"
	routes := []RouteInfo{
		{Method: "GET", Path: "/stats", HandlerFunc: e.getStatsHandler(), Authenticated: true},
		{Method: "GET", Path: "/recent-points", HandlerFunc: e.getRecentPointsHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetDashboardStats
// @Description Fetches group, student and point entry counts for the authenticated mentor
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardStats
// @Router /dashboard/stats [get]
func (e *DashboardController) getStatsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := e.dashboardService.GetStats(getMentorId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, stats)
	}
}

// @id GetRecentPoints
// @Description Fetches the five most recent point entries across the mentor's groups
// @Tags dashboard
// @Produce json
// @Success 200 {array} Point
// @Router /dashboard/recent-points [get]
func (e *DashboardController) getRecentPointsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := e.dashboardService.GetRecentPoints(getMentorId(c), 5)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(events, toPointResponse))
	}
}
