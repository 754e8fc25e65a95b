package controller

import (
	"time"

	"geeksboard/service"

	"github.com/gin-gonic/gin"
)

type RewardController struct {
	scoreService *service.ScoreService
}

func NewRewardController() *RewardController {
	return &RewardController{
		scoreService: service.NewScoreService(),
	}
}

func setupRewardController() []RouteInfo {
	e := NewRewardController()
	routes := []RouteInfo{
		{Method: "POST", Path: "/rewards/monthly", HandlerFunc: e.runMonthlyRewardsHandler(), Authenticated: true},
	}
	return routes
}

// @id RunMonthlyRewards
// @Description Runs the monthly reward pass. Groups already rewarded for the month are skipped.
// @Tags rewards
// @Produce json
// @Param month query string false "Target month (YYYY-MM, default current)"
// @Success 200 {object} scoring.RewardStats
// @Router /rewards/monthly [post]
func (e *RewardController) runMonthlyRewardsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		month := time.Now()
		if monthParam := c.Query("month"); monthParam != "" {
			parsed, err := time.ParseInLocation("2006-01", monthParam, time.Local)
			if err != nil {
				c.JSON(400, gin.H{"error": "month must be formatted as YYYY-MM"})
				return
			}
			month = parsed
		}
		stats, err := e.scoreService.RunMonthlyRewards(month)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, stats)
	}
}
