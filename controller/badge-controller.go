package controller

import (
	"strconv"
	"time"

	"geeksboard/app_error"
	"geeksboard/repository"
	"geeksboard/service"
	"geeksboard/utils"

	"github.com/gin-gonic/gin"
)

type BadgeController struct {
	badgeService *service.BadgeService
}

func NewBadgeController() *BadgeController {
	return &BadgeController{
		badgeService: service.NewBadgeService(),
	}
}

func setupBadgeController() []RouteInfo {
	e := NewBadgeController()
	basePath := "/badges"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getBadgesHandler(), Authenticated: true},
		{Method: "PUT", Path: "", HandlerFunc: e.createBadgeHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:badge_id", HandlerFunc: e.deleteBadgeHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetBadges
// @Description Fetches all badges in the catalog
// @Tags badges
// @Produce json
// @Success 200 {array} Badge
// @Router /badges [get]
func (e *BadgeController) getBadgesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		badges, err := e.badgeService.GetBadges()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(badges, toBadgeResponse))
	}
}

// @id CreateBadge
// @Description Creates or updates a badge
// @Tags badges
// @Accept json
// @Produce json
// @Param body body BadgeCreate true "Badge"
// @Success 201 {object} Badge
// @Router /badges [put]
func (e *BadgeController) createBadgeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var badge BadgeCreate
		if err := c.BindJSON(&badge); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dbbadge, err := e.badgeService.SaveBadge(badge.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toBadgeResponse(dbbadge))
	}
}

// @id DeleteBadge
// @Description Deletes a badge
// @Tags badges
// @Param badge_id path int true "Badge Id"
// @Success 204
// @Router /badges/{badge_id} [delete]
func (e *BadgeController) deleteBadgeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		badgeId, err := strconv.Atoi(c.Param("badge_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.badgeService.DeleteBadge(badgeId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

type BadgeCreate struct {
	Id            *int                         `json:"id"`
	Name          string                       `json:"name" binding:"required"`
	Description   string                       `json:"description"`
	Icon          string                       `json:"icon"`
	CriteriaType  repository.BadgeCriteriaType `json:"criteria_type" binding:"required"`
	CriteriaValue int                          `json:"criteria_value" binding:"required"`
	IsActive      *bool                        `json:"is_active"`
}

type Badge struct {
	Id            int                          `json:"id"`
	Name          string                       `json:"name"`
	Description   string                       `json:"description"`
	Icon          string                       `json:"icon"`
	CriteriaType  repository.BadgeCriteriaType `json:"criteria_type"`
	CriteriaValue int                          `json:"criteria_value"`
	IsActive      bool                         `json:"is_active"`
}

type EarnedBadge struct {
	Badge    *Badge    `json:"badge"`
	EarnedAt time.Time `json:"earned_at"`
}

func (e *BadgeCreate) toModel() *repository.Badge {
	badge := &repository.Badge{
		Name:          e.Name,
		Description:   e.Description,
		Icon:          e.Icon,
		CriteriaType:  e.CriteriaType,
		CriteriaValue: e.CriteriaValue,
		IsActive:      true,
	}
	if e.Id != nil {
		badge.Id = *e.Id
	}
	if e.IsActive != nil {
		badge.IsActive = *e.IsActive
	}
	return badge
}

func toBadgeResponse(badge *repository.Badge) *Badge {
	return &Badge{
		Id:            badge.Id,
		Name:          badge.Name,
		Description:   badge.Description,
		Icon:          badge.Icon,
		CriteriaType:  badge.CriteriaType,
		CriteriaValue: badge.CriteriaValue,
		IsActive:      badge.IsActive,
	}
}

func toEarnedBadgeResponse(studentBadge *repository.StudentBadge) *EarnedBadge {
	return &EarnedBadge{
		Badge:    toBadgeResponse(studentBadge.Badge),
		EarnedAt: studentBadge.EarnedAt,
	}
}
