package controller

import (
	"strconv"
	"strings"
	"time"

	"geeksboard/app_error"
	"geeksboard/repository"
	"geeksboard/scoring"
	"geeksboard/service"
	"geeksboard/utils"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type GroupController struct {
	groupService *service.GroupService
	scoreService *service.ScoreService
}

func NewGroupController() *GroupController {
	return &GroupController{
		groupService: service.NewGroupService(),
		scoreService: service.NewScoreService(),
	}
}

func setupGroupController(cacheStore persistence.CacheStore) []RouteInfo {
	e := NewGroupController()
	basePath := "/groups"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getGroupsHandler(), Authenticated: true},
		{Method: "PUT", Path: "", HandlerFunc: e.createGroupHandler(), Authenticated: true},
		{Method: "GET", Path: "/:group_id", HandlerFunc: e.getGroupHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:group_id", HandlerFunc: e.deleteGroupHandler(), Authenticated: true},
		{Method: "GET", Path: "/:group_id/leaderboard", HandlerFunc: e.cachedLeaderboardHandler(cacheStore), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetGroups
// @Description Fetches all groups of the authenticated mentor
// @Tags groups
// @Produce json
// @Success 200 {array} Group
// @Router /groups [get]
func (e *GroupController) getGroupsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := e.groupService.GetGroupsForMentor(getMentorId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(groups, toGroupResponse))
	}
}

// @id CreateGroup
// @Description Creates or updates a group for the authenticated mentor
// @Tags groups
// @Accept json
// @Produce json
// @Param body body GroupCreate true "Group"
// @Success 201 {object} Group
// @Router /groups [put]
func (e *GroupController) createGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var group GroupCreate
		if err := c.BindJSON(&group); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		for _, day := range group.ScheduleDays {
			if !utils.Contains(weekDays, strings.ToLower(day)) {
				c.JSON(400, gin.H{"error": "unknown schedule day: " + day})
				return
			}
		}
		groupModel := group.toModel()
		groupModel.MentorId = getMentorId(c)
		dbgroup, err := e.groupService.SaveGroup(groupModel)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toGroupResponse(dbgroup))
	}
}

// @id GetGroup
// @Description Fetches a single group with its students
// @Tags groups
// @Produce json
// @Param group_id path int true "Group Id"
// @Success 200 {object} Group
// @Router /groups/{group_id} [get]
func (e *GroupController) getGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, err := strconv.Atoi(c.Param("group_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		group, err := e.groupService.GetGroupForMentor(groupId, getMentorId(c), "Students")
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toGroupResponse(group))
	}
}

// @id DeleteGroup
// @Description Deletes a group and all of its students
// @Tags groups
// @Param group_id path int true "Group Id"
// @Success 204
// @Router /groups/{group_id} [delete]
func (e *GroupController) deleteGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, err := strconv.Atoi(c.Param("group_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.groupService.DeleteGroup(groupId, getMentorId(c)); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

// cachedLeaderboardHandler re-checks group ownership before touching the page
// cache, so a cache hit cannot leak another mentor's board.
func (e *GroupController) cachedLeaderboardHandler(cacheStore persistence.CacheStore) gin.HandlerFunc {
	cached := cache.CachePage(cacheStore, time.Minute, e.getLeaderboardHandler())
	return func(c *gin.Context) {
		groupId, err := strconv.Atoi(c.Param("group_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if _, err := e.groupService.GetGroupForMentor(groupId, getMentorId(c)); err != nil {
			app_error.Respond(c, err)
			return
		}
		cached(c)
	}
}

// @id GetLeaderboard
// @Description Fetches the ranked leaderboard of a group. Defaults to the current month.
// @Tags groups
// @Produce json
// @Param group_id path int true "Group Id"
// @Param start query string false "Window start (RFC 3339)"
// @Param end query string false "Window end (RFC 3339)"
// @Success 200 {array} LeaderboardEntry
// @Router /groups/{group_id}/leaderboard [get]
func (e *GroupController) getLeaderboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, err := strconv.Atoi(c.Param("group_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		start, end, err := parseWindow(c)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		entries, err := e.scoreService.GetLeaderboard(groupId, getMentorId(c), start, end)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(entries, toLeaderboardEntry))
	}
}

// parseWindow reads optional start/end query params. With neither given the
// window defaults to the month containing now; with only one given the other
// side stays open.
func parseWindow(c *gin.Context) (*time.Time, *time.Time, error) {
	startParam := c.Query("start")
	endParam := c.Query("end")
	if startParam == "" && endParam == "" {
		start, end := scoring.MonthWindow(time.Now())
		return &start, &end, nil
	}
	var start, end *time.Time
	if startParam != "" {
		t, err := time.Parse(time.RFC3339, startParam)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if endParam != "" {
		t, err := time.Parse(time.RFC3339, endParam)
		if err != nil {
			return nil, nil, err
		}
		end = &t
	}
	return start, end, nil
}

var weekDays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

type GroupCreate struct {
	Id           *int       `json:"id"`
	Name         string     `json:"name" binding:"required"`
	Subject      string     `json:"subject"`
	ScheduleDays []string   `json:"schedule_days"`
	StartDate    *time.Time `json:"start_date"`
}

type Group struct {
	Id           int        `json:"id"`
	Name         string     `json:"name"`
	Subject      string     `json:"subject"`
	ScheduleDays []string   `json:"schedule_days"`
	StartDate    *time.Time `json:"start_date"`
	Students     []*Student `json:"students,omitempty"`
}

type LeaderboardEntry struct {
	StudentId int    `json:"student_id"`
	FullName  string `json:"full_name"`
	Total     int    `json:"total"`
	Rank      int    `json:"rank"`
}

func (e *GroupCreate) toModel() *repository.Group {
	group := &repository.Group{
		Name:         e.Name,
		Subject:      e.Subject,
		ScheduleDays: pq.StringArray(e.ScheduleDays),
		StartDate:    e.StartDate,
	}
	if e.Id != nil {
		group.Id = *e.Id
	}
	return group
}

func toGroupResponse(group *repository.Group) *Group {
	return &Group{
		Id:           group.Id,
		Name:         group.Name,
		Subject:      group.Subject,
		ScheduleDays: group.ScheduleDays,
		StartDate:    group.StartDate,
		Students:     utils.Map(group.Students, toStudentResponse),
	}
}

func toLeaderboardEntry(entry *scoring.RankedStudent) *LeaderboardEntry {
	return &LeaderboardEntry{
		StudentId: entry.StudentId,
		FullName:  entry.FullName,
		Total:     entry.Total,
		Rank:      entry.Rank,
	}
}
