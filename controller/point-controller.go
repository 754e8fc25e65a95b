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

type PointController struct {
	pointService *service.PointService
}

func NewPointController() *PointController {
	return &PointController{
		pointService: service.NewPointService(),
	}
}

func setupPointController() []RouteInfo {
	e := NewPointController()
	routes := []RouteInfo{
		{Method: "PUT", Path: "/students/:student_id/points", HandlerFunc: e.addPointsHandler(), Authenticated: true},
		{Method: "GET", Path: "/students/:student_id/points", HandlerFunc: e.getPointsHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/points/:point_id", HandlerFunc: e.deletePointHandler(), Authenticated: true},
	}
	return routes
}

// @id AddPoints
// @Description Awards or deducts points for a student. The score is signed and capped by the category's max score.
// @Tags points
// @Accept json
// @Produce json
// @Param student_id path int true "Student Id"
// @Param body body PointCreate true "Point entry"
// @Success 201 {object} Point
// @Router /students/{student_id}/points [put]
func (e *PointController) addPointsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		studentId, err := strconv.Atoi(c.Param("student_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var point PointCreate
		if err := c.BindJSON(&point); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		eventModel := point.toModel()
		eventModel.StudentId = studentId
		event, err := e.pointService.AddPoints(eventModel, getMentorId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toPointResponse(event))
	}
}

// @id GetPoints
// @Description Fetches a student's point history, newest first
// @Tags points
// @Produce json
// @Param student_id path int true "Student Id"
// @Param start query string false "Window start (RFC 3339)"
// @Param end query string false "Window end (RFC 3339)"
// @Success 200 {array} Point
// @Router /students/{student_id}/points [get]
func (e *PointController) getPointsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		studentId, err := strconv.Atoi(c.Param("student_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var start, end *time.Time
		if c.Query("start") != "" || c.Query("end") != "" {
			start, end, err = parseWindow(c)
			if err != nil {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
		}
		events, err := e.pointService.GetPointsForStudent(studentId, getMentorId(c), start, end)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(events, toPointResponse))
	}
}

// @id DeletePoint
// @Description Deletes a single point entry
// @Tags points
// @Param point_id path int true "Point Id"
// @Success 204
// @Router /points/{point_id} [delete]
func (e *PointController) deletePointHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		pointId, err := strconv.Atoi(c.Param("point_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.pointService.DeletePoint(pointId, getMentorId(c)); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

type PointCreate struct {
	CategoryId int        `json:"category_id" binding:"required"`
	Score      int        `json:"score" binding:"required"`
	Reason     string     `json:"reason"`
	Note       string     `json:"note"`
	Timestamp  *time.Time `json:"timestamp"`
}

type Point struct {
	Id           int       `json:"id"`
	StudentId    int       `json:"student_id"`
	CategoryId   int       `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Score        int       `json:"score"`
	Reason       string    `json:"reason"`
	Note         string    `json:"note"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *PointCreate) toModel() *repository.PointEvent {
	event := &repository.PointEvent{
		CategoryId: e.CategoryId,
		Score:      e.Score,
		Reason:     e.Reason,
		Note:       e.Note,
	}
	if e.Timestamp != nil {
		event.Timestamp = *e.Timestamp
	}
	return event
}

func toPointResponse(event *repository.PointEvent) *Point {
	point := &Point{
		Id:         event.Id,
		StudentId:  event.StudentId,
		CategoryId: event.CategoryId,
		Score:      event.Score,
		Reason:     event.Reason,
		Note:       event.Note,
		Timestamp:  event.Timestamp,
	}
	if event.Category != nil {
		point.CategoryName = event.Category.Name
	}
	return point
}
