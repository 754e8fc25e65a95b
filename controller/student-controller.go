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

type StudentController struct {
	studentService *service.StudentService
	groupService   *service.GroupService
	scoreService   *service.ScoreService
	badgeService   *service.BadgeService
}

func NewStudentController() *StudentController {
	return &StudentController{
		studentService: service.NewStudentService(),
		groupService:   service.NewGroupService(),
		scoreService:   service.NewScoreService(),
		badgeService:   service.NewBadgeService(),
	}
}

func setupStudentController() []RouteInfo {
	e := NewStudentController()
	routes := []RouteInfo{
		{Method: "GET", Path: "/groups/:group_id/students", HandlerFunc: e.getStudentsHandler(), Authenticated: true},
		{Method: "PUT", Path: "/groups/:group_id/students", HandlerFunc: e.createStudentHandler(), Authenticated: true},
		{Method: "GET", Path: "/students/:student_id", HandlerFunc: e.getStudentHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/students/:student_id", HandlerFunc: e.deleteStudentHandler(), Authenticated: true},
		{Method: "GET", Path: "/students/:student_id/score", HandlerFunc: e.getScoreHandler(), Authenticated: true},
		{Method: "GET", Path: "/students/:student_id/trend", HandlerFunc: e.getTrendHandler(), Authenticated: true},
		{Method: "GET", Path: "/students/:student_id/level", HandlerFunc: e.getLevelHandler(), Authenticated: true},
		{Method: "GET", Path: "/students/:student_id/badges", HandlerFunc: e.getBadgesHandler(), Authenticated: true},
		{Method: "POST", Path: "/students/:student_id/badges/evaluate", HandlerFunc: e.evaluateBadgesHandler(), Authenticated: true},
	}
	return routes
}

// @id GetStudents
// @Description Fetches all students of a group, ordered by name
// @Tags students
// @Produce json
// @Param group_id path int true "Group Id"
// @Success 200 {array} Student
// @Router /groups/{group_id}/students [get]
func (e *StudentController) getStudentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, err := strconv.Atoi(c.Param("group_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		students, err := e.groupService.GetStudentsForGroup(groupId, getMentorId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(students, toStudentResponse))
	}
}

// @id CreateStudent
// @Description Creates or updates a student in a group
// @Tags students
// @Accept json
// @Produce json
// @Param group_id path int true "Group Id"
// @Param body body StudentCreate true "Student"
// @Success 201 {object} Student
// @Router /groups/{group_id}/students [put]
func (e *StudentController) createStudentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, err := strconv.Atoi(c.Param("group_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var student StudentCreate
		if err := c.BindJSON(&student); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		studentModel := student.toModel()
		studentModel.GroupId = groupId
		dbstudent, err := e.studentService.SaveStudent(studentModel, getMentorId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toStudentResponse(dbstudent))
	}
}

// @id GetStudent
// @Description Fetches a single student
// @Tags students
// @Produce json
// @Param student_id path int true "Student Id"
// @Success 200 {object} Student
// @Router /students/{student_id} [get]
func (e *StudentController) getStudentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		studentId, err := strconv.Atoi(c.Param("student_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		student, err := e.studentService.GetStudentForMentor(studentId, getMentorId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toStudentResponse(student))
	}
}

// @id DeleteStudent
// @Description Deletes a student and their point history
// @Tags students
// @Param student_id path int true "Student Id"
// @Success 204
// @Router /students/{student_id} [delete]
func (e *StudentController) deleteStudentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		studentId, err := strconv.Atoi(c.Param("student_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.studentService.DeleteStudent(studentId, getMentorId(c)); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

// @id GetStudentScore
// @Description Fetches a student's total score and per-category breakdown. Window is all-time unless start/end are given.
// @Tags students
// @Produce json
// @Param student_id path int true "Student Id"
// @Param start query string false "Window start (RFC 3339)"
// @Param end query string false "Window end (RFC 3339)"
// @Success 200 {object} service.ScoreSummary
// @Router /students/{student_id}/score [get]
func (e *StudentController) getScoreHandler() gin.HandlerFunc {
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
		summary, err := e.scoreService.GetScoreSummary(studentId, getMentorId(c), start, end)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, summary)
	}
}

// @id GetStudentTrend
// @Description Compares the student's score over the last N days against the N days before that
// @Tags students
// @Produce json
// @Param student_id path int true "Student Id"
// @Param days query int false "Window size in days (default 30)"
// @Success 200 {object} scoring.Trend
// @Router /students/{student_id}/trend [get]
func (e *StudentController) getTrendHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		studentId, err := strconv.Atoi(c.Param("student_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		days := 30
		if daysParam := c.Query("days"); daysParam != "" {
			days, err = strconv.Atoi(daysParam)
			if err != nil || days <= 0 {
				c.JSON(400, gin.H{"error": "days must be a positive integer"})
				return
			}
		}
		trend, err := e.scoreService.GetTrend(studentId, getMentorId(c), time.Now(), days)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, trend)
	}
}

// @id GetStudentLevel
// @Description Fetches the student's level and progress towards the next one
// @Tags students
// @Produce json
// @Param student_id path int true "Student Id"
// @Success 200 {object} scoring.Level
// @Router /students/{student_id}/level [get]
func (e *StudentController) getLevelHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		studentId, err := strconv.Atoi(c.Param("student_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		level, err := e.scoreService.GetLevel(studentId, getMentorId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, level)
	}
}

// @id GetStudentBadges
// @Description Fetches the badges a student has earned
// @Tags students
// @Produce json
// @Param student_id path int true "Student Id"
// @Success 200 {array} EarnedBadge
// @Router /students/{student_id}/badges [get]
func (e *StudentController) getBadgesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		studentId, err := strconv.Atoi(c.Param("student_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		earned, err := e.badgeService.GetBadgesForStudent(studentId, getMentorId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(earned, toEarnedBadgeResponse))
	}
}

// @id EvaluateStudentBadges
// @Description Re-evaluates all active badges for a student and returns the newly earned ones
// @Tags students
// @Produce json
// @Param student_id path int true "Student Id"
// @Success 200 {array} Badge
// @Router /students/{student_id}/badges/evaluate [post]
func (e *StudentController) evaluateBadgesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		studentId, err := strconv.Atoi(c.Param("student_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		newBadges, err := e.scoreService.EvaluateBadges(studentId, getMentorId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(newBadges, toBadgeResponse))
	}
}

type StudentCreate struct {
	Id          *int       `json:"id"`
	FullName    string     `json:"full_name" binding:"required"`
	BirthDate   *time.Time `json:"birth_date"`
	Phone       string     `json:"phone"`
	ParentPhone string     `json:"parent_phone"`
	Notes       string     `json:"notes"`
}

type Student struct {
	Id          int        `json:"id"`
	GroupId     int        `json:"group_id"`
	FullName    string     `json:"full_name"`
	BirthDate   *time.Time `json:"birth_date"`
	Phone       string     `json:"phone"`
	ParentPhone string     `json:"parent_phone"`
	Notes       string     `json:"notes"`
}

func (e *StudentCreate) toModel() *repository.Student {
	student := &repository.Student{
		FullName:    e.FullName,
		BirthDate:   e.BirthDate,
		Phone:       e.Phone,
		ParentPhone: e.ParentPhone,
		Notes:       e.Notes,
	}
	if e.Id != nil {
		student.Id = *e.Id
	}
	return student
}

func toStudentResponse(student *repository.Student) *Student {
	return &Student{
		Id:          student.Id,
		GroupId:     student.GroupId,
		FullName:    student.FullName,
		BirthDate:   student.BirthDate,
		Phone:       student.Phone,
		ParentPhone: student.ParentPhone,
		Notes:       student.Notes,
	}
}
