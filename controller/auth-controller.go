package controller

import (
	"geeksboard/app_error"
	"geeksboard/auth"
	"geeksboard/config"
	"geeksboard/repository"
	"geeksboard/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	mentorService *service.MentorService
}

func NewAuthController() *AuthController {
	return &AuthController{
		mentorService: service.NewMentorService(),
	}
}

func setupAuthController() []RouteInfo {
	e := NewAuthController()
	basePath := "/auth"
	routes := []RouteInfo{
		{Method: "POST", Path: "/register", HandlerFunc: e.registerHandler()},
		{Method: "POST", Path: "/login", HandlerFunc: e.loginHandler()},
		{Method: "POST", Path: "/logout", HandlerFunc: e.logoutHandler()},
		{Method: "GET", Path: "/self", HandlerFunc: e.getSelfHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id Register
// @Description Registers a new mentor account and logs it in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body MentorRegistration true "Mentor registration"
// @Success 201 {object} Mentor
// @Router /auth/register [post]
func (e *AuthController) registerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var registration MentorRegistration
		if err := c.BindJSON(&registration); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		mentor, err := e.mentorService.Register(registration.toModel(), registration.Password)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		if err := setAuthCookie(c, mentor); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toMentorResponse(mentor))
	}
}

// @id Login
// @Description Authenticates a mentor and sets the auth cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param body body MentorLogin true "Mentor credentials"
// @Success 200 {object} Mentor
// @Router /auth/login [post]
func (e *AuthController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var login MentorLogin
		if err := c.BindJSON(&login); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		mentor, err := e.mentorService.Authenticate(login.Email, login.Password)
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid credentials"})
			return
		}
		if err := setAuthCookie(c, mentor); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, toMentorResponse(mentor))
	}
}

// @id Logout
// @Description Clears the auth cookie
// @Tags auth
// @Router /auth/logout [post]
func (e *AuthController) logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("auth", "", -1, "/", "", config.IsProduction(), true)
		c.Status(204)
	}
}

// @id GetSelf
// @Description Fetches the authenticated mentor
// @Tags auth
// @Produce json
// @Success 200 {object} Mentor
// @Router /auth/self [get]
func (e *AuthController) getSelfHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		mentor, err := e.mentorService.GetMentorById(getMentorId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toMentorResponse(mentor))
	}
}

func setAuthCookie(c *gin.Context, mentor *repository.Mentor) error {
	token, err := auth.CreateToken(mentor)
	if err != nil {
		return err
	}
	c.SetCookie("auth", token, 60*60*24*21, "/", "", config.IsProduction(), true)
	return nil
}

type MentorRegistration struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	FullName   string `json:"full_name" binding:"required"`
	Phone      string `json:"phone"`
	CenterName string `json:"center_name"`
	Bio        string `json:"bio"`
}

type MentorLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Mentor struct {
	Id         int    `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	CenterName string `json:"center_name"`
	Bio        string `json:"bio"`
}

func (e *MentorRegistration) toModel() *repository.Mentor {
	return &repository.Mentor{
		Email:      e.Email,
		FullName:   e.FullName,
		Phone:      e.Phone,
		CenterName: e.CenterName,
		Bio:        e.Bio,
	}
}

func toMentorResponse(mentor *repository.Mentor) *Mentor {
	return &Mentor{
		Id:         mentor.Id,
		Email:      mentor.Email,
		FullName:   mentor.FullName,
		Phone:      mentor.Phone,
		CenterName: mentor.CenterName,
		Bio:        mentor.Bio,
	}
}
