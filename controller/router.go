package controller

import (
	"geeksboard/auth"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
)

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
}

func SetRoutes(r *gin.Engine, cacheStore persistence.CacheStore) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupAuthController()...)
	routes = append(routes, setupGroupController(cacheStore)...)
	routes = append(routes, setupStudentController()...)
	routes = append(routes, setupPointController()...)
	routes = append(routes, setupCategoryController()...)
	routes = append(routes, setupBadgeController()...)
	routes = append(routes, setupRewardController()...)
	routes = append(routes, setupLeaderboardStreamController()...)
	routes = append(routes, setupDashboardController()...)
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware())
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		r.Handle(route.Method, "/api"+route.Path, handlerfuncs...)
	}
}

func AuthMiddleware() gin.HandlerFunc {
	return func(r *gin.Context) {
		authCookie, err := r.Cookie("auth")
		if err != nil {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		token, err := auth.ParseToken(authCookie)
		if err != nil || !token.Valid {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		claims := &auth.Claims{}
		claims.FromJWTClaims(token.Claims)
		if err := claims.Valid(); err != nil {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		r.Set("mentor_id", claims.MentorId)
		r.Next()
	}
}

// getMentorId reads the mentor id that AuthMiddleware stored on the context.
func getMentorId(c *gin.Context) int {
	mentorId, ok := c.Get("mentor_id")
	if !ok {
		return 0
	}
	return mentorId.(int)
}
