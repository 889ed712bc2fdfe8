package handler

import (
	"github.com/gin-gonic/gin"

	"tambula/internal/middleware"
)

type RouterDeps struct {
	Auth      *AuthHandler
	Tickets   *TicketHandler
	JWTSecret []byte
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/register", deps.Auth.Register)
	api.POST("/login", deps.Auth.Login)

	authGroup := api.Group("")
	authGroup.Use(middleware.JWTAuth(deps.JWTSecret))
	authGroup.POST("/logout", deps.Auth.Logout)
	authGroup.POST("/tickets", deps.Tickets.Create)
	authGroup.GET("/tickets/:id", deps.Tickets.List)
}
