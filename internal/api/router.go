package api

import "github.com/gin-gonic/gin"

// NewRouter wires the API routes onto a gin engine. Middleware runs in the
// order given; pass gin.Logger() and gin.Recovery() for a server.
func NewRouter(h *Handler, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware...)

	api := router.Group("/api")
	{
		api.GET("/ping", Ping)
		api.GET("/courses", h.Courses)
		api.GET("/courses/:id", h.Course)
		api.POST("/courses/:id/attend", h.Attend)
		api.GET("/summary", h.Summary)
		api.GET("/events", h.Events)
		api.POST("/chat", h.Chat)
		api.GET("/report.xlsx", h.Report)
	}
	return router
}
