package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListClubs(c *ginext.Context)
	RegisterForEvent(c *ginext.Context)
	ApproveRegistration(c *ginext.Context)
	RejectRegistration(c *ginext.Context)
	ListRegistrations(c *ginext.Context)
	GetStudentRegistrations(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	ListNotifications(c *ginext.Context)
	GetUnreadCount(c *ginext.Context)
	MarkNotificationRead(c *ginext.Context)
	CreateAnnouncement(c *ginext.Context)
	ListAnnouncements(c *ginext.Context)
	DeleteAnnouncement(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)

		// Registrations
		api.POST("/events/:id/register", h.RegisterForEvent)
		api.GET("/registrations", h.ListRegistrations)
		api.POST("/registrations/:id/approve", h.ApproveRegistration)
		api.POST("/registrations/:id/reject", h.RejectRegistration)
		api.GET("/students/:id/registrations", h.GetStudentRegistrations)

		// Clubs
		api.GET("/clubs", h.ListClubs)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)

		// Notifications
		api.GET("/users/:id/notifications", h.ListNotifications)
		api.GET("/users/:id/notifications/unread-count", h.GetUnreadCount)
		api.POST("/notifications/:id/read", h.MarkNotificationRead)

		// Announcements
		api.POST("/announcements", h.CreateAnnouncement)
		api.GET("/announcements", h.ListAnnouncements)
		api.DELETE("/announcements/:id", h.DeleteAnnouncement)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
