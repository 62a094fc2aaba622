// Package api serves attendance data and the response selector over HTTP.
package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/oasys/internal/attendance"
	"github.com/abhisek/oasys/internal/report"
	"github.com/abhisek/oasys/internal/responder"
	"github.com/abhisek/oasys/internal/store"
)

// CourseView is the JSON form of a course with its derived figures.
type CourseView struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	TotalClasses    int    `json:"total_classes"`
	AttendedClasses int    `json:"attended_classes"`
	Percent         int    `json:"percent"`
	Missable        int    `json:"missable"`
	OnTrack         bool   `json:"on_track"`
	Status          string `json:"status"`
}

// SummaryView is the JSON form of the overall summary.
type SummaryView struct {
	Overall int          `json:"overall"`
	Status  string       `json:"status"`
	Alerts  []CourseView `json:"alerts"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type attendRequest struct {
	Present *bool `json:"present"`
}

// Handler holds the dependencies for the API handlers.
type Handler struct {
	Repo store.Repo
}

// NewHandler creates a Handler backed by repo.
func NewHandler(repo store.Repo) *Handler {
	return &Handler{Repo: repo}
}

func viewOf(s attendance.CourseStat) CourseView {
	return CourseView{
		ID:              s.Course.ID,
		Name:            s.Course.Name,
		TotalClasses:    s.Course.TotalClasses,
		AttendedClasses: s.Course.AttendedClasses,
		Percent:         s.Percent,
		Missable:        s.Missable,
		OnTrack:         s.OnTrack(),
		Status:          s.Badge(),
	}
}

// Ping handles GET /api/ping.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Courses handles GET /api/courses.
func (h *Handler) Courses(c *gin.Context) {
	courses, err := h.Repo.Courses(c.Request.Context())
	if err != nil {
		log.Printf("list courses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve courses"})
		return
	}
	views := make([]CourseView, 0, len(courses))
	for _, s := range attendance.Summarize(courses).Courses {
		views = append(views, viewOf(s))
	}
	c.JSON(http.StatusOK, views)
}

// Course handles GET /api/courses/:id.
func (h *Handler) Course(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}
	course, err := h.Repo.Course(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	if err != nil {
		log.Printf("get course %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve course"})
		return
	}
	c.JSON(http.StatusOK, viewOf(attendance.Stat(course)))
}

// Attend handles POST /api/courses/:id/attend.
func (h *Handler) Attend(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}
	var req attendRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Present == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": `Request body must be {"present": true|false}`})
		return
	}

	course, err := store.RecordAttendance(c.Request.Context(), h.Repo, id, *req.Present)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	case errors.Is(err, store.ErrReadOnly):
		c.JSON(http.StatusConflict, gin.H{"error": "Data source is read-only"})
		return
	case err != nil:
		log.Printf("record attendance for course %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record attendance"})
		return
	}
	c.JSON(http.StatusOK, viewOf(attendance.Stat(course)))
}

// Summary handles GET /api/summary.
func (h *Handler) Summary(c *gin.Context) {
	courses, err := h.Repo.Courses(c.Request.Context())
	if err != nil {
		log.Printf("summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	s := attendance.Summarize(courses)
	alerts := make([]CourseView, 0)
	for _, a := range s.Alerts() {
		alerts = append(alerts, viewOf(a))
	}
	c.JSON(http.StatusOK, SummaryView{
		Overall: s.Overall,
		Status:  s.Status(),
		Alerts:  alerts,
	})
}

// Events handles GET /api/events.
func (h *Handler) Events(c *gin.Context) {
	events, err := h.Repo.Events(c.Request.Context())
	if err != nil {
		log.Printf("list events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve events"})
		return
	}
	sorted := attendance.SortByDate(events)
	if sorted == nil {
		sorted = []attendance.Event{}
	}
	c.JSON(http.StatusOK, sorted)
}

// Chat handles POST /api/chat.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	courses, err := h.Repo.Courses(c.Request.Context())
	if err != nil {
		log.Printf("chat: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute attendance"})
		return
	}
	c.JSON(http.StatusOK, responder.Select(req.Message, attendance.Overall(courses)))
}

// Report handles GET /api/report.xlsx.
func (h *Handler) Report(c *gin.Context) {
	ctx := c.Request.Context()
	courses, err := h.Repo.Courses(ctx)
	if err != nil {
		log.Printf("report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve courses"})
		return
	}
	events, err := h.Repo.Events(ctx)
	if err != nil {
		log.Printf("report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve events"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="attendance.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := report.Write(c.Writer, courses, events); err != nil {
		log.Printf("report: %v", err)
	}
}

func courseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Course ID must be a number"})
		return 0, false
	}
	return id, true
}
