package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/oasys/internal/attendance"
	"github.com/abhisek/oasys/internal/report"
	"github.com/abhisek/oasys/internal/responder"
	"github.com/abhisek/oasys/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func seedRouter() *gin.Engine {
	return NewRouter(NewHandler(store.NewSeed()))
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	w := do(t, seedRouter(), http.MethodGet, "/api/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestCourses(t *testing.T) {
	w := do(t, seedRouter(), http.MethodGet, "/api/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []CourseView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 4)
	assert.Equal(t, CourseView{
		ID: 1, Name: "Mathematics", TotalClasses: 50, AttendedClasses: 40,
		Percent: 80, Missable: 2, OnTrack: true, Status: "Can miss 2 classes",
	}, got[0])
}

func TestCourse(t *testing.T) {
	r := seedRouter()

	w := do(t, r, http.MethodGet, "/api/courses/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got CourseView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "English", got.Name)
	assert.Equal(t, 75, got.Percent)
	assert.Equal(t, 0, got.Missable)

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/api/courses/99", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/api/courses/abc", nil).Code)
}

func TestSummary(t *testing.T) {
	w := do(t, seedRouter(), http.MethodGet, "/api/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got SummaryView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 82, got.Overall)
	assert.Equal(t, "You're on track!", got.Status)
	require.Len(t, got.Alerts, 1)
	assert.Equal(t, "English", got.Alerts[0].Name)
}

func TestEventsSorted(t *testing.T) {
	w := do(t, seedRouter(), http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []attendance.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, attendance.SortByDate(attendance.SeedEvents()), got)
}

func TestChat(t *testing.T) {
	r := seedRouter()

	tests := []struct {
		name    string
		body    any
		code    int
		kind    responder.Kind
		content string
	}{
		{name: "holiday", body: chatRequest{Message: "plan a holiday"}, code: http.StatusOK, kind: responder.KindHoliday},
		{name: "attendance", body: chatRequest{Message: "what is my attendance"}, code: http.StatusOK, kind: responder.KindAttendance, content: "82%"},
		{name: "blank", body: chatRequest{Message: "   "}, code: http.StatusBadRequest},
		{name: "missing", body: map[string]any{}, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/chat", tt.body)
			require.Equal(t, tt.code, w.Code)
			if tt.code != http.StatusOK {
				return
			}
			var got responder.Reply
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.kind, got.Kind)
			assert.Contains(t, got.Text, tt.content)
		})
	}
}

func TestAttendReadOnly(t *testing.T) {
	w := do(t, seedRouter(), http.MethodPost, "/api/courses/1/attend", attendRequest{Present: boolPtr(true)})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAttendWritable(t *testing.T) {
	repo, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	defer repo.Close()
	_, err = store.Seed(context.Background(), repo, attendance.SeedCourses(), attendance.SeedEvents())
	require.NoError(t, err)

	r := NewRouter(NewHandler(repo))

	w := do(t, r, http.MethodPost, "/api/courses/4/attend", attendRequest{Present: boolPtr(false)})
	require.Equal(t, http.StatusOK, w.Code)
	var got CourseView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 41, got.TotalClasses)
	assert.Equal(t, 30, got.AttendedClasses)
	assert.False(t, got.OnTrack)

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/api/courses/4/attend", map[string]any{}).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPost, "/api/courses/9/attend", attendRequest{Present: boolPtr(true)}).Code)
}

func TestReport(t *testing.T) {
	w := do(t, seedRouter(), http.MethodGet, "/api/report.xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)

	sheet, err := report.Import(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, attendance.SeedCourses(), sheet.Courses)
}

func boolPtr(b bool) *bool { return &b }
