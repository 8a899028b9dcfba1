package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/common"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/pkg/responses"
)

const dateLayout = "2006-01-02"

type SessionController struct {
	store storage.Storage
	// loc interprets date-only query parameters.
	loc *time.Location
}

func NewSessionController(store storage.Storage, loc *time.Location) *SessionController {
	if loc == nil {
		loc = time.UTC
	}
	return &SessionController{store: store, loc: loc}
}

// ListSessions godoc
// @Summary List sessions
// @Description Sessions with batch, coach and attendance, filtered by batch and calendar day.
// @Tags sessions
// @Produce json
// @Param batchId query int false "Filter by batch"
// @Param date query string false "Calendar day, YYYY-MM-DD"
// @Success 200 {array} models.SessionWithDetails
// @Failure 400 {object} responses.ErrorResponse "Invalid filter"
// @Router /sessions [get]
// @Security BearerAuth
func (sc *SessionController) ListSessions(c *gin.Context) {
	batchID, err := common.OptionalUintQuery(c, "batchId")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	filter := models.SessionFilter{BatchID: batchID}
	if raw := c.Query("date"); raw != "" {
		day, err := time.ParseInLocation(dateLayout, raw, sc.loc)
		if err != nil {
			responses.BadRequest(c, "invalid date, expected YYYY-MM-DD")
			return
		}
		filter.Date = &day
	}

	sessions, err := sc.store.ListSessions(c.Request.Context(), filter)
	if err != nil {
		responses.FromError(c, "Failed to fetch sessions", err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSession godoc
// @Summary Get a session
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} models.SessionWithDetails
// @Failure 404 {object} responses.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
// @Security BearerAuth
func (sc *SessionController) GetSession(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	se, err := sc.store.GetSession(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Failed to fetch session", err)
		return
	}
	if se == nil {
		responses.NotFound(c, "Session")
		return
	}
	c.JSON(http.StatusOK, se)
}

// CreateSession godoc
// @Summary Schedule a session
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body CreateSessionRequest true "Session"
// @Success 201 {object} models.Session
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Batch not found"
// @Router /sessions [post]
// @Security BearerAuth
func (sc *SessionController) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if !common.BindJSON(c, &req) {
		return
	}
	b, err := sc.store.GetBatch(c.Request.Context(), req.BatchID)
	if err != nil {
		responses.FromError(c, "Failed to create session", err)
		return
	}
	if b == nil {
		responses.NotFound(c, "Batch")
		return
	}
	se, err := sc.store.CreateSession(c.Request.Context(), models.NewSession{
		BatchID:  req.BatchID,
		CoachID:  req.CoachID,
		Date:     req.Date,
		Duration: req.Duration,
		Court:    req.Court,
		Notes:    req.Notes,
	})
	if err != nil {
		responses.FromError(c, "Failed to create session", err)
		return
	}
	c.JSON(http.StatusCreated, se)
}

// UpdateSession godoc
// @Summary Update a session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param session body UpdateSessionRequest true "Fields to change"
// @Success 200 {object} models.Session
// @Failure 400 {object} responses.ErrorResponse "Invalid input or status regression"
// @Failure 404 {object} responses.ErrorResponse "Session not found"
// @Router /sessions/{id} [patch]
// @Security BearerAuth
func (sc *SessionController) UpdateSession(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	var req UpdateSessionRequest
	if !common.BindJSON(c, &req) {
		return
	}
	se, err := sc.store.UpdateSession(c.Request.Context(), id, models.SessionPatch{
		BatchID:  req.BatchID,
		CoachID:  req.CoachID,
		Date:     req.Date,
		Duration: req.Duration,
		Court:    req.Court,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if err != nil {
		responses.FromError(c, "Failed to update session", err)
		return
	}
	if se == nil {
		responses.NotFound(c, "Session")
		return
	}
	c.JSON(http.StatusOK, se)
}

// DeleteSession godoc
// @Summary Delete a session
// @Tags sessions
// @Param id path int true "Session ID"
// @Success 204
// @Failure 404 {object} responses.ErrorResponse "Session not found"
// @Router /sessions/{id} [delete]
// @Security BearerAuth
func (sc *SessionController) DeleteSession(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	deleted, err := sc.store.DeleteSession(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Failed to delete session", err)
		return
	}
	if !deleted {
		responses.NotFound(c, "Session")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAttendance godoc
// @Summary Attendance of a session
// @Tags attendance
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {array} models.AttendanceWithStudent
// @Failure 404 {object} responses.ErrorResponse "Session not found"
// @Router /sessions/{id}/attendance [get]
// @Security BearerAuth
func (sc *SessionController) ListAttendance(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	se, err := sc.store.GetSession(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Failed to fetch attendance", err)
		return
	}
	if se == nil {
		responses.NotFound(c, "Session")
		return
	}
	c.JSON(http.StatusOK, se.Attendance)
}

// requirePair answers 404 unless both the session and the student exist.
func (sc *SessionController) requirePair(c *gin.Context, sessionID, studentID uint) bool {
	ctx := c.Request.Context()
	se, err := sc.store.GetSession(ctx, sessionID)
	if err != nil {
		responses.FromError(c, "Failed to mark attendance", err)
		return false
	}
	if se == nil {
		responses.NotFound(c, "Session")
		return false
	}
	st, err := sc.store.GetStudent(ctx, studentID)
	if err != nil {
		responses.FromError(c, "Failed to mark attendance", err)
		return false
	}
	if st == nil {
		responses.NotFound(c, "Student")
		return false
	}
	return true
}

// MarkAttendance godoc
// @Summary Mark attendance
// @Description Creates the record for the session and student, or updates the existing one.
// @Tags attendance
// @Accept json
// @Produce json
// @Param attendance body MarkAttendanceRequest true "Attendance"
// @Success 201 {object} models.Attendance
// @Failure 404 {object} responses.ErrorResponse "Session or student not found"
// @Router /attendance [post]
// @Security BearerAuth
func (sc *SessionController) MarkAttendance(c *gin.Context) {
	var req MarkAttendanceRequest
	if !common.BindJSON(c, &req) {
		return
	}
	if !sc.requirePair(c, req.SessionID, req.StudentID) {
		return
	}
	a, err := sc.store.MarkAttendance(c.Request.Context(), models.NewAttendance{
		SessionID: req.SessionID,
		StudentID: req.StudentID,
		Present:   req.Present,
		Notes:     req.Notes,
	})
	if err != nil {
		responses.FromError(c, "Failed to mark attendance", err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// UpdateAttendance godoc
// @Summary Update attendance
// @Description Sets the present flag, creating the record when missing.
// @Tags attendance
// @Accept json
// @Produce json
// @Param sessionId path int true "Session ID"
// @Param studentId path int true "Student ID"
// @Param attendance body UpdateAttendanceRequest true "Present flag"
// @Success 200 {object} models.Attendance
// @Failure 404 {object} responses.ErrorResponse "Session or student not found"
// @Router /attendance/{sessionId}/{studentId} [patch]
// @Security BearerAuth
func (sc *SessionController) UpdateAttendance(c *gin.Context) {
	sessionID, ok := common.PathID(c, "sessionId")
	if !ok {
		return
	}
	studentID, ok := common.PathID(c, "studentId")
	if !ok {
		return
	}
	var req UpdateAttendanceRequest
	if !common.BindJSON(c, &req) {
		return
	}
	if !sc.requirePair(c, sessionID, studentID) {
		return
	}
	a, err := sc.store.UpdateAttendance(c.Request.Context(), sessionID, studentID, *req.Present)
	if err != nil {
		responses.FromError(c, "Failed to update attendance", err)
		return
	}
	c.JSON(http.StatusOK, a)
}
