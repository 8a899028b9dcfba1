package student

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/common"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/pkg/responses"
)

// StudentController handles student HTTP requests
type StudentController struct {
	store storage.Storage
}

func NewStudentController(store storage.Storage) *StudentController {
	return &StudentController{store: store}
}

// ListStudents godoc
// @Summary List students
// @Description Students with their batch and latest skill assessment, optionally filtered.
// @Tags students
// @Produce json
// @Param batchId query int false "Filter by batch"
// @Param status query string false "Filter by status (active, inactive, at_risk)"
// @Success 200 {array} models.StudentWithBatch
// @Failure 400 {object} responses.ErrorResponse "Invalid filter"
// @Router /students [get]
// @Security BearerAuth
func (sc *StudentController) ListStudents(c *gin.Context) {
	batchID, err := common.OptionalUintQuery(c, "batchId")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	filter := models.StudentFilter{BatchID: batchID}
	if raw := c.Query("status"); raw != "" {
		status := models.StudentStatus(raw)
		if !status.Valid() {
			responses.BadRequest(c, "invalid status")
			return
		}
		filter.Status = &status
	}

	students, err := sc.store.ListStudents(c.Request.Context(), filter)
	if err != nil {
		responses.FromError(c, "Failed to fetch students", err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// ListAtRiskStudents godoc
// @Summary List at-risk students
// @Tags students
// @Produce json
// @Success 200 {array} models.StudentWithBatch
// @Router /students/at-risk [get]
// @Security BearerAuth
func (sc *StudentController) ListAtRiskStudents(c *gin.Context) {
	students, err := sc.store.ListAtRiskStudents(c.Request.Context())
	if err != nil {
		responses.FromError(c, "Failed to fetch at-risk students", err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetStudent godoc
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.StudentWithBatch
// @Failure 404 {object} responses.ErrorResponse "Student not found"
// @Router /students/{id} [get]
// @Security BearerAuth
func (sc *StudentController) GetStudent(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	st, err := sc.store.GetStudent(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Failed to fetch student", err)
		return
	}
	if st == nil {
		responses.NotFound(c, "Student")
		return
	}
	c.JSON(http.StatusOK, st)
}

// CreateStudent godoc
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param student body CreateStudentRequest true "Student"
// @Success 201 {object} models.Student
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Router /students [post]
// @Security BearerAuth
func (sc *StudentController) CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if !common.BindJSON(c, &req) {
		return
	}
	st, err := sc.store.CreateStudent(c.Request.Context(), req.toInput())
	if err != nil {
		responses.FromError(c, "Failed to create student", err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// UpdateStudent godoc
// @Summary Update a student
// @Description Partial update; absent keys are kept, null clears optional fields.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param student body UpdateStudentRequest true "Fields to change"
// @Success 200 {object} models.Student
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Student not found"
// @Router /students/{id} [patch]
// @Security BearerAuth
func (sc *StudentController) UpdateStudent(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	var req UpdateStudentRequest
	if !common.BindJSON(c, &req) {
		return
	}
	st, err := sc.store.UpdateStudent(c.Request.Context(), id, req.toPatch())
	if err != nil {
		responses.FromError(c, "Failed to update student", err)
		return
	}
	if st == nil {
		responses.NotFound(c, "Student")
		return
	}
	c.JSON(http.StatusOK, st)
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags students
// @Param id path int true "Student ID"
// @Success 204
// @Failure 404 {object} responses.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
// @Security BearerAuth
func (sc *StudentController) DeleteStudent(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	deleted, err := sc.store.DeleteStudent(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Failed to delete student", err)
		return
	}
	if !deleted {
		responses.NotFound(c, "Student")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAttendanceSummary godoc
// @Summary Attendance summary of a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.AttendanceSummary
// @Failure 404 {object} responses.ErrorResponse "Student not found"
// @Router /students/{id}/attendance [get]
// @Security BearerAuth
func (sc *StudentController) GetAttendanceSummary(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	summary, err := sc.store.StudentAttendance(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Failed to fetch attendance", err)
		return
	}
	if summary == nil {
		responses.NotFound(c, "Student")
		return
	}
	c.JSON(http.StatusOK, summary)
}
