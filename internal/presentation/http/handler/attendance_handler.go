package handler

import (
	"github.com/davidmro/escolar-api/internal/application/service"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/davidmro/escolar-api/internal/domain/repository"
	"github.com/davidmro/escolar-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AttendanceHandler handles attendance-related HTTP requests
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// List handles listing attendance records with filters
func (h *AttendanceHandler) List(c *gin.Context) {
	params := &repository.AttendanceFilterParams{
		Date:      c.Query("date"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	if studentIDStr := c.Query("student_id"); studentIDStr != "" {
		studentID, err := uuid.Parse(studentIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid student ID")
			return
		}
		params.StudentID = &studentID
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.AttendanceStatus(statusStr)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid attendance status")
			return
		}
		params.Status = &status
	}

	records, err := h.attendanceService.ListAttendance(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Attendance records retrieved successfully", records)
}

// Create handles recording attendance for a student on a date
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req struct {
		StudentID string  `json:"student_id" binding:"required"`
		Date      string  `json:"date" binding:"required"`
		Status    string  `json:"status" binding:"required"`
		Notes     *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Student, date and status are required")
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	record, err := h.attendanceService.CreateAttendance(c.Request.Context(), &service.CreateAttendanceInput{
		StudentID: studentID,
		Date:      req.Date,
		Status:    enum.AttendanceStatus(req.Status),
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Attendance recorded successfully", record)
}

// Get handles getting a single attendance record
func (h *AttendanceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid attendance ID")
		return
	}

	record, err := h.attendanceService.GetAttendance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Attendance record retrieved successfully", record)
}

// Update handles updating an attendance record
func (h *AttendanceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid attendance ID")
		return
	}

	var req struct {
		Date   *string `json:"date"`
		Status *string `json:"status"`
		Notes  *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateAttendanceInput{
		ID:    id,
		Date:  req.Date,
		Notes: req.Notes,
	}
	if req.Status != nil {
		status := enum.AttendanceStatus(*req.Status)
		input.Status = &status
	}

	record, err := h.attendanceService.UpdateAttendance(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Attendance record updated successfully", record)
}

// Delete handles deleting an attendance record
func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid attendance ID")
		return
	}

	if err := h.attendanceService.DeleteAttendance(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
