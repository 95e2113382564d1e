package handler

import (
	"github.com/davidmro/escolar-api/internal/application/service"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/davidmro/escolar-api/internal/domain/repository"
	"github.com/davidmro/escolar-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StudentHandler handles student-related HTTP requests
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// List handles listing students with pagination and filters
func (h *StudentHandler) List(c *gin.Context) {
	params := &repository.StudentFilterParams{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
		Grade:      c.Query("grade"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.StudentStatus(statusStr)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid student status")
			return
		}
		params.Status = &status
	}

	result, err := h.studentService.ListStudents(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Students retrieved successfully", result)
}

// Create handles creating a student
func (h *StudentHandler) Create(c *gin.Context) {
	var req struct {
		Name           string  `json:"name" binding:"required"`
		Email          *string `json:"email"`
		Phone          *string `json:"phone"`
		Grade          string  `json:"grade" binding:"required"`
		Status         string  `json:"status"`
		AvatarURL      *string `json:"avatar_url"`
		EnrollmentDate string  `json:"enrollment_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name and grade are required")
		return
	}

	student, err := h.studentService.CreateStudent(c.Request.Context(), &service.CreateStudentInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Grade:          req.Grade,
		Status:         enum.StudentStatus(req.Status),
		AvatarURL:      req.AvatarURL,
		EnrollmentDate: req.EnrollmentDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Student created successfully", student)
}

// Get handles getting a single student
func (h *StudentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	student, err := h.studentService.GetStudent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Student retrieved successfully", student)
}

// Update handles updating a student
func (h *StudentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	var req struct {
		Name           *string `json:"name"`
		Email          *string `json:"email"`
		Phone          *string `json:"phone"`
		Grade          *string `json:"grade"`
		Status         *string `json:"status"`
		AvatarURL      *string `json:"avatar_url"`
		EnrollmentDate *string `json:"enrollment_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateStudentInput{
		ID:             id,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Grade:          req.Grade,
		AvatarURL:      req.AvatarURL,
		EnrollmentDate: req.EnrollmentDate,
	}
	if req.Status != nil {
		status := enum.StudentStatus(*req.Status)
		input.Status = &status
	}

	student, err := h.studentService.UpdateStudent(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Student updated successfully", student)
}

// Delete handles deleting a student
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	if err := h.studentService.DeleteStudent(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
