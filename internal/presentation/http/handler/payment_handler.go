package handler

import (
	"github.com/davidmro/escolar-api/internal/application/service"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/davidmro/escolar-api/internal/domain/repository"
	"github.com/davidmro/escolar-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// List handles listing payments with filters, most recent date first
func (h *PaymentHandler) List(c *gin.Context) {
	params := &repository.PaymentFilterParams{
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
		status := enum.PaymentStatus(statusStr)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid payment status")
			return
		}
		params.Status = &status
	}
	if methodStr := c.Query("payment_method"); methodStr != "" {
		method := enum.PaymentMethod(methodStr)
		if !method.IsValid() {
			response.BadRequest(c, "Invalid payment method")
			return
		}
		params.PaymentMethod = &method
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}

// Create handles recording a payment. Any receipt number in the body is
// ignored; the server assigns its own when the status is Pagado.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req struct {
		StudentID     string   `json:"student_id" binding:"required"`
		Amount        *float64 `json:"amount" binding:"required"`
		Concept       string   `json:"concept" binding:"required"`
		Status        string   `json:"status"`
		PaymentMethod string   `json:"payment_method"`
		Date          string   `json:"date"`
		ReceiptNumber string   `json:"receipt_number"` // accepted but ignored
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Student, amount and concept are required")
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), &service.CreatePaymentInput{
		StudentID:     studentID,
		Amount:        *req.Amount,
		Concept:       req.Concept,
		Status:        enum.PaymentStatus(req.Status),
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		Date:          req.Date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment registered successfully", payment)
}

// Get handles getting a single payment
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", payment)
}

// Update handles updating a payment
func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	var req struct {
		Amount        *float64 `json:"amount"`
		Concept       *string  `json:"concept"`
		Status        *string  `json:"status"`
		PaymentMethod *string  `json:"payment_method"`
		Date          *string  `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdatePaymentInput{
		ID:      id,
		Amount:  req.Amount,
		Concept: req.Concept,
		Date:    req.Date,
	}
	if req.Status != nil {
		status := enum.PaymentStatus(*req.Status)
		input.Status = &status
	}
	if req.PaymentMethod != nil {
		method := enum.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &method
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment updated successfully", payment)
}

// Delete handles deleting a payment
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Summary handles the range summary grouped by status and method
func (h *PaymentHandler) Summary(c *gin.Context) {
	summary, err := h.paymentService.SummarizePayments(
		c.Request.Context(),
		c.Query("start_date"),
		c.Query("end_date"),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment summary retrieved successfully", summary)
}
