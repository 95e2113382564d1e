package handler

import (
	"github.com/davidmro/escolar-api/internal/application/service"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/davidmro/escolar-api/internal/domain/repository"
	"github.com/davidmro/escolar-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InventoryHandler handles inventory-related HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List handles listing inventory items with pagination and filters
func (h *InventoryHandler) List(c *gin.Context) {
	params := &repository.InventoryFilterParams{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		Location:   c.Query("location"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.InventoryStatus(statusStr)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid inventory status")
			return
		}
		params.Status = &status
	}

	result, err := h.inventoryService.ListInventory(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Inventory items retrieved successfully", result)
}

// Create handles creating an inventory item. The status is derived from the
// quantity; any status in the body is ignored.
func (h *InventoryHandler) Create(c *gin.Context) {
	var req struct {
		Name         string  `json:"name" binding:"required"`
		Category     string  `json:"category" binding:"required"`
		Quantity     *int    `json:"quantity" binding:"required"`
		Location     *string `json:"location"`
		Description  *string `json:"description"`
		SerialNumber *string `json:"serial_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name, category and quantity are required")
		return
	}

	item, err := h.inventoryService.CreateInventoryItem(c.Request.Context(), &service.CreateInventoryItemInput{
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     *req.Quantity,
		Location:     req.Location,
		Description:  req.Description,
		SerialNumber: req.SerialNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory item created successfully", item)
}

// Get handles getting a single inventory item
func (h *InventoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inventory item ID")
		return
	}

	item, err := h.inventoryService.GetInventoryItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item retrieved successfully", item)
}

// Update handles updating an inventory item
func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inventory item ID")
		return
	}

	var req struct {
		Name         *string `json:"name"`
		Category     *string `json:"category"`
		Quantity     *int    `json:"quantity"`
		Location     *string `json:"location"`
		Status       *string `json:"status"`
		Description  *string `json:"description"`
		SerialNumber *string `json:"serial_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateInventoryItemInput{
		ID:           id,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Location:     req.Location,
		Description:  req.Description,
		SerialNumber: req.SerialNumber,
	}
	if req.Status != nil {
		status := enum.InventoryStatus(*req.Status)
		input.Status = &status
	}

	item, err := h.inventoryService.UpdateInventoryItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item updated successfully", item)
}

// Delete handles deleting an inventory item
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inventory item ID")
		return
	}

	if err := h.inventoryService.DeleteInventoryItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// LowStock handles listing items at or below the low stock threshold
func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.inventoryService.GetLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved successfully", items)
}

// Stats handles the inventory aggregation by status and category
func (h *InventoryHandler) Stats(c *gin.Context) {
	stats, err := h.inventoryService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory stats retrieved successfully", stats)
}
