package service

import (
	"context"
	"strings"
	"time"

	"github.com/davidmro/escolar-api/internal/domain/entity"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/davidmro/escolar-api/internal/domain/repository"
	"github.com/davidmro/escolar-api/pkg/apperror"
	"github.com/davidmro/escolar-api/pkg/pagination"
	"github.com/google/uuid"
)

// InventoryService handles inventory-related operations
type InventoryService struct {
	inventoryRepo     repository.InventoryRepository
	lowStockThreshold int
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository, lowStockThreshold int) *InventoryService {
	return &InventoryService{
		inventoryRepo:     inventoryRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// CreateInventoryItemInput represents the create inventory item input
type CreateInventoryItemInput struct {
	Name         string
	Category     string
	Quantity     int
	Location     *string
	Description  *string
	SerialNumber *string
}

// CreateInventoryItem creates an inventory item. The status is derived from
// the quantity here, at creation time, and is not recomputed by updates.
func (s *InventoryService) CreateInventoryItem(ctx context.Context, input *CreateInventoryItemInput) (*entity.InventoryItem, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Category) == "" {
		return nil, apperror.NewBadRequestError("Name, category and quantity are required")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity must not be negative")
	}

	item := &entity.InventoryItem{
		Name:         input.Name,
		Category:     input.Category,
		Quantity:     input.Quantity,
		Location:     input.Location,
		Status:       enum.DeriveInventoryStatus(input.Quantity, s.lowStockThreshold),
		Description:  input.Description,
		SerialNumber: input.SerialNumber,
		LastUpdated:  time.Now().Format(dateLayout),
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetInventoryItem retrieves an inventory item by ID
func (s *InventoryService) GetInventoryItem(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}
	return item, nil
}

// ListInventory lists inventory items with filtering, sorted by name
func (s *InventoryService) ListInventory(ctx context.Context, params *repository.InventoryFilterParams) (*pagination.PaginatedResult[entity.InventoryItem], error) {
	items, total, err := s.inventoryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// UpdateInventoryItemInput represents the update inventory item input
type UpdateInventoryItemInput struct {
	ID           uuid.UUID
	Name         *string
	Category     *string
	Quantity     *int
	Location     *string
	Status       *enum.InventoryStatus
	Description  *string
	SerialNumber *string
}

// UpdateInventoryItem updates an inventory item. A quantity change does not
// re-derive the status; the client sends an explicit status when it wants
// one. LastUpdated is stamped on every update.
func (s *InventoryService) UpdateInventoryItem(ctx context.Context, input *UpdateInventoryItemInput) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperror.NewBadRequestError("Name must not be empty")
		}
		item.Name = *input.Name
	}
	if input.Category != nil {
		if strings.TrimSpace(*input.Category) == "" {
			return nil, apperror.NewBadRequestError("Category must not be empty")
		}
		item.Category = *input.Category
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, apperror.NewBadRequestError("Quantity must not be negative")
		}
		item.Quantity = *input.Quantity
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid inventory status: " + input.Status.String())
		}
		item.Status = *input.Status
	}
	if input.Location != nil {
		item.Location = input.Location
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.SerialNumber != nil {
		item.SerialNumber = input.SerialNumber
	}

	item.LastUpdated = time.Now().Format(dateLayout)

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteInventoryItem deletes an inventory item
func (s *InventoryService) DeleteInventoryItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Inventory item")
	}
	return s.inventoryRepo.Delete(ctx, id)
}

// GetLowStock returns items that are low on stock or out of stock
func (s *InventoryService) GetLowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.GetLowStock(ctx)
}

// InventoryStats aggregates the inventory by status and by category
type InventoryStats struct {
	StatusStats   []repository.InventoryStatusStat   `json:"status_stats"`
	CategoryStats []repository.InventoryCategoryStat `json:"category_stats"`
}

// GetStats returns inventory statistics
func (s *InventoryService) GetStats(ctx context.Context) (*InventoryStats, error) {
	statusStats, err := s.inventoryRepo.StatusStats(ctx)
	if err != nil {
		return nil, err
	}
	categoryStats, err := s.inventoryRepo.CategoryStats(ctx)
	if err != nil {
		return nil, err
	}
	return &InventoryStats{
		StatusStats:   statusStats,
		CategoryStats: categoryStats,
	}, nil
}
