package repository

import (
	"context"

	"github.com/davidmro/escolar-api/internal/domain/entity"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/davidmro/escolar-api/pkg/pagination"
	"github.com/google/uuid"
)

// InventoryRepository defines the interface for inventory data operations
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	List(ctx context.Context, params *InventoryFilterParams) ([]entity.InventoryItem, int64, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetLowStock(ctx context.Context) ([]entity.InventoryItem, error)
	StatusStats(ctx context.Context) ([]InventoryStatusStat, error)
	CategoryStats(ctx context.Context) ([]InventoryCategoryStat, error)
}

// InventoryFilterParams contains filtering parameters for inventory queries
type InventoryFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	Status     *enum.InventoryStatus
	Location   string
}

// InventoryStatusStat is the per-status aggregation bucket
type InventoryStatusStat struct {
	Status     enum.InventoryStatus `json:"status"`
	Count      int64                `json:"count"`
	TotalItems int64                `json:"total_items"`
}

// InventoryCategoryStat is the per-category aggregation bucket
type InventoryCategoryStat struct {
	Category   string `json:"category"`
	Count      int64  `json:"count"`
	TotalItems int64  `json:"total_items"`
}
