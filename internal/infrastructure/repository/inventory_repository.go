package repository

import (
	"context"
	"errors"

	"github.com/davidmro/escolar-api/internal/domain/entity"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	domainRepo "github.com/davidmro/escolar-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventoryRepository) List(ctx context.Context, params *domainRepo.InventoryFilterParams) ([]entity.InventoryItem, int64, error) {
	var items []entity.InventoryItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InventoryItem{})

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Location != "" {
		query = query.Where("location = ?", params.Location)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&items).Error

	return items, total, err
}

func (r *inventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InventoryItem{}, "id = ?", id).Error
}

func (r *inventoryRepository) GetLowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).
		Where("status IN ?", []enum.InventoryStatus{enum.InventoryStatusLowStock, enum.InventoryStatusOutOfStock}).
		Order("quantity ASC").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepository) StatusStats(ctx context.Context) ([]domainRepo.InventoryStatusStat, error) {
	var stats []domainRepo.InventoryStatusStat
	err := r.db.WithContext(ctx).Model(&entity.InventoryItem{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(quantity), 0) AS total_items").
		Group("status").
		Order("status").
		Scan(&stats).Error
	return stats, err
}

func (r *inventoryRepository) CategoryStats(ctx context.Context) ([]domainRepo.InventoryCategoryStat, error) {
	var stats []domainRepo.InventoryCategoryStat
	err := r.db.WithContext(ctx).Model(&entity.InventoryItem{}).
		Select("category, COUNT(*) AS count, COALESCE(SUM(quantity), 0) AS total_items").
		Group("category").
		Order("category").
		Scan(&stats).Error
	return stats, err
}
