package service

import (
	"context"
	"time"

	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/davidmro/escolar-api/internal/domain/repository"
)

// DashboardService provides the aggregated numbers shown on the overview page
type DashboardService struct {
	studentRepo    repository.StudentRepository
	attendanceRepo repository.AttendanceRepository
	paymentRepo    repository.PaymentRepository
	inventoryRepo  repository.InventoryRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	studentRepo repository.StudentRepository,
	attendanceRepo repository.AttendanceRepository,
	paymentRepo repository.PaymentRepository,
	inventoryRepo repository.InventoryRepository,
) *DashboardService {
	return &DashboardService{
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
		inventoryRepo:  inventoryRepo,
	}
}

// DashboardStats represents the dashboard overview numbers
type DashboardStats struct {
	TotalStudents        int64   `json:"total_students"`
	AttendanceRateToday  float64 `json:"attendance_rate_today"`
	MonthlyRevenue       float64 `json:"monthly_revenue"`
	MonthlyPaymentsCount int64   `json:"monthly_payments_count"`
	AvailableItems       int64   `json:"available_items"`
	LowStockCount        int64   `json:"low_stock_count"`
}

// GetDashboardStats returns the overview statistics: student count, today's
// attendance rate, revenue of the current calendar month (paid payments
// only) and inventory availability.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	total, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalStudents = total

	today := time.Now().Format(dateLayout)
	attendanceTotal, err := s.attendanceRepo.CountByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	if attendanceTotal > 0 {
		present, err := s.attendanceRepo.CountByDateAndStatus(ctx, today, enum.AttendanceStatusPresent)
		if err != nil {
			return nil, err
		}
		stats.AttendanceRateToday = float64(present) / float64(attendanceTotal) * 100
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	revenueCents, count, err := s.paymentRepo.SumPaidByDateRange(ctx, startOfMonth.Format(dateLayout), now.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	stats.MonthlyRevenue = float64(revenueCents) / 100
	stats.MonthlyPaymentsCount = count

	statusStats, err := s.inventoryRepo.StatusStats(ctx)
	if err != nil {
		return nil, err
	}
	for _, st := range statusStats {
		switch st.Status {
		case enum.InventoryStatusAvailable:
			stats.AvailableItems = st.Count
		case enum.InventoryStatusLowStock, enum.InventoryStatusOutOfStock:
			stats.LowStockCount += st.Count
		}
	}

	return stats, nil
}
