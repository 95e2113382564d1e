package service

import (
	"context"
	"testing"

	"github.com/davidmro/escolar-api/internal/domain/entity"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/davidmro/escolar-api/internal/domain/repository"
	"github.com/google/uuid"
)

type stubAttendanceRepo struct {
	byStudentAndDate *entity.Attendance
	byID             *entity.Attendance
	created          []*entity.Attendance
	updated          *entity.Attendance
	countTotal       int64
	countPresent     int64
}

func (s *stubAttendanceRepo) Create(ctx context.Context, record *entity.Attendance) error {
	s.created = append(s.created, record)
	return nil
}

func (s *stubAttendanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Attendance, error) {
	return s.byID, nil
}

func (s *stubAttendanceRepo) GetByStudentAndDate(ctx context.Context, studentID uuid.UUID, date string) (*entity.Attendance, error) {
	return s.byStudentAndDate, nil
}

func (s *stubAttendanceRepo) List(ctx context.Context, params *repository.AttendanceFilterParams) ([]entity.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) Update(ctx context.Context, record *entity.Attendance) error {
	s.updated = record
	return nil
}

func (s *stubAttendanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubAttendanceRepo) CountByDateAndStatus(ctx context.Context, date string, status enum.AttendanceStatus) (int64, error) {
	return s.countPresent, nil
}

func (s *stubAttendanceRepo) CountByDate(ctx context.Context, date string) (int64, error) {
	return s.countTotal, nil
}

func TestCreateAttendance_RecordsPresence(t *testing.T) {
	repo := &stubAttendanceRepo{}
	svc := NewAttendanceService(repo, &stubStudentRepo{student: enrolledStudent()})

	record, err := svc.CreateAttendance(context.Background(), &CreateAttendanceInput{
		StudentID: uuid.New(),
		Date:      "2024-04-15",
		Status:    enum.AttendanceStatusPresent,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Status != enum.AttendanceStatusPresent {
		t.Fatalf("expected Presente, got %s", record.Status)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
}

func TestCreateAttendance_RejectsSecondRecordForSameDay(t *testing.T) {
	studentID := uuid.New()
	repo := &stubAttendanceRepo{
		byStudentAndDate: &entity.Attendance{
			ID:        uuid.New(),
			StudentID: studentID,
			Date:      "2024-04-15",
			Status:    enum.AttendanceStatusPresent,
		},
	}
	svc := NewAttendanceService(repo, &stubStudentRepo{student: enrolledStudent()})

	_, err := svc.CreateAttendance(context.Background(), &CreateAttendanceInput{
		StudentID: studentID,
		Date:      "2024-04-15",
		Status:    enum.AttendanceStatusLate,
	})
	if err == nil {
		t.Fatalf("expected error for duplicate attendance record")
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no insert for duplicate record")
	}
}

func TestCreateAttendance_RejectsUnknownStatus(t *testing.T) {
	repo := &stubAttendanceRepo{}
	svc := NewAttendanceService(repo, &stubStudentRepo{student: enrolledStudent()})

	_, err := svc.CreateAttendance(context.Background(), &CreateAttendanceInput{
		StudentID: uuid.New(),
		Date:      "2024-04-15",
		Status:    "Justificado",
	})
	if err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestCreateAttendance_RejectsUnknownStudent(t *testing.T) {
	repo := &stubAttendanceRepo{}
	svc := NewAttendanceService(repo, &stubStudentRepo{})

	_, err := svc.CreateAttendance(context.Background(), &CreateAttendanceInput{
		StudentID: uuid.New(),
		Date:      "2024-04-15",
		Status:    enum.AttendanceStatusPresent,
	})
	if err == nil {
		t.Fatalf("expected error for unknown student")
	}
}

func TestUpdateAttendance_RejectsMoveOntoOccupiedDate(t *testing.T) {
	studentID := uuid.New()
	repo := &stubAttendanceRepo{
		byID: &entity.Attendance{
			ID:        uuid.New(),
			StudentID: studentID,
			Date:      "2024-04-15",
			Status:    enum.AttendanceStatusPresent,
		},
		byStudentAndDate: &entity.Attendance{
			ID:        uuid.New(),
			StudentID: studentID,
			Date:      "2024-04-16",
			Status:    enum.AttendanceStatusAbsent,
		},
	}
	svc := NewAttendanceService(repo, &stubStudentRepo{student: enrolledStudent()})

	newDate := "2024-04-16"
	_, err := svc.UpdateAttendance(context.Background(), &UpdateAttendanceInput{
		ID:   repo.byID.ID,
		Date: &newDate,
	})
	if err == nil {
		t.Fatalf("expected error when moving onto an occupied date")
	}
}

func TestUpdateAttendance_ChangesStatus(t *testing.T) {
	repo := &stubAttendanceRepo{
		byID: &entity.Attendance{
			ID:        uuid.New(),
			StudentID: uuid.New(),
			Date:      "2024-04-15",
			Status:    enum.AttendanceStatusAbsent,
		},
	}
	svc := NewAttendanceService(repo, &stubStudentRepo{student: enrolledStudent()})

	late := enum.AttendanceStatusLate
	record, err := svc.UpdateAttendance(context.Background(), &UpdateAttendanceInput{
		ID:     repo.byID.ID,
		Status: &late,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Status != enum.AttendanceStatusLate {
		t.Fatalf("expected Retardo, got %s", record.Status)
	}
	if repo.updated == nil {
		t.Fatalf("expected the record to be persisted")
	}
}
