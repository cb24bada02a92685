package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushq/student-records-backend/internal/config"
	"github.com/campushq/student-records-backend/internal/model"
)

// StudentRepository provides the persistence operations the student service needs.
type StudentRepository interface {
	Create(ctx context.Context, groupID int, firstName, lastName, email string, enrollmentYear int, status model.StudentStatus) (*model.Student, error)
	List(ctx context.Context) ([]model.StudentWithGroup, error)
}

// StudentService handles student business logic.
type StudentService struct {
	studentRepo StudentRepository
	rdb         *redis.Client
	keys        *config.CacheKeys
	ttl         time.Duration
	log         zerolog.Logger
}

// NewStudentService creates a new StudentService. rdb may be nil.
func NewStudentService(studentRepo StudentRepository, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		rdb:         rdb,
		keys:        config.NewCacheKeys(),
		ttl:         ttl,
		log:         log,
	}
}

// Create creates a new student. An unrecognized status is rejected here,
// before any storage access; an omitted status defaults to active.
func (s *StudentService) Create(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	status := req.Status
	if status == "" {
		status = model.StatusActive
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	st, err := s.studentRepo.Create(ctx, req.GroupID, req.FirstName, req.LastName, req.Email, req.EnrollmentYear, status)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return st, nil
}

// List retrieves all students with their group names.
func (s *StudentService) List(ctx context.Context) ([]model.StudentWithGroup, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, s.keys.StudentList()).Bytes(); err == nil {
			var cached []model.StudentWithGroup
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(students); err == nil {
			if err := s.rdb.Set(ctx, s.keys.StudentList(), payload, s.ttl).Err(); err != nil {
				s.log.Debug().Err(err).Msg("student list cache write failed")
			}
		}
	}
	return students, nil
}

func (s *StudentService) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, s.keys.StudentList()).Err(); err != nil {
		s.log.Debug().Err(err).Msg("student list cache invalidation failed")
	}
}
