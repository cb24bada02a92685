package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushq/student-records-backend/internal/config"
	"github.com/campushq/student-records-backend/internal/model"
)

// GroupRepository provides the persistence operations the group service needs.
type GroupRepository interface {
	Create(ctx context.Context, programID int, name string, yearStart int, curatorID *int) (*model.Group, error)
	List(ctx context.Context) ([]model.GroupWithProgram, error)
}

// GroupService handles academic group business logic. When a Redis client is
// present the unfiltered listing is cached and invalidated on every create;
// a nil client disables caching entirely.
type GroupService struct {
	groupRepo GroupRepository
	rdb       *redis.Client
	keys      *config.CacheKeys
	ttl       time.Duration
	log       zerolog.Logger
}

// NewGroupService creates a new GroupService. rdb may be nil.
func NewGroupService(groupRepo GroupRepository, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		rdb:       rdb,
		keys:      config.NewCacheKeys(),
		ttl:       ttl,
		log:       log,
	}
}

// Create creates a new academic group and drops the cached listing.
func (s *GroupService) Create(ctx context.Context, req *model.CreateGroupRequest) (*model.Group, error) {
	g, err := s.groupRepo.Create(ctx, req.ProgramID, req.Name, req.YearStart, req.CuratorInstructorID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return g, nil
}

// List retrieves all groups with program and department names.
func (s *GroupService) List(ctx context.Context) ([]model.GroupWithProgram, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, s.keys.GroupList()).Bytes(); err == nil {
			var cached []model.GroupWithProgram
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(groups); err == nil {
			if err := s.rdb.Set(ctx, s.keys.GroupList(), payload, s.ttl).Err(); err != nil {
				s.log.Debug().Err(err).Msg("group list cache write failed")
			}
		}
	}
	return groups, nil
}

func (s *GroupService) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, s.keys.GroupList()).Err(); err != nil {
		s.log.Debug().Err(err).Msg("group list cache invalidation failed")
	}
}
