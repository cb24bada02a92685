package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/student-records-backend/internal/model"
)

type stubGroupRepo struct {
	listCalls   int
	createCalls int
	groups      []model.GroupWithProgram
}

func (r *stubGroupRepo) Create(_ context.Context, _ int, name string, yearStart int, _ *int) (*model.Group, error) {
	r.createCalls++
	return &model.Group{ID: 1, Name: name, YearStart: yearStart}, nil
}

func (r *stubGroupRepo) List(_ context.Context) ([]model.GroupWithProgram, error) {
	r.listCalls++
	return r.groups, nil
}

func newCacheBackedGroupService(t *testing.T, repo GroupRepository) (*GroupService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewGroupService(repo, rdb, time.Minute, zerolog.Nop()), mr
}

func TestGroupListCachesSecondRead(t *testing.T) {
	repo := &stubGroupRepo{groups: []model.GroupWithProgram{{ID: 1, Name: "CS-101", ProgramName: "Computer Science"}}}
	svc, _ := newCacheBackedGroupService(t, repo)
	ctx := context.Background()

	first, err := svc.List(ctx)
	require.NoError(t, err)
	second, err := svc.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls, "second read must be served from cache")
}

func TestGroupCreateInvalidatesListCache(t *testing.T) {
	repo := &stubGroupRepo{groups: []model.GroupWithProgram{{ID: 1, Name: "CS-101"}}}
	svc, mr := newCacheBackedGroupService(t, repo)
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists("view:groups"))

	_, err = svc.Create(ctx, &model.CreateGroupRequest{ProgramID: 1, Name: "CS-102", YearStart: 2024})
	require.NoError(t, err)

	assert.False(t, mr.Exists("view:groups"), "create must drop the cached listing")

	_, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestGroupServiceWorksWithoutRedis(t *testing.T) {
	repo := &stubGroupRepo{}
	svc := NewGroupService(repo, nil, 0, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.CreateGroupRequest{ProgramID: 1, Name: "SE-201", YearStart: 2023})
	require.NoError(t, err)

	_, err = svc.List(ctx)
	require.NoError(t, err)
	_, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}
