// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feed_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pictura/internal/core/feed"
	"github.com/taibuivan/pictura/internal/platform/constants"
)

// # Test Doubles

type fakeActivityRepo struct {
	created    []*feed.Activity
	createErr  error
	listResult []*feed.Activity
	listErr    error
	listCalls  int
	lastLimit  int
}

func (r *fakeActivityRepo) Create(_ context.Context, activity *feed.Activity) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, activity)
	return nil
}

func (r *fakeActivityRepo) ListRecent(_ context.Context, limit int) ([]*feed.Activity, error) {
	r.listCalls++
	r.lastLimit = limit
	return r.listResult, r.listErr
}

type fakeDirectory struct {
	ids map[string]string
	err error
}

func (d *fakeDirectory) FindIDByUsername(_ context.Context, username string) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	id, ok := d.ids[username]
	if !ok {
		return "", errors.New("no such user")
	}
	return id, nil
}

type fakeCache struct {
	pages       map[int][]*feed.Activity
	invalidated int
	getErr      error
	setErr      error
}

func (c *fakeCache) Get(_ context.Context, limit int) ([]*feed.Activity, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	page, ok := c.pages[limit]
	return page, ok, nil
}

func (c *fakeCache) Set(_ context.Context, limit int, activities []*feed.Activity) error {
	if c.setErr != nil {
		return c.setErr
	}
	if c.pages == nil {
		c.pages = map[int][]*feed.Activity{}
	}
	c.pages[limit] = activities
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context) error {
	c.invalidated++
	c.pages = nil
	return nil
}

func newService(repo *fakeActivityRepo, directory *fakeDirectory, cache feed.RecentFeedCache) *feed.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return feed.NewService(repo, directory, cache, logger)
}

// # Recording

/*
TestService_Record_PersistsResolvedActor verifies that a recorded entry
snapshots the actor's username and carries the resolved account ID.
*/
func TestService_Record_PersistsResolvedActor(t *testing.T) {
	repo := &fakeActivityRepo{}
	directory := &fakeDirectory{ids: map[string]string{"took": "user-1"}}
	cache := &fakeCache{}
	service := newService(repo, directory, cache)

	service.Record(context.Background(), "took", feed.ActivityLogin, nil)

	require.Len(t, repo.created, 1)
	entry := repo.created[0]
	assert.Equal(t, "user-1", entry.UserID)
	assert.Equal(t, "took", entry.Username)
	assert.Equal(t, feed.ActivityLogin, entry.Type)
	assert.Nil(t, entry.Info)
	assert.Len(t, entry.ID, 36)
	assert.False(t, entry.CreatedAt.IsZero())

	// A successful write must invalidate the cached feed pages
	assert.Equal(t, 1, cache.invalidated)
}

/*
TestService_Record_SkipsUnknownActor ensures an unresolvable username is
swallowed without writing anything.
*/
func TestService_Record_SkipsUnknownActor(t *testing.T) {
	repo := &fakeActivityRepo{}
	directory := &fakeDirectory{ids: map[string]string{}}
	service := newService(repo, directory, nil)

	service.Record(context.Background(), "ghost", feed.ActivityLogin, nil)

	assert.Empty(t, repo.created)
}

/*
TestService_Record_RejectsMismatchedPayload covers the shape rules: session
events carry no payload, content events must name a photo.
*/
func TestService_Record_RejectsMismatchedPayload(t *testing.T) {
	tests := []struct {
		name         string
		activityType feed.ActivityType
		info         *feed.ActivityInfo
	}{
		{"login_with_payload", feed.ActivityLogin, feed.NewPhotoInfo("p1")},
		{"new_photo_without_payload", feed.ActivityNewPhoto, nil},
		{"new_photo_with_comment", feed.ActivityNewPhoto, feed.NewCommentInfo("p1", "nice")},
		{"new_comment_without_text", feed.ActivityNewComment, feed.NewPhotoInfo("p1")},
		{"unknown_type", feed.ActivityType("teleport"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeActivityRepo{}
			directory := &fakeDirectory{ids: map[string]string{"took": "user-1"}}
			service := newService(repo, directory, nil)

			service.Record(context.Background(), "took", tt.activityType, tt.info)

			assert.Empty(t, repo.created)
		})
	}
}

/*
TestService_Record_SwallowsStorageFailure ensures a failed insert never
propagates and never invalidates the cache.
*/
func TestService_Record_SwallowsStorageFailure(t *testing.T) {
	repo := &fakeActivityRepo{createErr: errors.New("connection reset")}
	directory := &fakeDirectory{ids: map[string]string{"took": "user-1"}}
	cache := &fakeCache{}
	service := newService(repo, directory, cache)

	service.Record(context.Background(), "took", feed.ActivityNewPhoto, feed.NewPhotoInfo("p1"))

	assert.Empty(t, repo.created)
	assert.Equal(t, 0, cache.invalidated)
}

// # Retrieval

/*
TestService_ListRecent_ClampsLimit checks the default and upper bounds for
the requested page size.
*/
func TestService_ListRecent_ClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		effective int
	}{
		{"zero_uses_default", 0, constants.DefaultFeedLimit},
		{"negative_uses_default", -3, constants.DefaultFeedLimit},
		{"excessive_is_capped", 10_000, constants.MaxFeedLimit},
		{"in_range_passes_through", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeActivityRepo{}
			service := newService(repo, &fakeDirectory{}, nil)

			_, err := service.ListRecent(context.Background(), tt.requested)

			require.NoError(t, err)
			assert.Equal(t, tt.effective, repo.lastLimit)
		})
	}
}

/*
TestService_ListRecent_ServesFromCache verifies a cache hit never touches
the database.
*/
func TestService_ListRecent_ServesFromCache(t *testing.T) {
	cached := []*feed.Activity{{ID: "a1", Username: "took", Type: feed.ActivityLogin}}
	repo := &fakeActivityRepo{}
	cache := &fakeCache{pages: map[int][]*feed.Activity{5: cached}}
	service := newService(repo, &fakeDirectory{}, cache)

	activities, err := service.ListRecent(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, cached, activities)
	assert.Equal(t, 0, repo.listCalls)
}

/*
TestService_ListRecent_FallsBackOnCacheMiss verifies a miss reads the
database and repopulates the cache.
*/
func TestService_ListRecent_FallsBackOnCacheMiss(t *testing.T) {
	fromDB := []*feed.Activity{{ID: "a2", Username: "took", Type: feed.ActivityNewPhoto}}
	repo := &fakeActivityRepo{listResult: fromDB}
	cache := &fakeCache{}
	service := newService(repo, &fakeDirectory{}, cache)

	activities, err := service.ListRecent(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, fromDB, activities)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, fromDB, cache.pages[5])
}

/*
TestService_ListRecent_DegradesWhenCacheFails verifies a cache backend error
falls back to the database instead of failing the request.
*/
func TestService_ListRecent_DegradesWhenCacheFails(t *testing.T) {
	fromDB := []*feed.Activity{{ID: "a3"}}
	repo := &fakeActivityRepo{listResult: fromDB}
	cache := &fakeCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	service := newService(repo, &fakeDirectory{}, cache)

	activities, err := service.ListRecent(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, fromDB, activities)
}
