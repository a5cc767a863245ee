// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pictura/internal/platform/apperr"
	"github.com/taibuivan/pictura/internal/users/account"
)

// # Test Doubles

// fakePurgeTx records the call sequence and can be told to fail at any step.
type fakePurgeTx struct {
	calls []string

	failOn      string
	userMissing bool

	committed  bool
	rolledBack bool
}

func (unit *fakePurgeTx) step(name string) error {
	unit.calls = append(unit.calls, name)
	if unit.failOn == name {
		return errors.New("injected failure at " + name)
	}
	return nil
}

func (unit *fakePurgeTx) DeleteOwnedPhotos(_ context.Context, _ string) (int64, error) {
	return 3, unit.step("photos")
}

func (unit *fakePurgeTx) DeleteAuthoredComments(_ context.Context, _ string) (int64, error) {
	return 7, unit.step("comments")
}

func (unit *fakePurgeTx) DeleteActivities(_ context.Context, _ string) (int64, error) {
	return 11, unit.step("activities")
}

func (unit *fakePurgeTx) DeleteUser(_ context.Context, _ string) error {
	if err := unit.step("user"); err != nil {
		return err
	}
	if unit.userMissing {
		return apperr.NotFound("user")
	}
	return nil
}

func (unit *fakePurgeTx) Commit(_ context.Context) error {
	if err := unit.step("commit"); err != nil {
		return err
	}
	unit.committed = true
	return nil
}

func (unit *fakePurgeTx) Rollback(_ context.Context) error {
	if !unit.committed {
		unit.rolledBack = true
	}
	return nil
}

type fakePurgeStore struct {
	unit     *fakePurgeTx
	beginErr error
}

func (store *fakePurgeStore) Begin(_ context.Context) (account.PurgeTx, error) {
	if store.beginErr != nil {
		return nil, store.beginErr
	}
	return store.unit, nil
}

func newService(store *fakePurgeStore) *account.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return account.NewService(store, logger)
}

const userID = "01920000-0000-7000-8000-000000000001"

// # Purge Behaviour

/*
TestService_PurgeUser_Succeeds runs every deletion step in order, commits
and reports the removed row counts.
*/
func TestService_PurgeUser_Succeeds(t *testing.T) {
	unit := &fakePurgeTx{}
	service := newService(&fakePurgeStore{unit: unit})

	report, err := service.PurgeUser(context.Background(), userID, userID)

	require.NoError(t, err)
	assert.Equal(t, []string{"photos", "comments", "activities", "user", "commit"}, unit.calls)
	assert.True(t, unit.committed)
	assert.False(t, unit.rolledBack)

	assert.Equal(t, int64(3), report.PhotosDeleted)
	assert.Equal(t, int64(7), report.CommentsDeleted)
	assert.Equal(t, int64(11), report.ActivitiesDeleted)
}

/*
TestService_PurgeUser_OnlyOwner refuses purging anyone else's account
without touching storage.
*/
func TestService_PurgeUser_OnlyOwner(t *testing.T) {
	unit := &fakePurgeTx{}
	service := newService(&fakePurgeStore{unit: unit})

	_, err := service.PurgeUser(context.Background(), userID, "01920000-0000-7000-8000-000000000002")

	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	assert.Empty(t, unit.calls)
}

/*
TestService_PurgeUser_RollsBackOnFailure injects a failure at every step in
turn and verifies nothing commits.
*/
func TestService_PurgeUser_RollsBackOnFailure(t *testing.T) {
	for _, step := range []string{"photos", "comments", "activities", "user", "commit"} {
		t.Run("fail_at_"+step, func(t *testing.T) {
			unit := &fakePurgeTx{failOn: step}
			service := newService(&fakePurgeStore{unit: unit})

			_, err := service.PurgeUser(context.Background(), userID, userID)

			require.Error(t, err)
			assert.Equal(t, "INTERNAL_ERROR", apperr.As(err).Code)
			assert.False(t, unit.committed)
			assert.True(t, unit.rolledBack)
		})
	}
}

/*
TestService_PurgeUser_UnknownAccount surfaces NotFound and aborts the
transaction.
*/
func TestService_PurgeUser_UnknownAccount(t *testing.T) {
	unit := &fakePurgeTx{userMissing: true}
	service := newService(&fakePurgeStore{unit: unit})

	_, err := service.PurgeUser(context.Background(), userID, userID)

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.False(t, unit.committed)
	assert.True(t, unit.rolledBack)
}
