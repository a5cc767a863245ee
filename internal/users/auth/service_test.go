// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pictura/internal/core/feed"
	"github.com/taibuivan/pictura/internal/platform/apperr"
	"github.com/taibuivan/pictura/internal/platform/sec"
	"github.com/taibuivan/pictura/internal/users/auth"
)

// # Test Doubles

type fakeUserRepo struct {
	byUsername map[string]*auth.User
	byID       map[string]*auth.User
	created    []*auth.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]*auth.User{}, byID: map[string]*auth.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *auth.User) error {
	if _, taken := r.byUsername[user.Username]; taken {
		return apperr.Conflict("Username is already taken")
	}
	user.CreatedAt = time.Now()
	r.byUsername[user.Username] = user
	r.byID[user.ID] = user
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	user, ok := r.byUsername[username]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	return user, nil
}

func (r *fakeUserRepo) List(_ context.Context, limit, offset int) ([]*auth.User, int, error) {
	var users []*auth.User
	for _, user := range r.byID {
		users = append(users, user)
	}

	total := len(users)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return users[offset:end], total, nil
}

type fakeSessionRepo struct {
	byHash  map[string]*auth.Session
	revoked []string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byHash: map[string]*auth.Session{}}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *auth.Session) error {
	r.byHash[session.TokenHash] = session
	return nil
}

func (r *fakeSessionRepo) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	session, ok := r.byHash[tokenHash]
	if !ok || session.IsRevoked {
		return nil, apperr.NotFound("session")
	}
	return session, nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, sessionID string) error {
	r.revoked = append(r.revoked, sessionID)
	for _, session := range r.byHash {
		if session.ID == sessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeSessionRepo) RevokeAll(_ context.Context, userID string) error {
	for _, session := range r.byHash {
		if session.UserID == userID {
			session.IsRevoked = true
		}
	}
	return nil
}

type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, username string, _ time.Duration) (string, error) {
	return "jwt-" + userID + "-" + username, nil
}

type recorded struct {
	username     string
	activityType feed.ActivityType
}

type fakeRecorder struct {
	entries []recorded
}

func (r *fakeRecorder) Record(_ context.Context, username string, activityType feed.ActivityType, _ *feed.ActivityInfo) {
	r.entries = append(r.entries, recorded{username, activityType})
}

func newService(users *fakeUserRepo, sessions *fakeSessionRepo, recorder *fakeRecorder) *auth.Service {
	return auth.NewService(users, sessions, fakeTokenProvider{}, recorder)
}

// # Registration

/*
TestService_Register hashes the password, persists the account and records
a register feed entry.
*/
func TestService_Register(t *testing.T) {
	users := newFakeUserRepo()
	recorder := &fakeRecorder{}
	service := newService(users, newFakeSessionRepo(), recorder)

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Username:    "took",
		Password:    "correct horse battery",
		DisplayName: "Took",
		Location:    "Osaka",
	})

	require.NoError(t, err)
	assert.Len(t, user.ID, 36)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct horse battery", user.PasswordHash))

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, feed.ActivityRegister, recorder.entries[0].activityType)
	assert.Equal(t, "took", recorder.entries[0].username)
}

/*
TestService_Register_DuplicateUsername surfaces a Conflict and records no
feed entry.
*/
func TestService_Register_DuplicateUsername(t *testing.T) {
	users := newFakeUserRepo()
	users.byUsername["took"] = &auth.User{ID: "u1", Username: "took"}
	recorder := &fakeRecorder{}
	service := newService(users, newFakeSessionRepo(), recorder)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "took",
		Password: "whatever-password",
	})

	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Empty(t, recorder.entries)
}

// # Authentication

func registerUser(t *testing.T, service *auth.Service, username, password string) *auth.User {
	t.Helper()
	user, err := service.Register(context.Background(), auth.RegisterInput{
		Username:    username,
		Password:    password,
		DisplayName: username,
	})
	require.NoError(t, err)
	return user
}

/*
TestService_Login issues tokens, persists a hashed session and records a
login feed entry.
*/
func TestService_Login(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	recorder := &fakeRecorder{}
	service := newService(users, sessions, recorder)
	registerUser(t, service, "took", "correct horse battery")

	session, err := service.Login(context.Background(), auth.LoginInput{
		Login:    "took",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)

	// The raw refresh token must never be stored, only its hash
	_, rawStored := sessions.byHash[session.RefreshToken]
	assert.False(t, rawStored)
	_, hashStored := sessions.byHash[sec.HashToken(session.RefreshToken)]
	assert.True(t, hashStored)

	// register + login
	require.Len(t, recorder.entries, 2)
	assert.Equal(t, feed.ActivityLogin, recorder.entries[1].activityType)
}

/*
TestService_Login_InvalidCredentials uses one generic Unauthorized for both
unknown users and wrong passwords.
*/
func TestService_Login_InvalidCredentials(t *testing.T) {
	users := newFakeUserRepo()
	recorder := &fakeRecorder{}
	service := newService(users, newFakeSessionRepo(), recorder)
	registerUser(t, service, "took", "correct horse battery")
	recorder.entries = nil

	for _, input := range []auth.LoginInput{
		{Login: "nobody", Password: "correct horse battery"},
		{Login: "took", Password: "wrong password"},
	} {
		_, err := service.Login(context.Background(), input)
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	}

	// Failed logins never reach the feed
	assert.Empty(t, recorder.entries)
}

/*
TestService_Logout revokes the session, stays idempotent for unknown tokens
and records a logout feed entry either way.
*/
func TestService_Logout(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	recorder := &fakeRecorder{}
	service := newService(users, sessions, recorder)
	registerUser(t, service, "took", "correct horse battery")

	session, err := service.Login(context.Background(), auth.LoginInput{Login: "took", Password: "correct horse battery"})
	require.NoError(t, err)
	recorder.entries = nil

	// First logout revokes
	require.NoError(t, service.Logout(context.Background(), session.RefreshToken, "took"))
	assert.Len(t, sessions.revoked, 1)

	// Second logout with the same token is a no-op that still succeeds
	require.NoError(t, service.Logout(context.Background(), session.RefreshToken, "took"))
	assert.Len(t, sessions.revoked, 1)

	require.Len(t, recorder.entries, 2)
	assert.Equal(t, feed.ActivityLogout, recorder.entries[0].activityType)
	assert.Equal(t, feed.ActivityLogout, recorder.entries[1].activityType)
}

// # Session Rotation

/*
TestService_RefreshSession rotates the refresh token and revokes the old
session so it cannot be replayed.
*/
func TestService_RefreshSession(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	service := newService(users, sessions, &fakeRecorder{})
	registerUser(t, service, "took", "correct horse battery")

	session, err := service.Login(context.Background(), auth.LoginInput{Login: "took", Password: "correct horse battery"})
	require.NoError(t, err)

	rotated, err := service.RefreshSession(context.Background(), session.RefreshToken, "agent", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// The old token is dead after rotation
	_, err = service.RefreshSession(context.Background(), session.RefreshToken, "agent", "127.0.0.1")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	// The new token still works
	_, err = service.RefreshSession(context.Background(), rotated.RefreshToken, "agent", "127.0.0.1")
	assert.NoError(t, err)
}
