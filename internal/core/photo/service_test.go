// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package photo_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pictura/internal/core/feed"
	"github.com/taibuivan/pictura/internal/core/photo"
	"github.com/taibuivan/pictura/internal/platform/apperr"
)

// # Test Doubles

type fakePhotoRepo struct {
	photos   map[string]*photo.Photo
	comments map[string]*photo.Comment

	createdPhotos   []*photo.Photo
	createdComments []*photo.Comment
	deletedPhotos   []string
	deletedComments []string

	mostRecent    *photo.Photo
	mostCommented *photo.Photo
	commentCount  int
	mentioned     []*photo.MentionedPhoto

	err error
}

func newFakeRepo() *fakePhotoRepo {
	return &fakePhotoRepo{
		photos:   map[string]*photo.Photo{},
		comments: map[string]*photo.Comment{},
	}
}

func (r *fakePhotoRepo) Create(_ context.Context, p *photo.Photo) error {
	if r.err != nil {
		return r.err
	}
	r.createdPhotos = append(r.createdPhotos, p)
	r.photos[p.ID] = p
	return nil
}

func (r *fakePhotoRepo) FindByID(_ context.Context, id string) (*photo.Photo, error) {
	p, ok := r.photos[id]
	if !ok {
		return nil, apperr.NotFound("photo")
	}
	return p, nil
}

func (r *fakePhotoRepo) SoftDelete(_ context.Context, id string) error {
	r.deletedPhotos = append(r.deletedPhotos, id)
	return nil
}

func (r *fakePhotoRepo) ListByUser(_ context.Context, _ string) ([]*photo.Photo, error) {
	return nil, r.err
}

func (r *fakePhotoRepo) CreateComment(_ context.Context, c *photo.Comment) error {
	if r.err != nil {
		return r.err
	}
	r.createdComments = append(r.createdComments, c)
	r.comments[c.ID] = c
	return nil
}

func (r *fakePhotoRepo) FindCommentByID(_ context.Context, id string) (*photo.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, apperr.NotFound("comment")
	}
	return c, nil
}

func (r *fakePhotoRepo) SoftDeleteComment(_ context.Context, id string) error {
	r.deletedComments = append(r.deletedComments, id)
	return nil
}

func (r *fakePhotoRepo) MostRecent(_ context.Context, _ string) (*photo.Photo, error) {
	if r.mostRecent == nil {
		return nil, apperr.NotFound("photo")
	}
	return r.mostRecent, nil
}

func (r *fakePhotoRepo) MostCommented(_ context.Context, _ string) (*photo.Photo, int, error) {
	if r.mostCommented == nil {
		return nil, 0, apperr.NotFound("photo")
	}
	return r.mostCommented, r.commentCount, nil
}

func (r *fakePhotoRepo) ListMentioned(_ context.Context, _ string) ([]*photo.MentionedPhoto, error) {
	return r.mentioned, r.err
}

type recordedActivity struct {
	username     string
	activityType feed.ActivityType
	info         *feed.ActivityInfo
}

type fakeRecorder struct {
	recorded []recordedActivity
}

func (r *fakeRecorder) Record(_ context.Context, username string, activityType feed.ActivityType, info *feed.ActivityInfo) {
	r.recorded = append(r.recorded, recordedActivity{username, activityType, info})
}

func newService(repo *fakePhotoRepo, recorder *fakeRecorder) *photo.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return photo.NewService(repo, recorder, logger)
}

const (
	ownerID  = "01920000-0000-7000-8000-000000000001"
	otherID  = "01920000-0000-7000-8000-000000000002"
	photoID  = "01920000-0000-7000-8000-00000000000a"
	hiddenID = "01920000-0000-7000-8000-00000000000b"
)

// # Photo Lifecycle

/*
TestService_CreatePhoto assigns identity, persists and publishes a
new_photo feed entry.
*/
func TestService_CreatePhoto(t *testing.T) {
	repo := newFakeRepo()
	recorder := &fakeRecorder{}
	service := newService(repo, recorder)

	created, err := service.CreatePhoto(context.Background(), photo.CreatePhotoInput{
		UserID:   ownerID,
		Username: "took",
		FileName: "photos/abc/pic.jpg",
	})

	require.NoError(t, err)
	assert.Len(t, created.ID, 36)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, ownerID, created.UserID)
	require.Len(t, repo.createdPhotos, 1)

	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, feed.ActivityNewPhoto, recorder.recorded[0].activityType)
	assert.Equal(t, created.ID, recorder.recorded[0].info.PhotoID)
}

/*
TestService_CreatePhoto_RequiresFileName rejects a missing storage key.
*/
func TestService_CreatePhoto_RequiresFileName(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeRecorder{})

	_, err := service.CreatePhoto(context.Background(), photo.CreatePhotoInput{
		UserID:   ownerID,
		Username: "took",
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Empty(t, repo.createdPhotos)
}

/*
TestService_SoftDeletePhoto covers ownership enforcement and the
absent-or-hidden cases.
*/
func TestService_SoftDeletePhoto(t *testing.T) {
	repo := newFakeRepo()
	repo.photos[photoID] = &photo.Photo{ID: photoID, UserID: ownerID}
	repo.photos[hiddenID] = &photo.Photo{ID: hiddenID, UserID: ownerID, IsDelete: true}
	service := newService(repo, &fakeRecorder{})

	t.Run("owner_can_delete", func(t *testing.T) {
		err := service.SoftDeletePhoto(context.Background(), photoID, ownerID)
		require.NoError(t, err)
		assert.Contains(t, repo.deletedPhotos, photoID)
	})

	t.Run("non_owner_is_forbidden", func(t *testing.T) {
		err := service.SoftDeletePhoto(context.Background(), photoID, otherID)
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})

	t.Run("already_deleted_reads_as_absent", func(t *testing.T) {
		err := service.SoftDeletePhoto(context.Background(), hiddenID, ownerID)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("unknown_photo", func(t *testing.T) {
		err := service.SoftDeletePhoto(context.Background(), "01920000-0000-7000-8000-0000000000ff", ownerID)
		assert.True(t, apperr.IsNotFound(err))
	})
}

// # Commenting

/*
TestService_AddComment persists the comment with deduplicated mentions and
publishes a new_comment feed entry.
*/
func TestService_AddComment(t *testing.T) {
	repo := newFakeRepo()
	repo.photos[photoID] = &photo.Photo{ID: photoID, UserID: ownerID}
	recorder := &fakeRecorder{}
	service := newService(repo, recorder)

	comment, err := service.AddComment(context.Background(), photo.AddCommentInput{
		PhotoID:  photoID,
		UserID:   otherID,
		Username: "mira",
		Body:     "lovely shot @took @took",
		Mentions: []photo.Mention{
			{UserID: ownerID, DisplayName: "Took"},
			{UserID: ownerID, DisplayName: "Took (renamed)"},
		},
	})

	require.NoError(t, err)
	assert.Len(t, comment.ID, 36)

	// The duplicate mention collapses and the first snapshot wins
	require.Len(t, comment.Mentions, 1)
	assert.Equal(t, "Took", comment.Mentions[0].DisplayName)

	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, feed.ActivityNewComment, recorder.recorded[0].activityType)
	assert.Equal(t, photoID, recorder.recorded[0].info.PhotoID)
}

/*
TestService_AddComment_RejectsEmptyBody treats all-whitespace bodies as
empty.
*/
func TestService_AddComment_RejectsEmptyBody(t *testing.T) {
	repo := newFakeRepo()
	repo.photos[photoID] = &photo.Photo{ID: photoID, UserID: ownerID}
	service := newService(repo, &fakeRecorder{})

	for _, body := range []string{"", "   ", "\n\t"} {
		_, err := service.AddComment(context.Background(), photo.AddCommentInput{
			PhotoID: photoID,
			UserID:  otherID,
			Body:    body,
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	}
	assert.Empty(t, repo.createdComments)
}

/*
TestService_AddComment_HiddenPhotoReadsAsAbsent refuses comments on
soft-deleted photos.
*/
func TestService_AddComment_HiddenPhotoReadsAsAbsent(t *testing.T) {
	repo := newFakeRepo()
	repo.photos[hiddenID] = &photo.Photo{ID: hiddenID, UserID: ownerID, IsDelete: true}
	service := newService(repo, &fakeRecorder{})

	_, err := service.AddComment(context.Background(), photo.AddCommentInput{
		PhotoID: hiddenID,
		UserID:  otherID,
		Body:    "hello",
	})

	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_SoftDeleteComment covers authorship enforcement.
*/
func TestService_SoftDeleteComment(t *testing.T) {
	commentID := "01920000-0000-7000-8000-00000000000c"
	repo := newFakeRepo()
	repo.comments[commentID] = &photo.Comment{ID: commentID, PhotoID: photoID, UserID: otherID}
	service := newService(repo, &fakeRecorder{})

	t.Run("non_author_is_forbidden", func(t *testing.T) {
		err := service.SoftDeleteComment(context.Background(), commentID, ownerID)
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})

	t.Run("author_can_delete", func(t *testing.T) {
		err := service.SoftDeleteComment(context.Background(), commentID, otherID)
		require.NoError(t, err)
		assert.Contains(t, repo.deletedComments, commentID)
	})
}

// # Aggregates

/*
TestService_MostRecentPhoto maps a missing aggregate to a nil result
instead of an error.
*/
func TestService_MostRecentPhoto(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeRecorder{})

	result, err := service.MostRecentPhoto(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Nil(t, result)

	repo.mostRecent = &photo.Photo{ID: photoID, UserID: ownerID, IsDelete: true}
	result, err = service.MostRecentPhoto(context.Background(), ownerID)
	require.NoError(t, err)
	require.NotNil(t, result)

	// Deleted uploads still count toward recency
	assert.True(t, result.IsDelete)
}

/*
TestService_MostCommentedPhoto returns the photo with its visible comment
count, or nil when the user has no visible photos.
*/
func TestService_MostCommentedPhoto(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeRecorder{})

	result, err := service.MostCommentedPhoto(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Nil(t, result)

	repo.mostCommented = &photo.Photo{ID: photoID, UserID: ownerID}
	repo.commentCount = 4
	result, err = service.MostCommentedPhoto(context.Background(), ownerID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 4, result.CommentCount)
	assert.Equal(t, photoID, result.Photo.ID)
}

/*
TestService_MentionedPhotos distinguishes "never mentioned" from a
populated feed.
*/
func TestService_MentionedPhotos(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeRecorder{})

	mentionFeed, err := service.MentionedPhotos(context.Background(), ownerID)
	require.NoError(t, err)
	assert.False(t, mentionFeed.Found)
	assert.Empty(t, mentionFeed.Items)

	repo.mentioned = []*photo.MentionedPhoto{
		{PhotoID: photoID, FileName: "photos/x.jpg", OwnerID: otherID, OwnerName: "Unknown"},
	}
	mentionFeed, err = service.MentionedPhotos(context.Background(), ownerID)
	require.NoError(t, err)
	assert.True(t, mentionFeed.Found)
	require.Len(t, mentionFeed.Items, 1)
}
