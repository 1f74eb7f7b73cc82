package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/service"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/utils"
)

func newBookmarksService(t *testing.T) (*service.BookmarksService, *mocks.MockBookmarksRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookmarksRepo(ctrl)
	return service.NewBookmarksService(repo), repo
}

func TestBookmarksService_Create_OK(t *testing.T) {
	ctx := context.Background()
	svc, repo := newBookmarksService(t)

	in := models.NewBookmark{Title: "t", Link: "l"}
	repo.EXPECT().
		Create(ctx, int64(1), in).
		Return(models.Bookmark{ID: 1, UserID: 1, Title: "t", Link: "l"}, nil)

	b, err := svc.Create(ctx, 1, in)
	require.NoError(t, err)
	require.Equal(t, int64(1), b.ID)
}

func TestBookmarksService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   models.NewBookmark
	}{
		{"empty title", models.NewBookmark{Link: "l"}},
		{"empty link", models.NewBookmark{Title: "t"}},
		{"both empty", models.NewBookmark{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// репозиторий не должен вызываться
			svc, _ := newBookmarksService(t)
			_, err := svc.Create(context.Background(), 1, tt.in)
			require.ErrorIs(t, err, serr.ErrInvalidInput)
		})
	}
}

// nil из репозитория превращается в пустой список
func TestBookmarksService_List_Empty(t *testing.T) {
	ctx := context.Background()
	svc, repo := newBookmarksService(t)

	repo.EXPECT().ListByOwner(ctx, int64(1)).Return(nil, nil)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestBookmarksService_List_Error(t *testing.T) {
	ctx := context.Background()
	svc, repo := newBookmarksService(t)

	repo.EXPECT().ListByOwner(ctx, int64(1)).Return(nil, serr.ErrInternal)

	_, err := svc.List(ctx, 1)
	require.ErrorIs(t, err, serr.ErrInternal)
}

func TestBookmarksService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo := newBookmarksService(t)

	repo.EXPECT().GetByID(ctx, int64(2), int64(7)).Return(models.Bookmark{}, serr.ErrNotFound)

	_, err := svc.Get(ctx, 2, 7)
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestBookmarksService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("only title", func(t *testing.T) {
		svc, repo := newBookmarksService(t)
		patch := models.BookmarkPatch{Title: utils.StrPtr("new")}
		repo.EXPECT().
			Update(ctx, int64(1), int64(3), patch).
			Return(models.Bookmark{ID: 3, Title: "new", Link: "l"}, nil)

		b, err := svc.Update(ctx, 1, 3, patch)
		require.NoError(t, err)
		require.Equal(t, "new", b.Title)
		require.Equal(t, "l", b.Link)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		svc, _ := newBookmarksService(t)
		_, err := svc.Update(ctx, 1, 3, models.BookmarkPatch{Title: utils.StrPtr("")})
		require.ErrorIs(t, err, serr.ErrInvalidInput)
	})

	t.Run("empty link rejected", func(t *testing.T) {
		svc, _ := newBookmarksService(t)
		_, err := svc.Update(ctx, 1, 3, models.BookmarkPatch{Link: utils.StrPtr("")})
		require.ErrorIs(t, err, serr.ErrInvalidInput)
	})

	t.Run("description may be cleared", func(t *testing.T) {
		svc, repo := newBookmarksService(t)
		patch := models.BookmarkPatch{Description: utils.StrPtr("")}
		repo.EXPECT().Update(ctx, int64(1), int64(3), patch).Return(models.Bookmark{ID: 3}, nil)

		_, err := svc.Update(ctx, 1, 3, patch)
		require.NoError(t, err)
	})

	t.Run("empty patch reads current", func(t *testing.T) {
		svc, repo := newBookmarksService(t)
		repo.EXPECT().GetByID(ctx, int64(1), int64(3)).Return(models.Bookmark{ID: 3}, nil)

		b, err := svc.Update(ctx, 1, 3, models.BookmarkPatch{})
		require.NoError(t, err)
		require.Equal(t, int64(3), b.ID)
	})

	t.Run("foreign bookmark", func(t *testing.T) {
		svc, repo := newBookmarksService(t)
		repo.EXPECT().Update(ctx, int64(2), int64(3), gomock.Any()).Return(models.Bookmark{}, serr.ErrNotFound)

		_, err := svc.Update(ctx, 2, 3, models.BookmarkPatch{Title: utils.StrPtr("x")})
		require.ErrorIs(t, err, serr.ErrNotFound)
	})
}

func TestBookmarksService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, repo := newBookmarksService(t)

	repo.EXPECT().Delete(ctx, int64(1), int64(3)).Return(nil)
	repo.EXPECT().Delete(ctx, int64(1), int64(4)).Return(serr.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, 1, 3))
	require.ErrorIs(t, svc.Delete(ctx, 1, 4), serr.ErrNotFound)
}

func TestHealthService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHealthRepo(ctrl)
	svc := service.NewHealthService(repo)

	repo.EXPECT().Ping(gomock.Any()).Return(nil)
	require.NoError(t, svc.Check(context.Background()))
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcs := service.NewServices(service.Repositories{
		Users:     mocks.NewMockUsersRepo(ctrl),
		Bookmarks: mocks.NewMockBookmarksRepo(ctrl),
		Health:    mocks.NewMockHealthRepo(ctrl),
	}, testConfig())

	require.NotNil(t, svcs.Auth)
	require.NotNil(t, svcs.Users)
	require.NotNil(t, svcs.Bookmarks)
	require.NotNil(t, svcs.Health)
}
