package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func alicePost() *domain.BlogPost {
	return &domain.BlogPost{
		ID:         5,
		AuthorID:   "alice",
		AuthorRole: domain.RoleSeeker,
		Content:    "Landed my first interview!",
		Author:     &domain.User{ID: "alice", Name: "Alice", Email: "alice@example.com", Role: domain.RoleSeeker},
	}
}

func TestCreateBlogPost(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject whitespace-only content", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(blogRepo, new(MockUserRepo))

		_, err := uc.CreatePost(ctx, "alice", "   ", nil)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		blogRepo.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
	})

	t.Run("Should snapshot the author role at creation", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "acme").Return(&domain.User{ID: "acme", Role: domain.RoleCompany}, nil)
		blogRepo.On("CreatePost", ctx, mock.AnythingOfType("*domain.BlogPost")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.BlogPost)
			assert.Equal(t, domain.RoleCompany, p.AuthorRole)
			p.ID = 5
		})
		blogRepo.On("GetPostByID", ctx, int64(5)).Return(&domain.BlogPost{
			ID: 5, AuthorID: "acme", AuthorRole: domain.RoleCompany, Content: "We are hiring",
			Author: &domain.User{ID: "acme", Name: "Acme", Role: domain.RoleCompany},
		}, nil)
		uc := usecase.NewBlogUsecase(blogRepo, userRepo)

		post, err := uc.CreatePost(ctx, "acme", "We are hiring", nil)
		assert.NoError(t, err)
		assert.Equal(t, "Acme", post.AuthorName)
	})
}

func TestUpdateBlogPost(t *testing.T) {
	ctx := context.Background()

	t.Run("Should refuse a non-author", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		blogRepo.On("GetPostByID", ctx, int64(5)).Return(alicePost(), nil)
		uc := usecase.NewBlogUsecase(blogRepo, new(MockUserRepo))

		content := "edited"
		_, err := uc.UpdatePost(ctx, "bob", domain.RoleSeeker, 5, &domain.PostUpdate{Content: &content})
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
		blogRepo.AssertNotCalled(t, "UpdatePost", mock.Anything, mock.Anything)
	})

	t.Run("Should clear the image on an explicit empty imageUrl", func(t *testing.T) {
		stored := alicePost()
		img := "https://img.example.com/a.png"
		stored.ImageURL = &img

		blogRepo := new(MockBlogRepo)
		blogRepo.On("GetPostByID", ctx, int64(5)).Return(stored, nil)
		blogRepo.On("UpdatePost", ctx, mock.AnythingOfType("*domain.BlogPost")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.BlogPost)
			assert.Nil(t, p.ImageURL)
		})
		uc := usecase.NewBlogUsecase(blogRepo, new(MockUserRepo))

		empty := ""
		_, err := uc.UpdatePost(ctx, "alice", domain.RoleSeeker, 5, &domain.PostUpdate{ImageURL: &empty})
		assert.NoError(t, err)
		blogRepo.AssertExpectations(t)
	})

	t.Run("Should let an admin edit any post", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		blogRepo.On("GetPostByID", ctx, int64(5)).Return(alicePost(), nil)
		blogRepo.On("UpdatePost", ctx, mock.AnythingOfType("*domain.BlogPost")).Return(nil)
		uc := usecase.NewBlogUsecase(blogRepo, new(MockUserRepo))

		content := "moderated"
		_, err := uc.UpdatePost(ctx, "root", domain.RoleAdmin, 5, &domain.PostUpdate{Content: &content})
		assert.NoError(t, err)
	})
}

func TestReact(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an unknown reaction type before touching storage", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(blogRepo, new(MockUserRepo))

		_, err := uc.React(ctx, "alice", 5, "angry")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		blogRepo.AssertNotCalled(t, "ToggleReaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should return 404 for a missing post", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		blogRepo.On("GetPostByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewBlogUsecase(blogRepo, new(MockUserRepo))

		_, err := uc.React(ctx, "alice", 99, domain.ReactionLike)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})

	t.Run("Should toggle and return the refreshed post", func(t *testing.T) {
		refreshed := alicePost()
		refreshed.Reactions = []domain.Reaction{{UserID: "bob", Type: domain.ReactionLike}}

		blogRepo := new(MockBlogRepo)
		blogRepo.On("GetPostByID", ctx, int64(5)).Return(refreshed, nil)
		blogRepo.On("ToggleReaction", ctx, int64(5), "bob", domain.ReactionLike).Return(nil)
		uc := usecase.NewBlogUsecase(blogRepo, new(MockUserRepo))

		post, err := uc.React(ctx, "bob", 5, domain.ReactionLike)
		assert.NoError(t, err)
		assert.Len(t, post.Reactions, 1)
		blogRepo.AssertExpectations(t)
	})
}

func TestComments(t *testing.T) {
	ctx := context.Background()

	t.Run("Should attach a comment and return the post", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		blogRepo.On("GetPostByID", ctx, int64(5)).Return(alicePost(), nil)
		blogRepo.On("AddComment", ctx, mock.AnythingOfType("*domain.Comment")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Comment)
			assert.Equal(t, "bob", c.AuthorID)
			assert.Equal(t, int64(5), c.PostID)
		})
		uc := usecase.NewBlogUsecase(blogRepo, new(MockUserRepo))

		_, err := uc.AddComment(ctx, "bob", 5, "Congrats!")
		assert.NoError(t, err)
		blogRepo.AssertExpectations(t)
	})

	t.Run("Should refuse deleting someone else's comment", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		blogRepo.On("GetCommentByID", ctx, int64(5), int64(3)).Return(&domain.Comment{ID: 3, PostID: 5, AuthorID: "bob"}, nil)
		uc := usecase.NewBlogUsecase(blogRepo, new(MockUserRepo))

		_, err := uc.DeleteComment(ctx, "mallory", domain.RoleSeeker, 5, 3)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
		blogRepo.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should return 404 for a comment on another post", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		blogRepo.On("GetCommentByID", ctx, int64(5), int64(3)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewBlogUsecase(blogRepo, new(MockUserRepo))

		_, err := uc.UpdateComment(ctx, "bob", domain.RoleSeeker, 5, 3, "edited")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}

func TestFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Should resolve author identity at read time", func(t *testing.T) {
		posts := []domain.BlogPost{*alicePost()}
		blogRepo := new(MockBlogRepo)
		blogRepo.On("FetchPosts", ctx).Return(posts, nil)
		uc := usecase.NewBlogUsecase(blogRepo, new(MockUserRepo))

		feed, err := uc.Feed(ctx)
		assert.NoError(t, err)
		assert.Len(t, feed, 1)
		assert.Equal(t, "Alice", feed[0].AuthorName)
		assert.Equal(t, "https://i.pravatar.cc/150?u=alice@example.com", feed[0].AuthorPhotoURL)
		assert.Nil(t, feed[0].Author)
	})
}
