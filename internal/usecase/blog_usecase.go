package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/authz"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type blogUsecase struct {
	blogRepo domain.BlogRepository
	userRepo domain.UserRepository
}

func NewBlogUsecase(blogRepo domain.BlogRepository, userRepo domain.UserRepository) domain.BlogUsecase {
	return &blogUsecase{
		blogRepo: blogRepo,
		userRepo: userRepo,
	}
}

// Feed returns all posts newest-first with author identity resolved at read
// time, so renamed or re-photographed profiles show current data on old
// posts.
func (uc *blogUsecase) Feed(ctx context.Context) ([]domain.BlogPost, error) {
	posts, err := uc.blogRepo.FetchPosts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		resolvePost(&posts[i])
	}
	return posts, nil
}

func resolvePost(post *domain.BlogPost) {
	post.ResolveAuthor()
	for i := range post.Comments {
		post.Comments[i].ResolveAuthor()
	}
}

func (uc *blogUsecase) CreatePost(ctx context.Context, authorID, content string, imageURL *string) (*domain.BlogPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperror.BadRequest("Content is required")
	}

	author, err := uc.userRepo.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, err
	}

	post := &domain.BlogPost{
		AuthorID:   author.ID,
		AuthorRole: author.Role,
		Content:    content,
		ImageURL:   imageURL,
	}
	if err := uc.blogRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	return uc.resolvedPost(ctx, post.ID)
}

func (uc *blogUsecase) UpdatePost(ctx context.Context, actorID, actorRole string, postID int64, upd *domain.PostUpdate) (*domain.BlogPost, error) {
	post, err := uc.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	actor := authz.Identity{ID: actorID, Role: actorRole}
	if !authz.Owns(actor, post.AuthorID) {
		return nil, apperror.Forbidden("Not authorized to update this post")
	}

	if upd.Content != nil && *upd.Content != "" {
		post.Content = *upd.Content
	}
	// An explicit empty imageUrl clears the image; absent leaves it alone.
	if upd.ImageURL != nil {
		if *upd.ImageURL == "" {
			post.ImageURL = nil
		} else {
			post.ImageURL = upd.ImageURL
		}
	}

	if err := uc.blogRepo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	return uc.resolvedPost(ctx, postID)
}

func (uc *blogUsecase) DeletePost(ctx context.Context, actorID, actorRole string, postID int64) error {
	post, err := uc.getPost(ctx, postID)
	if err != nil {
		return err
	}

	actor := authz.Identity{ID: actorID, Role: actorRole}
	if !authz.Owns(actor, post.AuthorID) {
		return apperror.Forbidden("Not authorized to delete this post")
	}

	return uc.blogRepo.DeletePost(ctx, postID)
}

// React applies toggle semantics: first reaction creates, repeating the same
// type removes, a different type overwrites. The repository applies the
// transition atomically per (post, user).
func (uc *blogUsecase) React(ctx context.Context, actorID string, postID int64, reactionType string) (*domain.BlogPost, error) {
	if !domain.ValidReactionType(reactionType) {
		return nil, apperror.BadRequest("Invalid reaction type: must be one of " + strings.Join(domain.ReactionTypes, ", "))
	}

	if _, err := uc.getPost(ctx, postID); err != nil {
		return nil, err
	}

	if err := uc.blogRepo.ToggleReaction(ctx, postID, actorID, reactionType); err != nil {
		return nil, err
	}
	return uc.resolvedPost(ctx, postID)
}

func (uc *blogUsecase) AddComment(ctx context.Context, actorID string, postID int64, content string) (*domain.BlogPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperror.BadRequest("Content is required")
	}

	if _, err := uc.getPost(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:   postID,
		AuthorID: actorID,
		Content:  content,
	}
	if err := uc.blogRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return uc.resolvedPost(ctx, postID)
}

func (uc *blogUsecase) UpdateComment(ctx context.Context, actorID, actorRole string, postID, commentID int64, content string) (*domain.BlogPost, error) {
	comment, err := uc.getComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}

	actor := authz.Identity{ID: actorID, Role: actorRole}
	if !authz.Owns(actor, comment.AuthorID) {
		return nil, apperror.Forbidden("Not authorized to update this comment")
	}

	if content != "" {
		if err := uc.blogRepo.UpdateComment(ctx, postID, commentID, content); err != nil {
			return nil, err
		}
	}
	return uc.resolvedPost(ctx, postID)
}

func (uc *blogUsecase) DeleteComment(ctx context.Context, actorID, actorRole string, postID, commentID int64) (*domain.BlogPost, error) {
	comment, err := uc.getComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}

	actor := authz.Identity{ID: actorID, Role: actorRole}
	if !authz.Owns(actor, comment.AuthorID) {
		return nil, apperror.Forbidden("Not authorized to delete this comment")
	}

	if err := uc.blogRepo.DeleteComment(ctx, postID, commentID); err != nil {
		return nil, err
	}
	return uc.resolvedPost(ctx, postID)
}

func (uc *blogUsecase) getPost(ctx context.Context, postID int64) (*domain.BlogPost, error) {
	post, err := uc.blogRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Post not found")
		}
		return nil, err
	}
	return post, nil
}

func (uc *blogUsecase) getComment(ctx context.Context, postID, commentID int64) (*domain.Comment, error) {
	comment, err := uc.blogRepo.GetCommentByID(ctx, postID, commentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Comment not found")
		}
		return nil, err
	}
	return comment, nil
}

func (uc *blogUsecase) resolvedPost(ctx context.Context, postID int64) (*domain.BlogPost, error) {
	post, err := uc.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	resolvePost(post)
	return post, nil
}
