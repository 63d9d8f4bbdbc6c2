package domain

import (
	"context"
	"time"
)

// Reaction types accepted on a blog post.
const (
	ReactionLike    = "like"
	ReactionLove    = "love"
	ReactionDislike = "dislike"
)

// ReactionTypes lists every reaction accepted by the feed.
var ReactionTypes = []string{ReactionLike, ReactionLove, ReactionDislike}

func ValidReactionType(s string) bool {
	switch s {
	case ReactionLike, ReactionLove, ReactionDislike:
		return true
	}
	return false
}

// ReactionOp is the outcome of submitting a reaction against the current
// state: no existing reaction creates one, the same type removes it, a
// different type overwrites it.
type ReactionOp int

const (
	ReactionCreate ReactionOp = iota
	ReactionSwitch
	ReactionRemove
)

// NextReactionOp decides the toggle transition. existing is nil when the
// user has not reacted to the post yet.
func NextReactionOp(existing *string, requested string) ReactionOp {
	if existing == nil {
		return ReactionCreate
	}
	if *existing == requested {
		return ReactionRemove
	}
	return ReactionSwitch
}

type Reaction struct {
	UserID string `json:"userId"`
	Type   string `json:"type"`
}

type Comment struct {
	ID       int64  `json:"id"`
	PostID   int64  `json:"-"`
	AuthorID string `json:"authorId"`
	Content  string `json:"content"`

	// Resolved at read time from the joined author row
	AuthorName     string `json:"authorName"`
	AuthorPhotoURL string `json:"authorPhotoUrl"`

	CreatedAt time.Time `json:"timestamp"`

	Author *User `json:"-"`
}

type BlogPost struct {
	ID         int64   `json:"id"`
	AuthorID   string  `json:"authorId"`
	AuthorRole string  `json:"authorRole"`
	Content    string  `json:"content"`
	ImageURL   *string `json:"imageUrl,omitempty"`

	// Resolved at read time from the joined author row
	AuthorName     string `json:"authorName"`
	AuthorPhotoURL string `json:"authorPhotoUrl"`

	// Attached for company authors only
	CompanyDescription   *string `json:"companyDescription,omitempty"`
	CompanyWebsite       *string `json:"companyWebsite,omitempty"`
	CompanyContactInfo   *string `json:"companyContactInfo,omitempty"`
	CompanyOfficeAddress *string `json:"companyOfficeAddress,omitempty"`

	Comments  []Comment  `json:"comments"`
	Reactions []Reaction `json:"reactions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author *User `json:"-"`
}

// AuthorDisplayName resolves the name shown on feed content. Companies fall
// back name, description, website, "Unknown Company"; everyone else falls
// back name, "Anonymous User". A missing author row yields the unknown label.
func AuthorDisplayName(role string, author *User) string {
	if author == nil {
		if role == RoleCompany {
			return "Unknown Company"
		}
		return "Unknown User"
	}
	if role == RoleCompany {
		if author.Name != "" {
			return author.Name
		}
		if author.Description != nil && *author.Description != "" {
			return *author.Description
		}
		if author.Website != nil && *author.Website != "" {
			return *author.Website
		}
		return "Unknown Company"
	}
	if author.Name != "" {
		return author.Name
	}
	return "Anonymous User"
}

// AuthorAvatarURL resolves the photo shown on feed content, falling back to
// a deterministic avatar derived from the author's email.
func AuthorAvatarURL(author *User) string {
	if author == nil {
		return "https://via.placeholder.com/150"
	}
	if author.PhotoURL != nil && *author.PhotoURL != "" {
		return *author.PhotoURL
	}
	return "https://i.pravatar.cc/150?u=" + author.Email
}

// ResolveAuthor fills the read-time author projection on a post and, for
// company authors, attaches the company detail fields.
func (p *BlogPost) ResolveAuthor() {
	p.AuthorName = AuthorDisplayName(p.AuthorRole, p.Author)
	p.AuthorPhotoURL = AuthorAvatarURL(p.Author)
	if p.AuthorRole == RoleCompany && p.Author != nil {
		p.CompanyDescription = p.Author.Description
		p.CompanyWebsite = p.Author.Website
		p.CompanyContactInfo = p.Author.ContactInfo
		p.CompanyOfficeAddress = p.Author.OfficeAddress
	}
	p.Author = nil
}

// ResolveAuthor fills the read-time author projection on a comment.
func (c *Comment) ResolveAuthor() {
	role := RoleSeeker
	if c.Author != nil {
		role = c.Author.Role
	}
	c.AuthorName = AuthorDisplayName(role, c.Author)
	c.AuthorPhotoURL = AuthorAvatarURL(c.Author)
	c.Author = nil
}

// PostUpdate is a partial update for a blog post. A non-nil empty ImageURL
// clears the image.
type PostUpdate struct {
	Content  *string `json:"content"`
	ImageURL *string `json:"imageUrl"`
}

type BlogRepository interface {
	CreatePost(ctx context.Context, post *BlogPost) error
	GetPostByID(ctx context.Context, id int64) (*BlogPost, error)
	FetchPosts(ctx context.Context) ([]BlogPost, error)
	UpdatePost(ctx context.Context, post *BlogPost) error
	DeletePost(ctx context.Context, id int64) error

	// ToggleReaction applies NextReactionOp under a row lock keyed by
	// (postID, userID) so concurrent reactions cannot lose updates.
	ToggleReaction(ctx context.Context, postID int64, userID, reactionType string) error

	AddComment(ctx context.Context, comment *Comment) error
	GetCommentByID(ctx context.Context, postID, commentID int64) (*Comment, error)
	UpdateComment(ctx context.Context, postID, commentID int64, content string) error
	DeleteComment(ctx context.Context, postID, commentID int64) error
}

type BlogUsecase interface {
	Feed(ctx context.Context) ([]BlogPost, error)
	CreatePost(ctx context.Context, authorID, content string, imageURL *string) (*BlogPost, error)
	UpdatePost(ctx context.Context, actorID, actorRole string, postID int64, upd *PostUpdate) (*BlogPost, error)
	DeletePost(ctx context.Context, actorID, actorRole string, postID int64) error
	React(ctx context.Context, actorID string, postID int64, reactionType string) (*BlogPost, error)
	AddComment(ctx context.Context, actorID string, postID int64, content string) (*BlogPost, error)
	UpdateComment(ctx context.Context, actorID, actorRole string, postID, commentID int64, content string) (*BlogPost, error)
	DeleteComment(ctx context.Context, actorID, actorRole string, postID, commentID int64) (*BlogPost, error)
}
