package domain_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestNextReactionOp(t *testing.T) {
	t.Run("First reaction creates", func(t *testing.T) {
		assert.Equal(t, domain.ReactionCreate, domain.NextReactionOp(nil, domain.ReactionLike))
	})

	t.Run("Repeating the same type removes", func(t *testing.T) {
		assert.Equal(t, domain.ReactionRemove, domain.NextReactionOp(strptr(domain.ReactionLike), domain.ReactionLike))
	})

	t.Run("A different type overwrites", func(t *testing.T) {
		assert.Equal(t, domain.ReactionSwitch, domain.NextReactionOp(strptr(domain.ReactionLike), domain.ReactionLove))
	})

	t.Run("Create then remove round-trips to absent", func(t *testing.T) {
		// create
		op := domain.NextReactionOp(nil, domain.ReactionLove)
		assert.Equal(t, domain.ReactionCreate, op)
		// same type again
		op = domain.NextReactionOp(strptr(domain.ReactionLove), domain.ReactionLove)
		assert.Equal(t, domain.ReactionRemove, op)
		// after removal the state is nil again
		op = domain.NextReactionOp(nil, domain.ReactionLove)
		assert.Equal(t, domain.ReactionCreate, op)
	})
}

func TestAuthorDisplayName(t *testing.T) {
	t.Run("Company falls back name, description, website, unknown", func(t *testing.T) {
		u := &domain.User{Role: domain.RoleCompany}
		assert.Equal(t, "Unknown Company", domain.AuthorDisplayName(domain.RoleCompany, u))

		u.Website = strptr("https://acme.example.com")
		assert.Equal(t, "https://acme.example.com", domain.AuthorDisplayName(domain.RoleCompany, u))

		u.Description = strptr("Rocket supplies")
		assert.Equal(t, "Rocket supplies", domain.AuthorDisplayName(domain.RoleCompany, u))

		u.Name = "Acme"
		assert.Equal(t, "Acme", domain.AuthorDisplayName(domain.RoleCompany, u))
	})

	t.Run("Seeker falls back to anonymous", func(t *testing.T) {
		assert.Equal(t, "Anonymous User", domain.AuthorDisplayName(domain.RoleSeeker, &domain.User{}))
		assert.Equal(t, "Alice", domain.AuthorDisplayName(domain.RoleSeeker, &domain.User{Name: "Alice"}))
	})

	t.Run("Missing author row yields the unknown label", func(t *testing.T) {
		assert.Equal(t, "Unknown Company", domain.AuthorDisplayName(domain.RoleCompany, nil))
		assert.Equal(t, "Unknown User", domain.AuthorDisplayName(domain.RoleSeeker, nil))
	})
}

func TestAuthorAvatarURL(t *testing.T) {
	t.Run("Uses the stored photo when present", func(t *testing.T) {
		u := &domain.User{Email: "alice@example.com", PhotoURL: strptr("https://img.example.com/a.png")}
		assert.Equal(t, "https://img.example.com/a.png", domain.AuthorAvatarURL(u))
	})

	t.Run("Derives a deterministic avatar from the email", func(t *testing.T) {
		u := &domain.User{Email: "alice@example.com"}
		assert.Equal(t, "https://i.pravatar.cc/150?u=alice@example.com", domain.AuthorAvatarURL(u))
	})

	t.Run("Falls back to a placeholder without an author row", func(t *testing.T) {
		assert.Equal(t, "https://via.placeholder.com/150", domain.AuthorAvatarURL(nil))
	})
}

func TestResolveAuthor(t *testing.T) {
	t.Run("Company posts carry the company detail fields", func(t *testing.T) {
		post := &domain.BlogPost{
			AuthorRole: domain.RoleCompany,
			Author: &domain.User{
				Name:        "Acme",
				Email:       "hr@acme.com",
				Role:        domain.RoleCompany,
				Description: strptr("Rocket supplies"),
				Website:     strptr("https://acme.example.com"),
			},
		}
		post.ResolveAuthor()

		assert.Equal(t, "Acme", post.AuthorName)
		assert.Equal(t, "Rocket supplies", *post.CompanyDescription)
		assert.Equal(t, "https://acme.example.com", *post.CompanyWebsite)
		assert.Nil(t, post.Author)
	})

	t.Run("Seeker posts leave company fields empty", func(t *testing.T) {
		post := &domain.BlogPost{
			AuthorRole: domain.RoleSeeker,
			Author:     &domain.User{Name: "Alice", Email: "alice@example.com", Role: domain.RoleSeeker},
		}
		post.ResolveAuthor()

		assert.Equal(t, "Alice", post.AuthorName)
		assert.Nil(t, post.CompanyDescription)
		assert.Nil(t, post.CompanyWebsite)
	})

	t.Run("Dangling author id resolves to placeholders", func(t *testing.T) {
		comment := &domain.Comment{AuthorID: "gone"}
		comment.ResolveAuthor()

		assert.Equal(t, "Unknown User", comment.AuthorName)
		assert.Equal(t, "https://via.placeholder.com/150", comment.AuthorPhotoURL)
	})
}
