package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type blogRepo struct {
	db *pgxpool.Pool
}

func NewBlogRepository(db *pgxpool.Pool) domain.BlogRepository {
	return &blogRepo{db: db}
}

// authorFields is the identity subset joined onto posts and comments so the
// usecase can run the display-name/avatar fallback at read time.
const authorFields = `u.name, u.email, u.role, u.photo_url, u.description, u.website, u.contact_info, u.office_address`

func buildAuthor(name, email, role *string, photo, desc, site, contact, office *string) *domain.User {
	if name == nil && email == nil {
		return nil
	}
	author := &domain.User{
		PhotoURL:      photo,
		Description:   desc,
		Website:       site,
		ContactInfo:   contact,
		OfficeAddress: office,
	}
	if name != nil {
		author.Name = *name
	}
	if email != nil {
		author.Email = *email
	}
	if role != nil {
		author.Role = *role
	}
	return author
}

func (r *blogRepo) CreatePost(ctx context.Context, post *domain.BlogPost) error {
	query := `
		INSERT INTO blog_posts (author_id, author_role, content, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		post.AuthorID, post.AuthorRole, post.Content, post.ImageURL,
		post.CreatedAt, post.UpdatedAt,
	).Scan(&post.ID)
}

func (r *blogRepo) GetPostByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	query := `
		SELECT p.id, p.author_id, p.author_role, p.content, p.image_url, p.created_at, p.updated_at, ` + authorFields + `
		FROM blog_posts p
		LEFT JOIN users u ON p.author_id = u.id
		WHERE p.id = $1`

	post, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := r.attachDetails(ctx, []*domain.BlogPost{post}); err != nil {
		return nil, err
	}
	return post, nil
}

func (r *blogRepo) FetchPosts(ctx context.Context) ([]domain.BlogPost, error) {
	query := `
		SELECT p.id, p.author_id, p.author_role, p.content, p.image_url, p.created_at, p.updated_at, ` + authorFields + `
		FROM blog_posts p
		LEFT JOIN users u ON p.author_id = u.id
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.BlogPost, len(posts))
	for i := range posts {
		refs[i] = &posts[i]
	}
	if err := r.attachDetails(ctx, refs); err != nil {
		return nil, err
	}
	return posts, nil
}

func scanPost(row pgx.Row) (*domain.BlogPost, error) {
	var post domain.BlogPost
	var aName, aEmail, aRole, aPhoto, aDesc, aSite, aContact, aOffice *string
	err := row.Scan(
		&post.ID, &post.AuthorID, &post.AuthorRole, &post.Content, &post.ImageURL,
		&post.CreatedAt, &post.UpdatedAt,
		&aName, &aEmail, &aRole, &aPhoto, &aDesc, &aSite, &aContact, &aOffice,
	)
	if err != nil {
		return nil, err
	}
	post.Author = buildAuthor(aName, aEmail, aRole, aPhoto, aDesc, aSite, aContact, aOffice)
	return &post, nil
}

// attachDetails loads comments and reactions for the given posts in two
// queries and distributes them. Slices are initialized so empty collections
// serialize as [] rather than null.
func (r *blogRepo) attachDetails(ctx context.Context, posts []*domain.BlogPost) error {
	if len(posts) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.BlogPost, len(posts))
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		p.Comments = []domain.Comment{}
		p.Reactions = []domain.Reaction{}
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	commentQuery := `
		SELECT c.id, c.post_id, c.author_id, c.content, c.created_at, ` + authorFields + `
		FROM blog_comments c
		LEFT JOIN users u ON c.author_id = u.id
		WHERE c.post_id = ANY($1)
		ORDER BY c.created_at ASC`

	rows, err := r.db.Query(ctx, commentQuery, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.Comment
		var aName, aEmail, aRole, aPhoto, aDesc, aSite, aContact, aOffice *string
		if err := rows.Scan(
			&c.ID, &c.PostID, &c.AuthorID, &c.Content, &c.CreatedAt,
			&aName, &aEmail, &aRole, &aPhoto, &aDesc, &aSite, &aContact, &aOffice,
		); err != nil {
			return err
		}
		c.Author = buildAuthor(aName, aEmail, aRole, aPhoto, aDesc, aSite, aContact, aOffice)
		if p, ok := byID[c.PostID]; ok {
			p.Comments = append(p.Comments, c)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	reactionRows, err := r.db.Query(ctx,
		`SELECT post_id, user_id, type FROM blog_reactions WHERE post_id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	defer reactionRows.Close()
	for reactionRows.Next() {
		var postID int64
		var reaction domain.Reaction
		if err := reactionRows.Scan(&postID, &reaction.UserID, &reaction.Type); err != nil {
			return err
		}
		if p, ok := byID[postID]; ok {
			p.Reactions = append(p.Reactions, reaction)
		}
	}
	return reactionRows.Err()
}

func (r *blogRepo) UpdatePost(ctx context.Context, post *domain.BlogPost) error {
	query := `UPDATE blog_posts SET content = $2, image_url = $3, updated_at = $4 WHERE id = $1`

	post.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query, post.ID, post.Content, post.ImageURL, post.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blogRepo) DeletePost(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ToggleReaction reads the caller's current reaction under FOR UPDATE and
// applies the toggle transition inside the same transaction, so concurrent
// reactions on the same post never lose updates.
func (r *blogRepo) ToggleReaction(ctx context.Context, postID int64, userID, reactionType string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var existing *string
	var current string
	err = tx.QueryRow(ctx,
		`SELECT type FROM blog_reactions WHERE post_id = $1 AND user_id = $2 FOR UPDATE`,
		postID, userID,
	).Scan(&current)
	switch {
	case err == nil:
		existing = &current
	case errors.Is(err, pgx.ErrNoRows):
		// no reaction yet
	default:
		return err
	}

	switch domain.NextReactionOp(existing, reactionType) {
	case domain.ReactionCreate:
		_, err = tx.Exec(ctx,
			`INSERT INTO blog_reactions (post_id, user_id, type) VALUES ($1, $2, $3)`,
			postID, userID, reactionType)
	case domain.ReactionSwitch:
		_, err = tx.Exec(ctx,
			`UPDATE blog_reactions SET type = $3 WHERE post_id = $1 AND user_id = $2`,
			postID, userID, reactionType)
	case domain.ReactionRemove:
		_, err = tx.Exec(ctx,
			`DELETE FROM blog_reactions WHERE post_id = $1 AND user_id = $2`,
			postID, userID)
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *blogRepo) AddComment(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO blog_comments (post_id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	comment.CreatedAt = time.Now()

	return r.db.QueryRow(ctx, query,
		comment.PostID, comment.AuthorID, comment.Content, comment.CreatedAt,
	).Scan(&comment.ID)
}

func (r *blogRepo) GetCommentByID(ctx context.Context, postID, commentID int64) (*domain.Comment, error) {
	query := `SELECT id, post_id, author_id, content, created_at FROM blog_comments WHERE id = $1 AND post_id = $2`

	var c domain.Comment
	err := r.db.QueryRow(ctx, query, commentID, postID).Scan(
		&c.ID, &c.PostID, &c.AuthorID, &c.Content, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *blogRepo) UpdateComment(ctx context.Context, postID, commentID int64, content string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE blog_comments SET content = $3 WHERE id = $1 AND post_id = $2`,
		commentID, postID, content)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blogRepo) DeleteComment(ctx context.Context, postID, commentID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM blog_comments WHERE id = $1 AND post_id = $2`,
		commentID, postID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
