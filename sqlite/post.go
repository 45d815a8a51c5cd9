package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/blogmeta"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ blogmeta.PostService = (*PostService)(nil)

// PostService implements blogmeta.PostService using SQLite.
// Tags and extracted metadata are stored as JSON.
type PostService struct {
	db *DB
}

// NewPostService creates a new PostService.
func NewPostService(db *DB) *PostService {
	return &PostService{db: db}
}

const postColumns = "id, path, slug, title, category, tags, content_hash, meta, indexed_at"

// CreatePost stores a new post.
func (s *PostService) CreatePost(ctx context.Context, post *blogmeta.IndexedPost) error {
	if err := post.Validate(); err != nil {
		return err
	}

	tags, err := encodeJSON(post.Tags, "tags")
	if err != nil {
		return err
	}
	meta, err := encodeJSON(post.Meta, "meta")
	if err != nil {
		return err
	}

	post.ID = uuid.New().String()
	post.IndexedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO posts (`+postColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, post.ID, post.Path, post.Slug, post.Title, post.Category, tags, post.ContentHash, meta,
		post.IndexedAt.Format(time.RFC3339))

	return err
}

// FindPostByID retrieves a post by ID.
func (s *PostService) FindPostByID(ctx context.Context, id string) (*blogmeta.IndexedPost, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+postColumns+" FROM posts WHERE id = ?", id)

	post, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, blogmeta.Errorf(blogmeta.ENOTFOUND, "post not found")
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

// FindPosts retrieves posts matching the filter, ordered by path.
func (s *PostService) FindPosts(ctx context.Context, filter blogmeta.PostFilter) ([]*blogmeta.IndexedPost, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + postColumns + " FROM posts WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Path != nil {
		query.WriteString(" AND path = ?")
		args = append(args, *filter.Path)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}

	query.WriteString(" ORDER BY path ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*blogmeta.IndexedPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// UpdatePost updates an existing post and refreshes its index timestamp.
func (s *PostService) UpdatePost(ctx context.Context, id string, upd blogmeta.PostUpdate) (*blogmeta.IndexedPost, error) {
	post, err := s.FindPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Slug != nil {
		post.Slug = *upd.Slug
	}
	if upd.Title != nil {
		post.Title = *upd.Title
	}
	if upd.Category != nil {
		post.Category = *upd.Category
	}
	if upd.Tags != nil {
		post.Tags = upd.Tags
	}
	if upd.ContentHash != nil {
		post.ContentHash = *upd.ContentHash
	}
	if upd.Meta != nil {
		post.Meta = *upd.Meta
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	tags, err := encodeJSON(post.Tags, "tags")
	if err != nil {
		return nil, err
	}
	meta, err := encodeJSON(post.Meta, "meta")
	if err != nil {
		return nil, err
	}

	post.IndexedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		UPDATE posts
		SET slug = ?, title = ?, category = ?, tags = ?, content_hash = ?, meta = ?, indexed_at = ?
		WHERE id = ?
	`, post.Slug, post.Title, post.Category, tags, post.ContentHash, meta,
		post.IndexedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost permanently removes a post.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return blogmeta.Errorf(blogmeta.ENOTFOUND, "post not found")
	}

	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPost(sc scanner) (*blogmeta.IndexedPost, error) {
	var post blogmeta.IndexedPost
	var tags, meta, indexedAt string

	if err := sc.Scan(&post.ID, &post.Path, &post.Slug, &post.Title, &post.Category,
		&tags, &post.ContentHash, &meta, &indexedAt); err != nil {
		return nil, err
	}

	if err := decodeJSON(tags, "tags", &post.Tags); err != nil {
		return nil, err
	}
	if err := decodeJSON(meta, "meta", &post.Meta); err != nil {
		return nil, err
	}

	var err error
	post.IndexedAt, err = parseRFC3339(indexedAt, "indexed_at")
	if err != nil {
		return nil, err
	}

	return &post, nil
}
