package feed

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	List(ctx context.Context, filter Filter) ([]*Post, int, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const postJoinColumns = "p.id, p.author_id, u.display_name, p.facility_id, f.name, " +
	"p.content, p.photo_file_ids, p.created_at, p.updated_at"

func scanPost(row pgx.Row) (*Post, error) {
	var p Post
	var authorName *string
	if err := row.Scan(
		&p.ID, &p.AuthorID, &authorName, &p.FacilityID, &p.FacilityName,
		&p.Content, &p.PhotoFileIDs, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan post failed: %w", err)
	}
	if authorName != nil {
		p.AuthorName = *authorName
	}
	return &p, nil
}

func (r *pgxRepository) Create(ctx context.Context, p *Post) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.feed_posts").
		Columns("author_id", "facility_id", "content", "photo_file_ids").
		Values(p.AuthorID, p.FacilityID, p.Content, p.PhotoFileIDs).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create post query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Post, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(postJoinColumns).
		From("public.feed_posts p").
		Join("public.users u ON p.author_id = u.id").
		LeftJoin("public.facilities f ON p.facility_id = f.id").
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get post query failed: %w", err)
	}

	return scanPost(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Post, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(postJoinColumns + ", count(*) OVER() as total_count").
		From("public.feed_posts p").
		Join("public.users u ON p.author_id = u.id").
		LeftJoin("public.facilities f ON p.facility_id = f.id")

	if filter.AuthorID != "" {
		query = query.Where(squirrel.Eq{"p.author_id": filter.AuthorID})
	}
	if filter.FacilityID != "" {
		query = query.Where(squirrel.Eq{"p.facility_id": filter.FacilityID})
	}
	if filter.Keyword != "" {
		query = query.Where(squirrel.ILike{"p.content": "%" + filter.Keyword + "%"})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("p.created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list posts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts failed: %w", err)
	}
	defer rows.Close()

	var posts []*Post
	var total int

	for rows.Next() {
		var p Post
		var authorName *string
		if err := rows.Scan(
			&p.ID, &p.AuthorID, &authorName, &p.FacilityID, &p.FacilityName,
			&p.Content, &p.PhotoFileIDs, &p.CreatedAt, &p.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan post failed: %w", err)
		}
		if authorName != nil {
			p.AuthorName = *authorName
		}
		posts = append(posts, &p)
	}

	return posts, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, p *Post) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.feed_posts").
		Set("content", p.Content).
		Set("photo_file_ids", p.PhotoFileIDs).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update post query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update post failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.feed_posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete post query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete post failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
