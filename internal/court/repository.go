package court

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportbook-app/sportbook-backend/internal/pricing"
)

type Repository interface {
	Create(ctx context.Context, c *Court) error
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, c *Court) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// rulesToJSON serializes the pricing rules document for the JSONB column.
// A nil document is stored as SQL NULL.
func rulesToJSON(r *pricing.Rules) (any, error) {
	if r == nil {
		return nil, nil
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal pricing rules failed: %w", err)
	}
	return b, nil
}

func rulesFromJSON(b []byte) (*pricing.Rules, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var r pricing.Rules
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("unmarshal pricing rules failed: %w", err)
	}
	return &r, nil
}

func (r *pgxRepository) Create(ctx context.Context, c *Court) error {
	rulesJSON, err := rulesToJSON(c.PricingRules)
	if err != nil {
		return err
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.courts").
		Columns("facility_id", "name", "sport", "surface", "indoor", "price_per_hour", "pricing_rules").
		Values(c.FacilityID, c.Name, c.Sport, c.Surface, c.Indoor, c.PricePerHour, rulesJSON).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create court query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"c.id", "c.facility_id", "f.name", "c.name", "c.sport", "c.surface",
		"c.indoor", "c.price_per_hour", "c.pricing_rules", "c.created_at", "c.updated_at",
	).
		From("public.courts c").
		Join("public.facilities f ON c.facility_id = f.id").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get court query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var c Court
	var rulesJSON []byte
	if err := row.Scan(
		&c.ID, &c.FacilityID, &c.FacilityName, &c.Name, &c.Sport, &c.Surface,
		&c.Indoor, &c.PricePerHour, &rulesJSON, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get court failed: %w", err)
	}

	if c.PricingRules, err = rulesFromJSON(rulesJSON); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"c.id", "c.facility_id", "f.name", "c.name", "c.sport", "c.surface",
		"c.indoor", "c.price_per_hour", "c.pricing_rules", "c.created_at", "c.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.courts c").
		Join("public.facilities f ON c.facility_id = f.id")

	if filter.FacilityID != "" {
		query = query.Where(squirrel.Eq{"c.facility_id": filter.FacilityID})
	}
	if filter.Sport != "" {
		query = query.Where(squirrel.Eq{"c.sport": filter.Sport})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("c.name ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list courts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list courts failed: %w", err)
	}
	defer rows.Close()

	var courts []*Court
	var total int

	for rows.Next() {
		var c Court
		var rulesJSON []byte
		if err := rows.Scan(
			&c.ID, &c.FacilityID, &c.FacilityName, &c.Name, &c.Sport, &c.Surface,
			&c.Indoor, &c.PricePerHour, &rulesJSON, &c.CreatedAt, &c.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan court failed: %w", err)
		}
		if c.PricingRules, err = rulesFromJSON(rulesJSON); err != nil {
			return nil, 0, err
		}
		courts = append(courts, &c)
	}

	return courts, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Court) error {
	rulesJSON, err := rulesToJSON(c.PricingRules)
	if err != nil {
		return err
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.courts").
		Set("name", c.Name).
		Set("sport", c.Sport).
		Set("surface", c.Surface).
		Set("indoor", c.Indoor).
		Set("price_per_hour", c.PricePerHour).
		Set("pricing_rules", rulesJSON).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update court query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete court query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
