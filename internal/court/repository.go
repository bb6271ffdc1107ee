package court

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Court) error
	GetByID(ctx context.Context, id int64) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, error)
	Update(ctx context.Context, c *Court) error
	Delete(ctx context.Context, id int64) error

	// DeleteByQuery removes every court matching the filter and returns
	// the deleted rows. Bookings owned by a deleted court are removed by
	// the schema's ON DELETE CASCADE.
	DeleteByQuery(ctx context.Context, filter Filter) ([]*Court, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Court) error {
	const query = `
		INSERT INTO public.canchas (nombre, techada)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query, c.Name, c.Covered).Scan(&c.ID); err != nil {
		return fmt.Errorf("create court failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Court, error) {
	const query = `
		SELECT id, nombre, techada
		FROM public.canchas
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var c Court
	if err := row.Scan(&c.ID, &c.Name, &c.Covered); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get court failed: %w", err)
	}
	return &c, nil
}

// filtered builds the shared WHERE conjunction for List and DeleteByQuery.
func filtered(b squirrel.SelectBuilder, filter Filter) squirrel.SelectBuilder {
	if filter.Name != nil {
		b = b.Where(squirrel.Eq{"nombre": *filter.Name})
	}
	if filter.Covered != nil {
		b = b.Where(squirrel.Eq{"techada": *filter.Covered})
	}

	b = b.OrderBy("id ASC")

	if filter.Page != nil {
		b = b.Offset(filter.Page.Offset).Limit(filter.Page.Limit)
	}
	return b
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Court, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	builder := filtered(psql.Select("id", "nombre", "techada").From("public.canchas"), filter)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list courts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list courts failed: %w", err)
	}
	defer rows.Close()

	var courts []*Court
	for rows.Next() {
		var c Court
		if err := rows.Scan(&c.ID, &c.Name, &c.Covered); err != nil {
			return nil, fmt.Errorf("scan court failed: %w", err)
		}
		courts = append(courts, &c)
	}
	return courts, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, c *Court) error {
	const query = `
		UPDATE public.canchas
		SET nombre = $1, techada = $2
		WHERE id = $3
	`
	ct, err := r.pool.Exec(ctx, query, c.Name, c.Covered, c.ID)
	if err != nil {
		return fmt.Errorf("update court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM public.canchas WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) DeleteByQuery(ctx context.Context, filter Filter) ([]*Court, error) {
	// The subselect keeps ? placeholders so the outer Dollar-format
	// builder renumbers the combined statement consistently.
	sub := filtered(squirrel.Select("id").From("public.canchas"), filter)
	subSQL, subArgs, err := sub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete courts subquery failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Delete("public.canchas").
		Where(squirrel.Expr("id IN ("+subSQL+")", subArgs...)).
		Suffix("RETURNING id, nombre, techada").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete courts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("delete courts by query failed: %w", err)
	}
	defer rows.Close()

	var deleted []*Court
	for rows.Next() {
		var c Court
		if err := rows.Scan(&c.ID, &c.Name, &c.Covered); err != nil {
			return nil, fmt.Errorf("scan deleted court failed: %w", err)
		}
		deleted = append(deleted, &c)
	}
	return deleted, rows.Err()
}
