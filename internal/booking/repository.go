package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	GetFullByID(ctx context.Context, id int64) (*FullBooking, error)

	// GetByCourt returns the first (lowest-id) booking for the court.
	GetByCourt(ctx context.Context, courtID int64) (*Booking, error)

	List(ctx context.Context, filter Filter) ([]*Booking, error)
	ListFull(ctx context.Context, filter Filter) ([]*FullBooking, error)
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id int64) error
	DeleteByQuery(ctx context.Context, filter Filter) ([]*Booking, error)

	// HasConflict checks whether any other booking for the court occupies
	// time inside the candidate interval, including the overflow portion
	// on day+1 when the interval wraps past midnight. excludeID > 0
	// removes that booking from the search (used during updates).
	HasConflict(ctx context.Context, courtID int64, day, startHour, durationMinutes int, excludeID int64) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// classify maps storage-level constraint failures onto the domain
// errors. The exclusion constraint on absolute minutes backstops the
// check-then-insert race, so a lost race still surfaces as a conflict.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ExclusionViolation:
			return ErrTimeConflict
		case pgerrcode.ForeignKeyViolation:
			return ErrCourtNotFound
		}
	}
	return err
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservas").
		Columns("id_cancha", "dia", "hora", "duracion_minutos", "telefono", "nombre_contacto").
		Values(b.CourtID, b.Day, b.StartHour, b.DurationMinutes, b.Phone, b.ContactName).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		if err = classify(err); err == ErrTimeConflict || err == ErrCourtNotFound {
			return err
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	const query = `
		SELECT id, id_cancha, dia, hora, duracion_minutos, telefono, nombre_contacto
		FROM public.reservas
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var b Booking
	if err := row.Scan(&b.ID, &b.CourtID, &b.Day, &b.StartHour, &b.DurationMinutes, &b.Phone, &b.ContactName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) GetFullByID(ctx context.Context, id int64) (*FullBooking, error) {
	const query = `
		SELECT r.id, r.id_cancha, r.dia, r.hora, r.duracion_minutos, r.telefono, r.nombre_contacto,
		       c.id, c.nombre, c.techada
		FROM public.reservas r
		JOIN public.canchas c ON r.id_cancha = c.id
		WHERE r.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var fb FullBooking
	if err := row.Scan(
		&fb.Booking.ID, &fb.Booking.CourtID, &fb.Booking.Day, &fb.Booking.StartHour,
		&fb.Booking.DurationMinutes, &fb.Booking.Phone, &fb.Booking.ContactName,
		&fb.Court.ID, &fb.Court.Name, &fb.Court.Covered,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get full booking failed: %w", err)
	}
	return &fb, nil
}

func (r *pgxRepository) GetByCourt(ctx context.Context, courtID int64) (*Booking, error) {
	const query = `
		SELECT id, id_cancha, dia, hora, duracion_minutos, telefono, nombre_contacto
		FROM public.reservas
		WHERE id_cancha = $1
		ORDER BY id ASC
		LIMIT 1
	`
	row := r.pool.QueryRow(ctx, query, courtID)

	var b Booking
	if err := row.Scan(&b.ID, &b.CourtID, &b.Day, &b.StartHour, &b.DurationMinutes, &b.Phone, &b.ContactName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking by court failed: %w", err)
	}
	return &b, nil
}

// filtered builds the shared WHERE conjunction for List, ListFull and
// DeleteByQuery. prefix qualifies booking columns when joining.
func filtered(b squirrel.SelectBuilder, filter Filter, prefix string) squirrel.SelectBuilder {
	if filter.CourtID != nil {
		b = b.Where(squirrel.Eq{prefix + "id_cancha": *filter.CourtID})
	}
	if cond := filter.Day.Sqlizer(prefix + "dia"); cond != nil {
		b = b.Where(cond)
	}
	if cond := filter.StartHour.Sqlizer(prefix + "hora"); cond != nil {
		b = b.Where(cond)
	}
	if cond := filter.Duration.Sqlizer(prefix + "duracion_minutos"); cond != nil {
		b = b.Where(cond)
	}
	if filter.Phone != nil {
		b = b.Where(squirrel.Eq{prefix + "telefono": *filter.Phone})
	}
	if filter.ContactName != nil {
		b = b.Where(squirrel.Eq{prefix + "nombre_contacto": *filter.ContactName})
	}

	b = b.OrderBy(prefix + "id ASC")

	if filter.Page != nil {
		b = b.Offset(filter.Page.Offset).Limit(filter.Page.Limit)
	}
	return b
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	builder := filtered(
		psql.Select("id", "id_cancha", "dia", "hora", "duracion_minutos", "telefono", "nombre_contacto").
			From("public.reservas"),
		filter, "",
	)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.CourtID, &b.Day, &b.StartHour, &b.DurationMinutes, &b.Phone, &b.ContactName); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}

func (r *pgxRepository) ListFull(ctx context.Context, filter Filter) ([]*FullBooking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	builder := filtered(
		psql.Select(
			"r.id", "r.id_cancha", "r.dia", "r.hora", "r.duracion_minutos", "r.telefono", "r.nombre_contacto",
			"c.id", "c.nombre", "c.techada",
		).
			From("public.reservas r").
			Join("public.canchas c ON r.id_cancha = c.id"),
		filter, "r.",
	)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list full bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list full bookings failed: %w", err)
	}
	defer rows.Close()

	var result []*FullBooking
	for rows.Next() {
		var fb FullBooking
		if err := rows.Scan(
			&fb.Booking.ID, &fb.Booking.CourtID, &fb.Booking.Day, &fb.Booking.StartHour,
			&fb.Booking.DurationMinutes, &fb.Booking.Phone, &fb.Booking.ContactName,
			&fb.Court.ID, &fb.Court.Name, &fb.Court.Covered,
		); err != nil {
			return nil, fmt.Errorf("scan full booking failed: %w", err)
		}
		result = append(result, &fb)
	}
	return result, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservas").
		Set("dia", b.Day).
		Set("hora", b.StartHour).
		Set("duracion_minutos", b.DurationMinutes).
		Set("telefono", b.Phone).
		Set("nombre_contacto", b.ContactName).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if err = classify(err); err == ErrTimeConflict {
			return err
		}
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM public.reservas WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) DeleteByQuery(ctx context.Context, filter Filter) ([]*Booking, error) {
	// The subselect keeps ? placeholders so the outer Dollar-format
	// builder renumbers the combined statement consistently.
	sub := filtered(squirrel.Select("id").From("public.reservas"), filter, "")
	subSQL, subArgs, err := sub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete bookings subquery failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Delete("public.reservas").
		Where(squirrel.Expr("id IN ("+subSQL+")", subArgs...)).
		Suffix("RETURNING id, id_cancha, dia, hora, duracion_minutos, telefono, nombre_contacto").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("delete bookings by query failed: %w", err)
	}
	defer rows.Close()

	var deleted []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.CourtID, &b.Day, &b.StartHour, &b.DurationMinutes, &b.Phone, &b.ContactName); err != nil {
			return nil, fmt.Errorf("scan deleted booking failed: %w", err)
		}
		deleted = append(deleted, &b)
	}
	return deleted, rows.Err()
}

func (r *pgxRepository) HasConflict(ctx context.Context, courtID int64, day, startHour, durationMinutes int, excludeID int64) (bool, error) {
	windows := OccupiedWindows(day, startHour, durationMinutes)

	conflicts := make(squirrel.Or, 0, 2*len(windows))
	for _, w := range windows {
		conflicts = append(conflicts, squirrel.And{
			squirrel.Eq{"dia": w.Day},
			squirrel.Expr("60 * hora < ?", w.EndMin),
			squirrel.Expr("60 * hora + duracion_minutos > ?", w.StartMin),
		})
		// A booking stored on the previous day may wrap past midnight into
		// this window. Its overflow occupies [0, 60*hora+dur-1440) here.
		if w.Day > 0 && w.EndMin > 0 {
			conflicts = append(conflicts, squirrel.And{
				squirrel.Eq{"dia": w.Day - 1},
				squirrel.Expr("60 * hora + duracion_minutos - 1440 > ?", w.StartMin),
			})
		}
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sub := psql.Select("1").
		From("public.reservas").
		Where(squirrel.Eq{"id_cancha": courtID}).
		Where(conflicts)

	if excludeID > 0 {
		sub = sub.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := sub.ToSql()
	if err != nil {
		return false, fmt.Errorf("build conflict check query failed: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, "SELECT EXISTS ("+sql+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("conflict check failed: %w", err)
	}
	return exists, nil
}
