package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The exclusion constraint stores each booking as a half-open range of
// absolute minutes (day*1440 + hour*60), so two transactions that both
// pass the application-level conflict check cannot commit overlapping
// rows for the same court. It also covers a booking wrapping in from
// the previous day.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`CREATE TABLE IF NOT EXISTS public.canchas (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		nombre VARCHAR(40),
		techada BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS public.reservas (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		id_cancha BIGINT NOT NULL REFERENCES public.canchas(id) ON DELETE CASCADE,
		dia INT NOT NULL CHECK (dia >= 0),
		hora SMALLINT NOT NULL CHECK (hora >= 0 AND hora < 24),
		duracion_minutos INT NOT NULL CHECK (duracion_minutos > 0 AND duracion_minutos < 1440),
		telefono VARCHAR NOT NULL,
		nombre_contacto VARCHAR,
		inicio_abs BIGINT GENERATED ALWAYS AS (dia::bigint * 1440 + hora * 60) STORED,
		fin_abs BIGINT GENERATED ALWAYS AS (dia::bigint * 1440 + hora * 60 + duracion_minutos) STORED,
		CONSTRAINT reservas_sin_solapamiento
			EXCLUDE USING gist (id_cancha WITH =, int8range(inicio_abs, fin_abs) WITH &&)
	)`,
	`CREATE INDEX IF NOT EXISTS reservas_id_cancha_dia_idx
		ON public.reservas (id_cancha, dia)`,
}

// EnsureSchema creates the tables and constraints if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement failed: %w", err)
		}
	}
	return nil
}
