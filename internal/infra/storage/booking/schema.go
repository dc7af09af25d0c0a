package booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StayBookings/pkg/sqlbuilder"
)

var schemaStatements = map[string][]string{
	sqlbuilder.DialectPostgres: {
		`CREATE TABLE IF NOT EXISTS bookings (
			id              BIGSERIAL PRIMARY KEY,
			fullname        VARCHAR(50)      NOT NULL,
			checkin_date    DATE             NOT NULL,
			checkout_date   DATE             NOT NULL,
			price           DOUBLE PRECISION NOT NULL CHECK (price >= 0),
			document_number VARCHAR(10)      NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS bookings_document_number_uidx ON bookings (document_number)`,
	},
	sqlbuilder.DialectSQLite: {
		`CREATE TABLE IF NOT EXISTS bookings (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			fullname        TEXT NOT NULL,
			checkin_date    TEXT NOT NULL,
			checkout_date   TEXT NOT NULL,
			price           REAL NOT NULL CHECK (price >= 0),
			document_number TEXT NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS bookings_document_number_uidx ON bookings (document_number)`,
	},
}

// EnsureSchema создает таблицу и уникальный индекс по номеру документа, если их нет.
// Безопасно вызывать повторно, существующие данные не затрагиваются.
// Индекс создается отдельно, чтобы уникальность появилась и у таблиц,
// созданных ранее без ограничения.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements[r.dialect] {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: EnsureSchema - %s: %v", ErrSchema, r.dialect, err)
		}
	}
	return nil
}
