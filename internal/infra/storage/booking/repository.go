package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StayBookings/internal/domain"
	"github.com/m04kA/SMC-StayBookings/pkg/sqlbuilder"
)

const tableName = "bookings"

var bookingColumns = []string{
	"id",
	"fullname",
	"checkin_date",
	"checkout_date",
	"price",
	"document_number",
}

// Repository репозиторий бронирований в SQL хранилище (PostgreSQL или SQLite)
type Repository struct {
	db      DBExecutor
	sb      squirrel.StatementBuilderType
	dialect string
}

// NewRepository создает новый экземпляр репозитория бронирований
// для указанного диалекта (sqlbuilder.DialectPostgres или sqlbuilder.DialectSQLite)
func NewRepository(db DBExecutor, dialect string) (*Repository, error) {
	sb, err := sqlbuilder.For(dialect)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db, sb: sb, dialect: dialect}, nil
}

// Create создает новое бронирование.
// Уникальность номера документа обеспечивается уникальным индексом,
// предварительная проверка существования не выполняется.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := r.sb.Insert(tableName).
		Columns(
			"fullname",
			"checkin_date",
			"checkout_date",
			"price",
			"document_number",
		).
		Values(
			booking.Fullname,
			booking.CheckinDate.String(),
			booking.CheckoutDate.String(),
			booking.Price,
			booking.DocumentNumber,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *booking
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateDocumentNumber
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// GetAll получает все бронирования в порядке хранилища
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := r.sb.Select(bookingColumns...).
		From(tableName).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByDocumentNumber получает бронирование по номеру документа
func (r *Repository) GetByDocumentNumber(ctx context.Context, documentNumber string) (*domain.Booking, error) {
	query, args, err := r.sb.Select(bookingColumns...).
		From(tableName).
		Where(squirrel.Eq{"document_number": documentNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDocumentNumber - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDocumentNumber - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// Update применяет к бронированию только заданные поля patch
// и возвращает бронирование после обновления.
// Обновление и чтение результата выполняются одним запросом (RETURNING).
func (r *Repository) Update(ctx context.Context, documentNumber string, patch *domain.BookingPatch) (*domain.Booking, error) {
	if patch.IsEmpty() {
		return r.GetByDocumentNumber(ctx, documentNumber)
	}

	updateBuilder := r.sb.Update(tableName).
		Where(squirrel.Eq{"document_number": documentNumber})

	if patch.Fullname != nil {
		updateBuilder = updateBuilder.Set("fullname", *patch.Fullname)
	}
	if patch.CheckinDate != nil {
		updateBuilder = updateBuilder.Set("checkin_date", patch.CheckinDate.String())
	}
	if patch.CheckoutDate != nil {
		updateBuilder = updateBuilder.Set("checkout_date", patch.CheckoutDate.String())
	}
	if patch.Price != nil {
		updateBuilder = updateBuilder.Set("price", *patch.Price)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// Delete удаляет бронирование по номеру документа
func (r *Repository) Delete(ctx context.Context, documentNumber string) error {
	query, args, err := r.sb.Delete(tableName).
		Where(squirrel.Eq{"document_number": documentNumber}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.Fullname,
		&booking.CheckinDate,
		&booking.CheckoutDate,
		&booking.Price,
		&booking.DocumentNumber,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
