package booking

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-StayBookings/internal/domain"
	"github.com/m04kA/SMC-StayBookings/pkg/ptr"
	"github.com/m04kA/SMC-StayBookings/pkg/sqlbuilder"
	"github.com/m04kA/SMC-StayBookings/pkg/types"
)

func setupRepository(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "bookings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	// SQLite допускает одного писателя, иначе параллельные вставки получают SQLITE_BUSY
	db.SetMaxOpenConns(1)

	repo, err := NewRepository(db, sqlbuilder.DialectSQLite)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(context.Background()))

	return repo, db
}

func testBooking(documentNumber string) *domain.Booking {
	return &domain.Booking{
		Fullname:       "Test User",
		CheckinDate:    types.MustParseDate("2024-06-01"),
		CheckoutDate:   types.MustParseDate("2024-06-10"),
		Price:          100.0,
		DocumentNumber: documentNumber,
	}
}

func TestNewRepository_UnknownDialect(t *testing.T) {
	_, err := NewRepository(nil, "oracle")
	assert.Error(t, err)
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	created, err := repo.Create(ctx, testBooking("1234567899"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repo.GetByDocumentNumber(ctx, "1234567899")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestRepository_Create_DuplicateDocumentNumber(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	first, err := repo.Create(ctx, testBooking("1234567899"))
	require.NoError(t, err)

	second := testBooking("1234567899")
	second.Fullname = "Someone Else"
	_, err = repo.Create(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicateDocumentNumber)

	got, err := repo.GetByDocumentNumber(ctx, "1234567899")
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestRepository_Create_ConcurrentDuplicates(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	const attempts = 8
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		succeeded  int
		duplicates int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, testBooking("5555555555"))

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if errors.Is(err, ErrDuplicateDocumentNumber) {
				duplicates++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, duplicates)
}

func TestRepository_GetByDocumentNumber_NotFound(t *testing.T) {
	repo, _ := setupRepository(t)

	_, err := repo.GetByDocumentNumber(context.Background(), "0000000000")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetAll(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	empty, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = repo.Create(ctx, testBooking("1111111111"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testBooking("2222222222"))
	require.NoError(t, err)

	first, err := repo.GetAll(ctx)
	require.NoError(t, err)
	second, err := repo.GetAll(ctx)
	require.NoError(t, err)

	assert.Len(t, first, 2)
	assert.ElementsMatch(t, first, second)
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	created, err := repo.Create(ctx, testBooking("1234567890"))
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, err := repo.Update(ctx, "1234567890", &domain.BookingPatch{Price: ptr.Ptr(150.0)})
		require.NoError(t, err)

		want := *created
		want.Price = 150.0
		assert.Equal(t, &want, updated)
	})

	t.Run("all mutable fields", func(t *testing.T) {
		updated, err := repo.Update(ctx, "1234567890", &domain.BookingPatch{
			Fullname:     ptr.Ptr("Updated User"),
			CheckinDate:  ptr.Ptr(types.MustParseDate("2024-07-01")),
			CheckoutDate: ptr.Ptr(types.MustParseDate("2024-07-05")),
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Updated User", updated.Fullname)
		assert.Equal(t, "2024-07-01", updated.CheckinDate.String())
		assert.Equal(t, "2024-07-05", updated.CheckoutDate.String())
		assert.Equal(t, 150.0, updated.Price)

		got, err := repo.GetByDocumentNumber(ctx, "1234567890")
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("empty patch returns current record", func(t *testing.T) {
		got, err := repo.Update(ctx, "1234567890", &domain.BookingPatch{})
		require.NoError(t, err)
		assert.Equal(t, "Updated User", got.Fullname)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.Update(ctx, "9999999999", &domain.BookingPatch{Price: ptr.Ptr(1.0)})
		assert.ErrorIs(t, err, ErrBookingNotFound)

		_, err = repo.Update(ctx, "9999999999", &domain.BookingPatch{})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	_, err := repo.Create(ctx, testBooking("1234567899"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "1234567899"))

	_, err = repo.GetByDocumentNumber(ctx, "1234567899")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "1234567899"), ErrBookingNotFound)
}

func TestRepository_EnsureSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	_, err := repo.Create(ctx, testBooking("1234567899"))
	require.NoError(t, err)

	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepository_EnsureSchema_AddsUniquenessToLegacyTable(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "legacy.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// таблица в исходном виде, без ограничения уникальности
	_, err = db.ExecContext(ctx, `CREATE TABLE bookings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fullname TEXT NOT NULL,
		checkin_date TEXT NOT NULL,
		checkout_date TEXT NOT NULL,
		price REAL NOT NULL,
		document_number TEXT
	)`)
	require.NoError(t, err)

	repo, err := NewRepository(db, sqlbuilder.DialectSQLite)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(ctx))

	_, err = repo.Create(ctx, testBooking("1234567899"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testBooking("1234567899"))
	assert.ErrorIs(t, err, ErrDuplicateDocumentNumber)
}

func TestRepository_StorageFailure(t *testing.T) {
	ctx := context.Background()
	repo, db := setupRepository(t)
	require.NoError(t, db.Close())

	_, err := repo.Create(ctx, testBooking("1234567899"))
	assert.ErrorIs(t, err, ErrExecQuery)

	_, err = repo.GetAll(ctx)
	assert.ErrorIs(t, err, ErrExecQuery)

	_, err = repo.GetByDocumentNumber(ctx, "1234567899")
	assert.ErrorIs(t, err, ErrScanRow)

	assert.ErrorIs(t, repo.Delete(ctx, "1234567899"), ErrExecQuery)
}
