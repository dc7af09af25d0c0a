package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/m04kA/SMC-StayBookings/internal/domain"
	"github.com/m04kA/SMC-StayBookings/pkg/ptr"
	"github.com/m04kA/SMC-StayBookings/pkg/types"
)

func TestPatchToSet_OnlyPresentFields(t *testing.T) {
	set := patchToSet(&domain.BookingPatch{
		Fullname:    ptr.Ptr("Updated User"),
		CheckinDate: ptr.Ptr(types.MustParseDate("2024-07-01")),
		Price:       ptr.Ptr(150.0),
	})

	assert.Equal(t, bson.D{
		{Key: "fullname", Value: "Updated User"},
		{Key: "checkin_date", Value: "2024-07-01"},
		{Key: "price", Value: 150.0},
	}, set)
}

func TestMongoBooking_RoundTrip(t *testing.T) {
	original := testBooking("1234567899")

	doc := toMongoBooking(original)
	doc.ID = primitive.NewObjectID()

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var decoded mongoBooking
	require.NoError(t, bson.Unmarshal(raw, &decoded))

	got, err := fromMongoBooking(&decoded)
	require.NoError(t, err)

	want := *original
	want.ID = doc.ID.Hex()
	assert.Equal(t, &want, got)
}

func TestFromMongoBooking_InvalidStoredDate(t *testing.T) {
	_, err := fromMongoBooking(&mongoBooking{
		ID:             primitive.NewObjectID(),
		CheckinDate:    "06/01/2024",
		CheckoutDate:   "2024-06-10",
		DocumentNumber: "1234567899",
	})
	assert.ErrorIs(t, err, types.ErrInvalidDate)
}

func storedBookingDoc(documentNumber string, price float64) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "fullname", Value: "Test User"},
		{Key: "checkin_date", Value: "2024-06-01"},
		{Key: "checkout_date", Value: "2024-06-10"},
		{Key: "price", Value: price},
		{Key: "document_number", Value: documentNumber},
	}
}

func TestMongoRepository_ErrorMapping(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	ctx := context.Background()

	mt.Run("create assigns object id", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		created, err := repo.Create(ctx, testBooking("1234567899"))
		require.NoError(mt, err)

		_, err = primitive.ObjectIDFromHex(created.ID)
		assert.NoError(mt, err)
		assert.Equal(mt, "1234567899", created.DocumentNumber)
	})

	mt.Run("create duplicate document number", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: bookings index: bookings_document_number_uidx",
		}))

		_, err := repo.Create(ctx, testBooking("1234567899"))
		assert.ErrorIs(mt, err, ErrDuplicateDocumentNumber)
	})

	mt.Run("create command failure", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    8000,
			Message: "insert failed",
			Name:    "AtlasError",
		}))

		_, err := repo.Create(ctx, testBooking("1234567899"))
		assert.ErrorIs(mt, err, ErrExecQuery)
		assert.NotErrorIs(mt, err, ErrDuplicateDocumentNumber)
	})

	mt.Run("get all keeps stored order", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			storedBookingDoc("1111111111", 100.0),
			storedBookingDoc("2222222222", 200.0),
		))

		bookings, err := repo.GetAll(ctx)
		require.NoError(mt, err)
		require.Len(mt, bookings, 2)
		assert.Equal(mt, "1111111111", bookings[0].DocumentNumber)
		assert.Equal(mt, "2222222222", bookings[1].DocumentNumber)
	})

	mt.Run("get by document number found", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			storedBookingDoc("1234567899", 100.0),
		))

		booking, err := repo.GetByDocumentNumber(ctx, "1234567899")
		require.NoError(mt, err)
		assert.Equal(mt, "Test User", booking.Fullname)
		assert.Equal(mt, "2024-06-01", booking.CheckinDate.String())
	})

	mt.Run("get by document number not found", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByDocumentNumber(ctx, "0000000000")
		assert.ErrorIs(mt, err, ErrBookingNotFound)
	})

	mt.Run("update returns document after update", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: storedBookingDoc("1234567899", 150.0)},
		))

		updated, err := repo.Update(ctx, "1234567899", &domain.BookingPatch{Price: ptr.Ptr(150.0)})
		require.NoError(mt, err)
		assert.Equal(mt, 150.0, updated.Price)
		assert.Equal(mt, "1234567899", updated.DocumentNumber)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "findAndModify", started.CommandName)
		assert.True(mt, started.Command.Lookup("new").Boolean())
	})

	mt.Run("update not found", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: nil},
		))

		_, err := repo.Update(ctx, "0000000000", &domain.BookingPatch{Price: ptr.Ptr(150.0)})
		assert.ErrorIs(mt, err, ErrBookingNotFound)
	})

	mt.Run("delete existing", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, repo.Delete(ctx, "1234567899"))
	})

	mt.Run("delete not found", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(ctx, "0000000000")
		assert.ErrorIs(mt, err, ErrBookingNotFound)
	})

	mt.Run("ensure schema creates unique index", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, repo.EnsureSchema(ctx))

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "createIndexes", started.CommandName)
	})
}
