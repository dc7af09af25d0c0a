package booking

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/m04kA/SMC-StayBookings/internal/domain"
	"github.com/m04kA/SMC-StayBookings/pkg/types"
)

const documentNumberIndexName = "bookings_document_number_uidx"

// mongoBooking представление бронирования в коллекции
type mongoBooking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Fullname       string             `bson:"fullname"`
	CheckinDate    string             `bson:"checkin_date"`
	CheckoutDate   string             `bson:"checkout_date"`
	Price          float64            `bson:"price"`
	DocumentNumber string             `bson:"document_number"`
}

// MongoRepository репозиторий бронирований в коллекции MongoDB.
// Контракт и ошибки совпадают с Repository.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository создает новый экземпляр репозитория поверх коллекции
func NewMongoRepository(collection *mongo.Collection) *MongoRepository {
	return &MongoRepository{collection: collection}
}

// EnsureSchema создает уникальный индекс по номеру документа, если его нет
func (r *MongoRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "document_number", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(documentNumberIndexName),
	})
	if err != nil {
		return fmt.Errorf("%w: EnsureSchema - create index: %v", ErrSchema, err)
	}
	return nil
}

// Create создает новое бронирование
func (r *MongoRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	doc := toMongoBooking(booking)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateDocumentNumber
		}
		return nil, fmt.Errorf("%w: Create - insert document: %v", ErrExecQuery, err)
	}

	created := *booking
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		created.ID = id.Hex()
	}

	return &created, nil
}

// GetAll получает все бронирования в порядке хранилища
func (r *MongoRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - find: %v", ErrExecQuery, err)
	}
	defer cursor.Close(ctx)

	var docs []mongoBooking
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: GetAll - decode documents: %v", ErrScanRow, err)
	}

	bookings := make([]*domain.Booking, 0, len(docs))
	for i := range docs {
		booking, err := fromMongoBooking(&docs[i])
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - convert document: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// GetByDocumentNumber получает бронирование по номеру документа
func (r *MongoRepository) GetByDocumentNumber(ctx context.Context, documentNumber string) (*domain.Booking, error) {
	var doc mongoBooking
	err := r.collection.FindOne(ctx, bson.D{{Key: "document_number", Value: documentNumber}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDocumentNumber - find one: %v", ErrExecQuery, err)
	}

	booking, err := fromMongoBooking(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDocumentNumber - convert document: %v", ErrScanRow, err)
	}
	return booking, nil
}

// Update применяет patch и возвращает документ после обновления
func (r *MongoRepository) Update(ctx context.Context, documentNumber string, patch *domain.BookingPatch) (*domain.Booking, error) {
	if patch.IsEmpty() {
		return r.GetByDocumentNumber(ctx, documentNumber)
	}

	var doc mongoBooking
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.D{{Key: "document_number", Value: documentNumber}},
		bson.D{{Key: "$set", Value: patchToSet(patch)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - find one and update: %v", ErrExecQuery, err)
	}

	booking, err := fromMongoBooking(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - convert document: %v", ErrScanRow, err)
	}
	return booking, nil
}

// Delete удаляет бронирование по номеру документа
func (r *MongoRepository) Delete(ctx context.Context, documentNumber string) error {
	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: "document_number", Value: documentNumber}})
	if err != nil {
		return fmt.Errorf("%w: Delete - delete one: %v", ErrExecQuery, err)
	}

	if result.DeletedCount == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// patchToSet собирает $set только из заданных полей
func patchToSet(patch *domain.BookingPatch) bson.D {
	set := bson.D{}
	if patch.Fullname != nil {
		set = append(set, bson.E{Key: "fullname", Value: *patch.Fullname})
	}
	if patch.CheckinDate != nil {
		set = append(set, bson.E{Key: "checkin_date", Value: patch.CheckinDate.String()})
	}
	if patch.CheckoutDate != nil {
		set = append(set, bson.E{Key: "checkout_date", Value: patch.CheckoutDate.String()})
	}
	if patch.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *patch.Price})
	}
	return set
}

func toMongoBooking(b *domain.Booking) *mongoBooking {
	return &mongoBooking{
		Fullname:       b.Fullname,
		CheckinDate:    b.CheckinDate.String(),
		CheckoutDate:   b.CheckoutDate.String(),
		Price:          b.Price,
		DocumentNumber: b.DocumentNumber,
	}
}

func fromMongoBooking(doc *mongoBooking) (*domain.Booking, error) {
	checkin, err := types.ParseDate(doc.CheckinDate)
	if err != nil {
		return nil, err
	}
	checkout, err := types.ParseDate(doc.CheckoutDate)
	if err != nil {
		return nil, err
	}

	return &domain.Booking{
		ID:             doc.ID.Hex(),
		Fullname:       doc.Fullname,
		CheckinDate:    checkin,
		CheckoutDate:   checkout,
		Price:          doc.Price,
		DocumentNumber: doc.DocumentNumber,
	}, nil
}
