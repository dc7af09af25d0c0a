package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-StayBookings/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StayBookings/internal/service/bookings/models"
	"github.com/m04kA/SMC-StayBookings/internal/validation"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create валидирует данные и создает бронирование.
// Невалидные данные до хранилища не доходят.
func (s *Service) Create(ctx context.Context, raw validation.RawBooking) (*models.BookingResponse, error) {
	booking, err := validation.ValidateBooking(raw)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	s.logger.Info("Create: creating booking document_number=%s", booking.DocumentNumber)

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateDocumentNumber) {
			s.logger.Warn("Create: document_number=%s already exists", booking.DocumentNumber)
			return nil, ErrDuplicateDocumentNumber
		}
		s.logger.Error("Create: repository error for document_number=%s: %v", booking.DocumentNumber, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created booking id=%s document_number=%s", created.ID, created.DocumentNumber)
	return models.FromDomainBooking(created), nil
}

// GetAll получает все бронирования
func (s *Service) GetAll(ctx context.Context) ([]*models.BookingResponse, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByDocumentNumber получает бронирование по номеру документа.
// Формат номера проверяет вызывающая сторона.
func (s *Service) GetByDocumentNumber(ctx context.Context, documentNumber string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByDocumentNumber(ctx, documentNumber)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByDocumentNumber: booking document_number=%s not found", documentNumber)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByDocumentNumber: repository error for document_number=%s: %v", documentNumber, err)
		return nil, fmt.Errorf("%w: GetByDocumentNumber - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Update частично обновляет бронирование: проверяются и применяются только переданные поля.
// Пустой запрос ничего не меняет и возвращает текущее состояние.
func (s *Service) Update(ctx context.Context, documentNumber string, raw validation.RawBooking) (*models.BookingResponse, error) {
	patch, err := validation.ValidateBookingPatch(raw)
	if err != nil {
		s.logger.Warn("Update: validation failed for document_number=%s: %v", documentNumber, err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if patch.IsEmpty() {
		s.logger.Info("Update: empty patch for document_number=%s, returning current state", documentNumber)
		return s.GetByDocumentNumber(ctx, documentNumber)
	}

	updated, err := s.bookingRepo.Update(ctx, documentNumber, patch)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking document_number=%s not found", documentNumber)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for document_number=%s: %v", documentNumber, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking document_number=%s", documentNumber)
	return models.FromDomainBooking(updated), nil
}

// Delete удаляет бронирование по номеру документа
func (s *Service) Delete(ctx context.Context, documentNumber string) error {
	if err := s.bookingRepo.Delete(ctx, documentNumber); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking document_number=%s not found", documentNumber)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for document_number=%s: %v", documentNumber, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking document_number=%s", documentNumber)
	return nil
}
