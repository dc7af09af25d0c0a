package bookings

import "errors"

var (
	// ErrValidationFailed возвращается, когда данные бронирования не прошли валидацию.
	// Подробности по полям доступны через errors.As(err, &validation.FieldErrors{}).
	ErrValidationFailed = errors.New("validation failed")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrDuplicateDocumentNumber возвращается, когда бронирование с таким номером документа уже есть
	ErrDuplicateDocumentNumber = errors.New("document number already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса (недоступность хранилища)
	ErrInternal = errors.New("service: internal error")
)
