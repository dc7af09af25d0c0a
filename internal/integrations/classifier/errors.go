package classifier

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут)
	ErrInternal = errors.New("classifier client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса классификации
	ErrInvalidResponse = errors.New("classifier client: invalid response")

	// ErrEmptyResult возвращается, когда сервис не вернул ни одной метки
	ErrEmptyResult = errors.New("classifier client: empty result")
)
