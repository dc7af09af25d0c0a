package validation

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Имена полей в JSON
const (
	FieldFullname       = "fullname"
	FieldCheckinDate    = "checkin_date"
	FieldCheckoutDate   = "checkout_date"
	FieldPrice          = "price"
	FieldDocumentNumber = "document_number"
)

// RawBooking входные данные бронирования до валидации.
// nil поле означает, что поле отсутствует в запросе (или равно null).
type RawBooking struct {
	Fullname       *string `json:"fullname"`
	CheckinDate    *string `json:"checkin_date"`
	CheckoutDate   *string `json:"checkout_date"`
	Price          *Number `json:"price"`
	DocumentNumber *string `json:"document_number"`
}

// Number числовое значение из JSON.
// Принимает как число (100.5), так и строку с числом ("100.5");
// проверка того, что это действительно число, выполняется при валидации.
type Number string

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = Number(strings.TrimSpace(s))
		return nil
	}
	*n = Number(data)
	return nil
}

// Float64 возвращает значение как конечное число с плавающей точкой
func (n Number) Float64() (float64, error) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}

// FromDecodeError преобразует ошибку несоответствия типа JSON в ошибку поля.
// Для остальных ошибок декодирования возвращает false.
// Все поля RawBooking, кроме цены, строковые, поэтому несовпадение типа всегда означает "не строка".
func FromDecodeError(err error) (FieldErrors, bool) {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil, false
	}

	errs := FieldErrors{}
	errs.add(typeErr.Field, msgNotAString)
	return errs, true
}

// BookingDecodeErrors дополняет ошибки типов полей нарушениями остальных полей нового бронирования.
// encoding/json продолжает разбор после несовпадения типа, поэтому raw содержит прочие поля.
func BookingDecodeErrors(raw RawBooking, typeErrs FieldErrors) FieldErrors {
	return mergeDecodeErrors(raw, typeErrs, func(r RawBooking) error {
		_, err := ValidateBooking(r)
		return err
	})
}

// PatchDecodeErrors то же для частичного обновления
func PatchDecodeErrors(raw RawBooking, typeErrs FieldErrors) FieldErrors {
	return mergeDecodeErrors(raw, typeErrs, func(r RawBooking) error {
		_, err := ValidateBookingPatch(r)
		return err
	})
}

func mergeDecodeErrors(raw RawBooking, typeErrs FieldErrors, validateFn func(RawBooking) error) FieldErrors {
	// поле с неверным типом могло остаться заполненным нулевым значением
	for field := range typeErrs {
		raw.clear(field)
	}

	errs := FieldErrors{}
	var fieldErrs FieldErrors
	if err := validateFn(raw); errors.As(err, &fieldErrs) {
		for field, messages := range fieldErrs {
			errs[field] = messages
		}
	}
	for field, messages := range typeErrs {
		errs[field] = messages
	}
	return errs
}

func (r *RawBooking) clear(field string) {
	switch field {
	case FieldFullname:
		r.Fullname = nil
	case FieldCheckinDate:
		r.CheckinDate = nil
	case FieldCheckoutDate:
		r.CheckoutDate = nil
	case FieldPrice:
		r.Price = nil
	case FieldDocumentNumber:
		r.DocumentNumber = nil
	}
}
