package validation

import (
	"github.com/m04kA/SMC-StayBookings/internal/domain"
	"github.com/m04kA/SMC-StayBookings/pkg/types"
)

// ValidateBooking проверяет полный набор полей нового бронирования.
// Возвращает либо бронирование, либо FieldErrors со всеми нарушениями.
func ValidateBooking(raw RawBooking) (*domain.Booking, error) {
	errs := FieldErrors{}

	if raw.Fullname == nil {
		errs.add(FieldFullname, msgRequired)
	}
	if raw.CheckinDate == nil {
		errs.add(FieldCheckinDate, msgRequired)
	}
	if raw.CheckoutDate == nil {
		errs.add(FieldCheckoutDate, msgRequired)
	}
	if raw.Price == nil {
		errs.add(FieldPrice, msgRequired)
	}
	if raw.DocumentNumber == nil {
		errs.add(FieldDocumentNumber, msgRequired)
	}

	fields := checkPresent(errs, raw)
	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.Booking{
		Fullname:       *raw.Fullname,
		CheckinDate:    *fields.checkin,
		CheckoutDate:   *fields.checkout,
		Price:          *fields.price,
		DocumentNumber: *raw.DocumentNumber,
	}, nil
}

// ValidateBookingPatch проверяет только переданные поля.
// Пустой запрос валиден и дает пустой patch.
// document_number проверяется, но в patch не попадает: номер документа неизменяем.
func ValidateBookingPatch(raw RawBooking) (*domain.BookingPatch, error) {
	errs := FieldErrors{}

	fields := checkPresent(errs, raw)
	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.BookingPatch{
		Fullname:     raw.Fullname,
		CheckinDate:  fields.checkin,
		CheckoutDate: fields.checkout,
		Price:        fields.price,
	}, nil
}

type parsedFields struct {
	checkin  *types.Date
	checkout *types.Date
	price    *float64
}

// checkPresent применяет правила к присутствующим полям и разбирает даты и цену
func checkPresent(errs FieldErrors, raw RawBooking) parsedFields {
	var parsed parsedFields

	if raw.Fullname != nil {
		check(errs, FieldFullname, *raw.Fullname, fullnameRules)
	}

	if raw.CheckinDate != nil {
		parsed.checkin = parseDate(errs, FieldCheckinDate, *raw.CheckinDate)
	}
	if raw.CheckoutDate != nil {
		parsed.checkout = parseDate(errs, FieldCheckoutDate, *raw.CheckoutDate)
	}

	if raw.Price != nil {
		price, err := raw.Price.Float64()
		if err != nil {
			errs.add(FieldPrice, msgNotANumber)
		} else {
			check(errs, FieldPrice, price, priceRules)
			parsed.price = &price
		}
	}

	if raw.DocumentNumber != nil {
		check(errs, FieldDocumentNumber, *raw.DocumentNumber, documentNumberRules)
	}

	return parsed
}

func parseDate(errs FieldErrors, field, value string) *types.Date {
	before := len(errs[field])
	check(errs, field, value, dateRules)
	if len(errs[field]) > before {
		return nil
	}

	d, err := types.ParseDate(value)
	if err != nil {
		errs.add(field, msgDateFormat)
		return nil
	}
	return &d
}
