package validation

import (
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-StayBookings/internal/domain"
)

var (
	fullnamePattern       = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s]+$`)
	documentNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// rule одна проверка поля: тег validator/v10 и сообщение при его нарушении
type rule struct {
	tag     string
	message string
}

// Правила проверяются по одному, чтобы в ответ попали все нарушения поля
var (
	fullnameRules = []rule{
		{tag: "max=" + strconv.Itoa(domain.MaxFullnameLength), message: msgFullnameTooLong},
		{tag: "fullname", message: msgFullnameLetters},
	}
	dateRules = []rule{
		{tag: "datetime=" + domain.DateFormat, message: msgDateFormat},
	}
	priceRules = []rule{
		{tag: "gte=" + strconv.Itoa(domain.MinPrice), message: msgPriceNegative},
	}
	documentNumberRules = []rule{
		{tag: "len=" + strconv.Itoa(domain.DocumentNumberLength), message: msgDocumentLength},
		{tag: "docnumber", message: msgDocumentDigits},
	}
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "fullname", func(fl validator.FieldLevel) bool {
		return fullnamePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "docnumber", func(fl validator.FieldLevel) bool {
		return documentNumberPattern.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// check прогоняет значение через все правила и собирает сообщения
func check(errs FieldErrors, field string, value interface{}, rules []rule) {
	for _, r := range rules {
		if err := validate.Var(value, r.tag); err != nil {
			errs.add(field, r.message)
		}
	}
}

// ValidDocumentNumber проверяет формат номера документа (ровно 10 цифр)
func ValidDocumentNumber(doc string) bool {
	return documentNumberPattern.MatchString(doc)
}
