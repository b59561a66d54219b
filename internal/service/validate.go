package service

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/dtroode/recipe-server/internal/model"
)

const (
	maxNameLength     = 255
	minPasswordLength = 5

	priceMaxDigits = 5
	pricePlaces    = 2
)

var validate = validator.New()

func validateEmail(v *model.ValidationError, email string) {
	switch {
	case strings.TrimSpace(email) == "":
		v.Add("email", model.MsgBlank)
	case utf8.RuneCountInString(email) > maxNameLength:
		v.Add("email", model.MsgTooLong)
	case validate.Var(email, "email") != nil:
		v.Add("email", model.MsgInvalidEmail)
	}
}

func validatePassword(v *model.ValidationError, password string) {
	switch {
	case password == "":
		v.Add("password", model.MsgBlank)
	case utf8.RuneCountInString(password) < minPasswordLength:
		v.Add("password", model.MsgPasswordShort)
	}
}

// validateText checks a trimmed, length-limited text field.
func validateText(v *model.ValidationError, field, value string, allowBlank bool) {
	if !allowBlank && value == "" {
		v.Add(field, model.MsgBlank)
		return
	}
	if utf8.RuneCountInString(value) > maxNameLength {
		v.Add(field, model.MsgTooLong)
	}
}

// validatePrice enforces NUMERIC(5,2): at most 5 significant digits with at
// most 2 after the decimal point. Trailing zeros count.
func validatePrice(v *model.ValidationError, price decimal.Decimal) {
	if price.IsNegative() {
		v.Add("price", model.MsgNegative)
		return
	}

	digits := len(price.Coefficient().String())
	places := 0
	if exp := price.Exponent(); exp < 0 {
		places = int(-exp)
	} else {
		digits += int(exp)
	}
	whole := digits - places
	if whole < 0 {
		whole = 0
		digits = places
	}

	switch {
	case digits > priceMaxDigits:
		v.Add("price", model.MsgPriceDigits)
	case places > pricePlaces:
		v.Add("price", model.MsgPricePlaces)
	case whole > priceMaxDigits-pricePlaces:
		v.Add("price", model.MsgPriceWhole)
	}
}
