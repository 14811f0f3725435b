package checkout

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nexusshop/storefront/internal/domain"
)

// Translator resolves message keys to display text
type Translator interface {
	T(key string) string
}

// FieldErrors maps a form field name to its message. Empty means valid.
type FieldErrors map[string]string

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateShipping checks every shipping field and collects all violations
func ValidateShipping(info domain.ShippingInfo, tr Translator) FieldErrors {
	errs := FieldErrors{}

	if blank(info.FirstName) {
		errs["firstName"] = tr.T("error.firstNameRequired")
	}
	if blank(info.LastName) {
		errs["lastName"] = tr.T("error.lastNameRequired")
	}
	if blank(info.Email) {
		errs["email"] = tr.T("error.emailRequired")
	} else if !emailPattern.MatchString(info.Email) {
		errs["email"] = tr.T("error.invalidEmail")
	}
	if blank(info.Address) {
		errs["address"] = tr.T("error.addressRequired")
	}
	if blank(info.City) {
		errs["city"] = tr.T("error.cityRequired")
	}
	if blank(info.State) {
		errs["state"] = tr.T("error.stateRequired")
	}
	if blank(info.ZipCode) {
		errs["zipCode"] = tr.T("error.zipRequired")
	}

	return errs
}

// ValidatePayment checks every payment field and collects all violations.
// The expiry date is only checked for presence.
func ValidatePayment(info domain.PaymentInfo, tr Translator) FieldErrors {
	errs := FieldErrors{}

	if blank(info.CardNumber) {
		errs["cardNumber"] = tr.T("error.cardNumberRequired")
	} else if !validCardNumber(info.CardNumber) {
		errs["cardNumber"] = tr.T("error.invalidCardNumber")
	}
	if blank(info.CardName) {
		errs["cardName"] = tr.T("error.cardNameRequired")
	}
	if blank(info.ExpiryDate) {
		errs["expiryDate"] = tr.T("error.expiryRequired")
	}
	if blank(info.CVV) {
		errs["cvv"] = tr.T("error.cvvRequired")
	} else if utf8.RuneCountInString(info.CVV) < 3 {
		errs["cvv"] = tr.T("error.invalidCvv")
	}

	return errs
}

// validCardNumber requires exactly 16 digits once whitespace is removed
func validCardNumber(s string) bool {
	digits := stripSpace(s)
	if len(digits) != 16 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
