package validator

import "regexp"

var (
	// ISO 4217 subset for common international commerce.
	validCurrencyCodes = map[string]bool{
		"USD": true, "EUR": true, "GBP": true, "JPY": true, "AUD": true, "CAD": true,
		"CHF": true, "CNY": true, "SEK": true, "NZD": true, "MXN": true, "SGD": true,
		"HKD": true, "NOK": true, "KRW": true, "TRY": true, "INR": true, "BRL": true,
		"ZAR": true, "PLN": true, "CZK": true, "HUF": true, "ILS": true, "CLP": true,
		"PHP": true, "AED": true, "COP": true, "SAR": true, "MYR": true, "RON": true,
		"THB": true, "BGN": true, "ISK": true, "DKK": true, "UAH": true,
	}

	currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

// NonNegativeAmount fails for amounts below zero.
func NonNegativeAmount[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value >= 0
		},
		Error: ValidationError{Field: field, Message: "amount cannot be negative"},
	}
}

// ValidCurrencyCode accepts a known upper-case ISO 4217 code.
func ValidCurrencyCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return currencyCodeRegex.MatchString(value) && validCurrencyCodes[value]
		},
		Error: ValidationError{Field: field, Message: "must be a valid ISO 4217 currency code"},
	}
}
