// Package validator builds declarative input checks from small Rule values.
//
// Every exported rule constructor returns a Rule pairing a Check func with
// the field-level error reported when the check fails. Apply runs the rules
// in order and collects every failure into ValidationErrors, which satisfies
// the error interface, so callers get all problems of a request at once.
//
// # Usage
//
//	if err := validator.Apply(
//		validator.ValidEmail("email", email),
//		validator.RequiredString("password", password),
//		validator.MaxLenString("password", password, 72),
//	); err != nil {
//		return nil, errors.Join(ErrInvalidInput, err)
//	}
//
// ExtractValidationErrors recovers the collected errors through wrapping,
// e.g. to render them per field at the HTTP layer.
package validator
