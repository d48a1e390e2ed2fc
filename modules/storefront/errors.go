package storefront

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/storekit/handler"
	"github.com/dmitrymomot/storekit/pkg/auth"
	"github.com/dmitrymomot/storekit/pkg/jwt"
	"github.com/dmitrymomot/storekit/pkg/ratelimiter"
	"github.com/dmitrymomot/storekit/pkg/tenant"
	"github.com/dmitrymomot/storekit/pkg/validator"
	"github.com/dmitrymomot/storekit/svc/account"
	"github.com/dmitrymomot/storekit/svc/catalog"
)

// API error codes beyond the generic handler set.
var (
	ErrInvalidCredentials = handler.NewHTTPError(http.StatusUnauthorized, "invalid_credentials")
	ErrInvalidToken       = handler.NewHTTPError(http.StatusUnauthorized, "invalid_token")
	ErrEmailTaken         = handler.NewHTTPError(http.StatusConflict, "email_taken")
	ErrStoreCodeTaken     = handler.NewHTTPError(http.StatusConflict, "store_code_taken")
	ErrRateLimited        = handler.NewHTTPError(http.StatusTooManyRequests, "rate_limited")
)

// MapError translates domain sentinels into HTTP errors. Expired and invalid
// tokens are indistinguishable to clients, and so are missing and foreign
// resources.
func MapError(err error) error {
	switch {
	case errors.Is(err, tenant.ErrUnavailable), errors.Is(err, account.ErrUnavailable):
		return handler.ErrServiceUnavailable
	case errors.Is(err, ratelimiter.ErrLimitExceeded):
		return ErrRateLimited
	case errors.Is(err, account.ErrInvalidCredentials):
		return ErrInvalidCredentials
	case errors.Is(err, jwt.ErrInvalidToken),
		errors.Is(err, jwt.ErrExpiredToken),
		errors.Is(err, account.ErrTokenRevoked):
		return ErrInvalidToken
	case errors.Is(err, tenant.ErrStoreNotFound),
		errors.Is(err, tenant.ErrInvalidStoreID),
		errors.Is(err, tenant.ErrTenantMismatch),
		errors.Is(err, catalog.ErrProductNotFound):
		return handler.ErrNotFound
	case errors.Is(err, auth.ErrUnauthorized):
		return handler.ErrUnauthorized
	case errors.Is(err, auth.ErrForbidden):
		return handler.ErrForbidden
	case errors.Is(err, account.ErrEmailAlreadyExists):
		return ErrEmailTaken
	case errors.Is(err, account.ErrStoreCodeTaken):
		return ErrStoreCodeTaken
	case validator.ExtractValidationErrors(err) != nil:
		return fieldErrors(validator.ExtractValidationErrors(err))
	case errors.Is(err, account.ErrPasswordTooLong):
		v := handler.NewValidationError()
		v.Add("password", "must be at most 72 bytes")
		return v
	case errors.Is(err, account.ErrInvalidInput), errors.Is(err, catalog.ErrInvalidProduct):
		return handler.NewValidationError()
	}
	return err
}

// fieldErrors renders rule failures as per-field details of a 422 response.
func fieldErrors(ve validator.ValidationErrors) handler.ValidationError {
	v := handler.NewValidationError()
	for _, e := range ve {
		v.Add(e.Field, e.Message)
	}
	return v
}
