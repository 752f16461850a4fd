package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request payload is missing
	// required fields or contains values that cannot be applied.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for a wrong password and an
	// unknown username alike; the two causes are deliberately
	// indistinguishable so that login responses do not confirm whether an
	// account exists.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrUnauthorized is returned by Authenticate for every failure mode:
	// malformed token, bad signature, expiry, empty subject, or a subject
	// that no longer resolves to an account. Callers must not distinguish
	// the causes in responses.
	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrForbidden is returned by Authorize when the principal resolved but
	// lacks at least one required scope. Distinct from ErrUnauthorized:
	// identity was established, privilege was not.
	ErrForbidden = errors.New("user doesn't have necessary permissions")

	// ErrTokenCreationFailed is returned when signing a new token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrItemNotInCart is returned when removing a product that is not
	// present in the cart.
	ErrItemNotInCart = errors.New("no item with given product id in cart")
)
