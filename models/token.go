package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps an issued or parsed JWT with convenience accessors for the
// authentication flow.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in HTTP headers. Subject is a cached copy of the
// "sub" claim, the username the token was issued for.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Subject is the username extracted from the "sub" claim.
	Subject string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// TokenResponse is the body returned by the POST /token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
