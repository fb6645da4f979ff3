// Package jwt implements compact HS256 JSON Web Tokens on the standard
// library's crypto primitives. A Signer signs any JSON-serializable claims
// value and verifies tokens with constant-time signature comparison. Claims
// types may implement Valid() error to hook temporal checks into Parse.
//
// Sentinel errors (ErrInvalidSignature, ErrExpiredToken, ...) are comparable
// with errors.Is.
package jwt
