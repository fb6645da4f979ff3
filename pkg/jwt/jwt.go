package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// Header constants required by RFC 7519. Only HS256 is supported; the
// signing secret is server-wide and symmetric.
const (
	headerType      = "JWT"
	headerAlgorithm = "HS256"
)

type header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// Signer signs and verifies compact JWTs with HMAC-SHA256. The signing key
// lives in memory only.
type Signer struct {
	key []byte
}

// NewSigner creates a Signer from a secret string. The secret must be
// non-empty; length and entropy are the operator's responsibility.
func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, ErrMissingSigningKey
	}
	return &Signer{key: []byte(secret)}, nil
}

// Sign serializes claims and returns the signed header.payload.signature
// token. Claims may be any JSON-serializable value.
func (s *Signer) Sign(claims any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	headerJSON, err := json.Marshal(header{Type: headerType, Algorithm: headerAlgorithm})
	if err != nil {
		return "", fmt.Errorf("marshal header: %w", err)
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}

	payload := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)
	return payload + "." + s.sign(payload), nil
}

// Parse verifies token and unmarshals its claims into dst. Verification
// order: structure, signature (constant-time), algorithm, then the claims'
// own Valid method when dst implements it.
func (s *Signer) Parse(token string, dst any) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ErrInvalidToken
	}

	payload := parts[0] + "." + parts[1]
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(s.sign(payload))) != 1 {
		return ErrInvalidSignature
	}

	headerJSON, err := base64URLDecode(parts[0])
	if err != nil {
		return ErrInvalidToken
	}
	var h header
	if err := json.Unmarshal(headerJSON, &h); err != nil {
		return ErrInvalidToken
	}
	// Reject anything but HS256 to prevent algorithm confusion.
	if h.Algorithm != headerAlgorithm {
		return ErrUnexpectedSigningMethod
	}

	claimsJSON, err := base64URLDecode(parts[1])
	if err != nil {
		return ErrInvalidToken
	}
	if err := json.Unmarshal(claimsJSON, dst); err != nil {
		return ErrInvalidToken
	}

	if v, ok := dst.(interface{ Valid() error }); ok {
		if err := v.Valid(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Signer) sign(payload string) string {
	h := hmac.New(sha256.New, s.key)
	h.Write([]byte(payload))
	return base64URLEncode(h.Sum(nil))
}

// JWTs use unpadded base64url per RFC 7515.
func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func base64URLDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
