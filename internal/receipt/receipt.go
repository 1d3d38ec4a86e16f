package receipt

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalid        = errors.New("invalid receipt")
	ErrDigestMismatch = errors.New("receipt does not match the stored result")
)

// Receipt binds an evaluation ID to the digest of its stored result.
type Receipt struct {
	EvaluationID string `json:"evaluation_id"`
	Digest       string `json:"digest"`
	jwt.RegisteredClaims
}

// Digest is the hex SHA-256 of body.
func Digest(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// Signer issues and checks HS256 receipts.
type Signer struct {
	Key []byte
}

func (s *Signer) Sign(id string, body []byte) (string, error) {
	return s.SignDigest(id, Digest(body))
}

// SignDigest issues a receipt for a digest computed when the result was
// first stored.
func (s *Signer) SignDigest(id, digest string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Receipt{
		EvaluationID: id,
		Digest:       digest,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       id,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	})
	return token.SignedString(s.Key)
}

// Verify checks the signature and that body is the result the receipt was
// issued for.
func (s *Signer) Verify(tokenString string, body []byte) (*Receipt, error) {
	var rc Receipt
	token, err := jwt.ParseWithClaims(tokenString, &rc, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !token.Valid {
		return nil, ErrInvalid
	}
	if rc.Digest != Digest(body) {
		return &rc, ErrDigestMismatch
	}
	return &rc, nil
}
