// Copyright (c) 2026 Foodieblog. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, JWT signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Sentinel verification failures. Callers must be able to tell an expired
// token from every other kind of rejection: the two map to different API
// error codes (TOKEN_EXPIRED vs UNAUTHORIZED).
var (
	// ErrTokenExpired is returned when a token's exp claim is in the past.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenInvalid is returned for signature mismatch, malformed structure,
	// wrong signing method, or any other validation failure.
	ErrTokenInvalid = errors.New("sec: token invalid")
)

// AccessClaims represents the payload embedded inside a JWT access token.
//
// # Why custom claims?
//
// By embedding the role, email, and nickname directly inside the JWT, the
// auth gate can reconstruct the active user context WITHOUT querying the
// database on every single API request.
type AccessClaims struct {
	jwt.RegisteredClaims

	Role     string `json:"role"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// Principal is the authenticated identity derived from a verified access
// token. It lives for exactly one request and is never persisted.
type Principal struct {
	UserID   int64  `json:"userId"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// Principal converts verified claims into a request [Principal].
//
// It fails with [ErrTokenInvalid] if the subject claim is not a decimal id.
func (c *AccessClaims) Principal() (*Principal, error) {
	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric subject", ErrTokenInvalid)
	}
	return &Principal{
		UserID:   userID,
		Email:    c.Email,
		Nickname: c.Nickname,
		Role:     c.Role,
	}, nil
}

// TokenService mints and verifies compact HS256 tokens bound to a single
// shared secret. It is stateless: access tokens are verifiable by signature
// alone, and refresh tokens gain meaning only through their session row.
type TokenService struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService creates a TokenService from the shared secret and the
// configured lifetimes, both expressed in milliseconds.
func NewTokenService(secret string, accessExpiryMs, refreshExpiryMs int64) *TokenService {
	return &TokenService{
		key:        []byte(secret),
		accessTTL:  time.Duration(accessExpiryMs) * time.Millisecond,
		refreshTTL: time.Duration(refreshExpiryMs) * time.Millisecond,
	}
}

// IssueAccessToken creates a signed access token for the given user.
//
// Claims: sub (decimal user id), role, email, nickname, iat, exp.
func (service *TokenService) IssueAccessToken(userID int64, role, email, nickname string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(service.accessTTL)),
		},
		Role:     role,
		Email:    email,
		Nickname: nickname,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(service.key)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign access token: %w", err)
	}
	return signed, nil
}

// IssueRefreshToken creates an opaque signed token carrying only iat, exp,
// and a random jti.
//
// Identity is deliberately absent: it comes from the session row the token
// is paired with in storage. The jti keeps tokens minted within the same
// second distinct, which the unique token column depends on.
func (service *TokenService) IssueRefreshToken() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(service.refreshTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(service.key)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign refresh token: %w", err)
	}
	return signed, nil
}

// RefreshExpiryAt returns the absolute expiry instant a refresh token issued
// now would carry. Used to populate the session row alongside the token.
func (service *TokenService) RefreshExpiryAt() time.Time {
	return time.Now().Add(service.refreshTTL)
}

// Verify checks the signature and expiry of an access token string.
//
// # Returns
//   - [*AccessClaims] on success.
//   - [ErrTokenExpired] when the current time is past the exp claim.
//   - [ErrTokenInvalid] for every other failure.
//
// No clock-skew leeway is applied.
func (service *TokenService) Verify(tokenStr string) (*AccessClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &AccessClaims{}, func(t *jwt.Token) (interface{}, error) {
		return service.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %s", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
