// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued to authenticated users.
//
// UserID is carried in the custom "userId" claim and duplicated in the
// registered "sub" claim. RegisteredClaims provides iss, iat and exp.
type Claims struct {
	UserID int64 `json:"userId"`

	jwt.RegisteredClaims
}

// Token is the result of issuing or verifying a session token.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// UserID is the subject the token was issued for.
	UserID int64 `json:"-"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
