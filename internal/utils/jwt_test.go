// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-review-market/models"
	"github.com/golang-jwt/jwt/v5"
)

// signClaims signs arbitrary claims with HS256, bypassing GenerateJWTToken
// parameter checks so tests can build expired or malformed tokens.
func signClaims(t *testing.T, claims jwt.Claims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("failed to sign claims: %v", err)
	}
	return s
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	duration := time.Hour
	key := "secret-key"

	before := time.Now()
	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != userID {
		t.Errorf("expected userID %d, got %d", userID, token.UserID)
	}
	if token.ExpiresAt.Before(before.Add(duration - time.Second)) {
		t.Errorf("expected expiry about %s from now, got %s", duration, token.ExpiresAt)
	}

	// Verify claims
	claims := &models.Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(token.SignedString, claims)
	if err != nil {
		t.Fatalf("could not parse generated token: %v", err)
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
	if claims.UserID != userID {
		t.Errorf("expected userId claim %d, got %d", userID, claims.UserID)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Error("expected exp and iat claims to be set")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Hour, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidJWTParams) {
				t.Errorf("expected ErrInvalidJWTParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(456)
	key := "secret-key"
	duration := time.Minute * 5

	// First generate a valid token
	genToken, err := GenerateJWTToken(issuer, userID, duration, key)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	// Now validate it
	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %d, got %d", userID, parsedToken.UserID)
	}
	if parsedToken.SignedString != genToken.SignedString {
		t.Error("expected SignedString to be preserved")
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"
	genToken, _ := GenerateJWTToken(issuer, 1, time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
	if IsTokenExpired(err) {
		t.Error("signature mismatch must not be reported as expiry")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	past := time.Now().Add(-time.Hour)
	tokenString := signClaims(t, &models.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "1",
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}, key)

	_, err := ValidateAndParseJWTToken(tokenString, key, issuer)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !IsTokenExpired(err) {
		t.Errorf("expected jwt.ErrTokenExpired in chain, got %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	tokenString := signClaims(t, &models.Claims{
		UserID:           1,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer, Subject: "1"},
	}, key)

	_, err := ValidateAndParseJWTToken(tokenString, key, issuer)
	if err == nil {
		t.Error("expected error for token without exp, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("real-issuer", 1, time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_NoneAlgorithm(t *testing.T) {
	issuer := "test-issuer"
	claims := &models.Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(tokenString, "key", issuer)
	if err == nil {
		t.Error("expected error for unsigned token, got nil")
	}
}

func TestValidateAndParseJWTToken_SubjectMismatch(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	tokenString := signClaims(t, &models.Claims{
		UserID: 2,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.Itoa(3),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, key)

	_, err := ValidateAndParseJWTToken(tokenString, key, issuer)
	if !errors.Is(err, ErrSubjectMismatch) {
		t.Errorf("expected ErrSubjectMismatch, got %v", err)
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	tokenString := signClaims(t, &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, key)

	_, err := ValidateAndParseJWTToken(tokenString, key, issuer)
	if !errors.Is(err, ErrEmptySubject) {
		t.Errorf("expected ErrEmptySubject, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer   abc  ", "abc", false},
		{"empty", "", "", true},
		{"scheme only", "Bearer", "", true},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", true},
		{"extra parts", "Bearer a b", "", true},
		{"token only", "abc.def.ghi", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Errorf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
