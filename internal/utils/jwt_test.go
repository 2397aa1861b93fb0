package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "user-123"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != userID {
		t.Errorf("expected subject %s, got %s", userID, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u1", time.Hour, "key"},
		{"empty user", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u1", 0, "key"},
		{"empty key", "iss", "u1", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "user-456"
	key := "secret-key"
	duration := time.Minute * 5

	// First generate a valid token
	genToken, _ := GenerateJWTToken(issuer, userID, duration, key)

	// Now validate it
	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %s, got %s", userID, parsedToken.UserID)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"
	key := "correct-key"
	wrongKey := "wrong-key"

	genToken, _ := GenerateJWTToken(issuer, "u1", time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, wrongKey, issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	// Token that expired 1 second ago
	genToken, _ := GenerateJWTToken(issuer, "u1", -time.Second, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("real-issuer", "u1", time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
		t.Error("expected error for HS512 token, got nil")
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
		t.Error("expected error for token without subject, got nil")
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
		{"extra spaces", "  Bearer   abc  ", "abc", false},
		{"missing token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"empty", "", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got token %q", got)
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
