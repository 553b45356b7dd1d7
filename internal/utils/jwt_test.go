package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestLoginToken_RoundTrip(t *testing.T) {
	token, err := GenerateLoginToken("alice", true, time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}
	claims, err := ParseLoginToken(token)
	if err != nil {
		t.Fatalf("ParseLoginToken error: %v", err)
	}
	if claims.Username != "alice" || claims.Admin != true || claims.Type != "login" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseLoginToken_RejectsWrongType(t *testing.T) {
	claims := LoginClaims{
		Username: "alice",
		Type:     "email_verify",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getSecret())
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := ParseLoginToken(token); err == nil {
		t.Fatalf("expected error for wrong token type")
	}
}

func TestParseLoginToken_RejectsForeignSecret(t *testing.T) {
	claims := LoginClaims{
		Username: "mallory",
		Admin:    true,
		Type:     "login",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := ParseLoginToken(token); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestParseLoginToken_Expired(t *testing.T) {
	token, err := GenerateLoginToken("alice", false, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}
	_, err = ParseLoginToken(token)
	if err == nil {
		t.Fatalf("expected expired token error")
	}
}

func TestParseLoginToken_Garbage(t *testing.T) {
	if _, err := ParseLoginToken("not-a-token"); err == nil {
		t.Fatalf("expected parse error")
	}
}
