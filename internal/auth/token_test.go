package auth

import (
	"testing"
	"time"

	"github.com/buildrite/buildrite/internal/domain"
)

func TestTokenRoundtrip(t *testing.T) {
	issuer := NewTokenIssuer("key", time.Hour)
	u := &domain.User{ID: 5, TenantID: 2, Email: "pat@buildco.test", Role: domain.RoleMember}

	token, err := issuer.Issue(u)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 5 || claims.Email != "pat@buildco.test" {
		t.Fatalf("claims: %+v", claims)
	}
	if claims.TenantID == nil || *claims.TenantID != 2 {
		t.Fatalf("tenant claim: %+v", claims.TenantID)
	}
}

func TestTokenExpired(t *testing.T) {
	issuer := NewTokenIssuer("key", -time.Minute)
	token, err := issuer.Issue(&domain.User{ID: 1, TenantID: 1})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := issuer.Validate(token); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "correct horse battery staple") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}
