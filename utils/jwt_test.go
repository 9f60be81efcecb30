package utils

import "testing"

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	userID, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if userID != 42 {
		t.Fatalf("got user %d, want 42", userID)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}
