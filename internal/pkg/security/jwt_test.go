package security

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("UserID = %d, want 42", claims.UserID)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("garbage token must not validate")
	}
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken(7)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	sig, err := ExtractSignature(token)
	if err != nil {
		t.Fatalf("ExtractSignature: %v", err)
	}
	if sig == "" {
		t.Fatal("signature is empty")
	}
}
