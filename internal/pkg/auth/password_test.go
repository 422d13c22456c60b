package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash must not equal the plain password")
	}

	if !CheckPassword(hash, "password123") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hash, "password124") {
		t.Error("wrong password should not verify")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("gizli")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	second, err := HashPassword("gizli")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ")
	}
}
