package auth

import (
	"errors"
	"testing"
)

var testParams = HashParams{Memory: 1024, Time: 1, Threads: 1, SaltLen: 16, KeyLen: 32}

func TestHashThenVerify(t *testing.T) {
	h := NewHasher(testParams)

	encoded, err := h.Hash("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	ok, err := h.Verify("correct horse", encoded)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = h.Verify("correct horsf", encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch for different password")
	}
}

func TestHashUsesFreshSalt(t *testing.T) {
	h := NewHasher(testParams)

	a, err := h.Hash("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := h.Hash("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password must differ")
	}
}

func TestVerifyUsesParamsFromHash(t *testing.T) {
	encoded, err := NewHasher(testParams).Hash("pw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	other := NewHasher(HashParams{Memory: 2048, Time: 2, Threads: 1, SaltLen: 8, KeyLen: 16})
	ok, err := other.Verify("pw", encoded)
	if err != nil || !ok {
		t.Fatalf("expected match with embedded params, got ok=%v err=%v", ok, err)
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewHasher(testParams)

	cases := []string{
		"",
		"plaintext",
		"$2a$10$abcdefghijklmnopqrstuv",
		"$argon2id$v=19$m=1024,t=1,p=1$$",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$***$a2V5",
	}
	for _, encoded := range cases {
		ok, err := h.Verify("pw", encoded)
		if !errors.Is(err, ErrMalformedHash) {
			t.Errorf("%q: expected ErrMalformedHash, got ok=%v err=%v", encoded, ok, err)
		}
	}
}
