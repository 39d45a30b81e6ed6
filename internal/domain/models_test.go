package domain

import (
	"testing"
	"time"
)

func TestTableNames(t *testing.T) {
	if got := (User{}).TableName(); got != "users" {
		t.Fatalf("User table = %q", got)
	}
	if got := (Message{}).TableName(); got != "messages" {
		t.Fatalf("Message table = %q", got)
	}
}

func TestContentHash_StableWithinBucket(t *testing.T) {
	t0 := time.Date(2025, 7, 1, 10, 0, 5, 0, time.UTC)
	t1 := t0.Add(40 * time.Second) // still 10:00
	h0 := ContentHash("ana|ben", "Ana", "Hola", t0, time.Minute)
	h1 := ContentHash("ana|ben", "Ana", "Hola", t1, time.Minute)
	if h0 != h1 {
		t.Fatalf("same minute bucket produced different hashes:\n%s\n%s", h0, h1)
	}
	if len(h0) != 64 {
		t.Fatalf("expected sha256 hex, got %d chars", len(h0))
	}
}

func TestContentHash_ChangesAcrossBucket(t *testing.T) {
	t0 := time.Date(2025, 7, 1, 10, 0, 59, 0, time.UTC)
	t1 := t0.Add(2 * time.Second) // crosses into 10:01
	if ContentHash("k", "Ana", "hi", t0, time.Minute) == ContentHash("k", "Ana", "hi", t1, time.Minute) {
		t.Fatal("hash did not change across minute boundary")
	}
}

func TestContentHash_DistinguishesFields(t *testing.T) {
	at := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	base := ContentHash("k", "Ana", "hi", at, time.Minute)
	if base == ContentHash("k2", "Ana", "hi", at, time.Minute) {
		t.Fatal("key not part of hash")
	}
	if base == ContentHash("k", "Ben", "hi", at, time.Minute) {
		t.Fatal("sender not part of hash")
	}
	if base == ContentHash("k", "Ana", "hi!", at, time.Minute) {
		t.Fatal("body not part of hash")
	}
	// Field separators prevent boundary ambiguity (e.g. "ab"+"c" vs "a"+"bc").
	if ContentHash("ab", "c", "x", at, time.Minute) == ContentHash("a", "bc", "x", at, time.Minute) {
		t.Fatal("field boundary ambiguity in hash input")
	}
}

func TestContentHash_DefaultWindow(t *testing.T) {
	at := time.Date(2025, 7, 1, 10, 0, 30, 0, time.UTC)
	if ContentHash("k", "a", "b", at, 0) != ContentHash("k", "a", "b", at, time.Minute) {
		t.Fatal("zero window should default to one minute")
	}
}
