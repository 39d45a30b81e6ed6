package repo

import (
	"context"
	"testing"
	"time"

	"github.com/charlesolisa/chat-message/internal/domain"
)

func TestInsertMessage_DuplicateHash(t *testing.T) {
	db := newTestDB(t, &domain.Message{})
	ctx := context.Background()

	now := time.Date(2025, 7, 1, 10, 0, 5, 0, time.UTC)
	hash := domain.ContentHash("ana|ben", "Ana", "Hola", now, time.Minute)

	m, err := InsertMessage(ctx, db, "ana|ben", "Ana", "Hola", "es", hash, now)
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if m.ID == "" || m.ConversationKey != "ana|ben" || m.Sender != "Ana" {
		t.Fatalf("unexpected message: %+v", m)
	}

	// Same bucket, same hash: suppressed at the unique index.
	if _, err := InsertMessage(ctx, db, "ana|ben", "Ana", "Hola", "es", hash, now.Add(20*time.Second)); err != ErrDuplicate {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// Next bucket hashes differently and inserts fine.
	later := now.Add(time.Minute)
	hash2 := domain.ContentHash("ana|ben", "Ana", "Hola", later, time.Minute)
	if _, err := InsertMessage(ctx, db, "ana|ben", "Ana", "Hola", "es", hash2, later); err != nil {
		t.Fatalf("insert after bucket boundary: %v", err)
	}

	total, err := CountMessages(ctx, db, "ana|ben")
	if err != nil {
		t.Fatalf("CountMessages: %v", err)
	}
	if total != 2 {
		t.Fatalf("stored %d messages, want 2", total)
	}
}

func TestListRecent_OrderAndTail(t *testing.T) {
	db := newTestDB(t, &domain.Message{})
	ctx := context.Background()

	t0 := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	for i, body := range []string{"one", "two", "three", "four"} {
		at := t0.Add(time.Duration(i) * time.Minute)
		hash := domain.ContentHash("k", "Ana", body, at, time.Minute)
		if _, err := InsertMessage(ctx, db, "k", "Ana", body, "en", hash, at); err != nil {
			t.Fatalf("seed %q: %v", body, err)
		}
	}

	all, err := ListRecent(ctx, db, "k", 0)
	if err != nil {
		t.Fatalf("ListRecent(all): %v", err)
	}
	if len(all) != 4 || all[0].Body != "one" || all[3].Body != "four" {
		t.Fatalf("unexpected full history: %+v", all)
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.Before(all[i-1].CreatedAt) {
			t.Fatalf("timestamps not non-decreasing at %d", i)
		}
	}

	// A bounded read returns the newest N, still oldest-first.
	tail, err := ListRecent(ctx, db, "k", 2)
	if err != nil {
		t.Fatalf("ListRecent(2): %v", err)
	}
	if len(tail) != 2 || tail[0].Body != "three" || tail[1].Body != "four" {
		t.Fatalf("unexpected tail: %+v", tail)
	}
}

func TestListRecent_EmptyConversation(t *testing.T) {
	db := newTestDB(t, &domain.Message{})
	got, err := ListRecent(context.Background(), db, "nobody", 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %d", len(got))
	}
}

func TestDeleteConversation(t *testing.T) {
	db := newTestDB(t, &domain.Message{})
	ctx := context.Background()

	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	for _, key := range []string{"keep", "drop"} {
		hash := domain.ContentHash(key, "Ana", "hi", now, time.Minute)
		if _, err := InsertMessage(ctx, db, key, "Ana", "hi", "en", hash, now); err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
	}

	if err := DeleteConversation(ctx, db, "drop"); err != nil {
		t.Fatalf("DeleteConversation: %v", err)
	}
	if n, _ := CountMessages(ctx, db, "drop"); n != 0 {
		t.Fatalf("deleted conversation still has %d messages", n)
	}
	if n, _ := CountMessages(ctx, db, "keep"); n != 1 {
		t.Fatalf("unrelated conversation affected: %d", n)
	}
}

func TestCountMessages_Error_NoTable(t *testing.T) {
	db := newTestDB(t /* no migration */)
	if _, err := CountMessages(context.Background(), db, "k"); err == nil {
		t.Fatal("expected error due to missing messages table")
	}
}
