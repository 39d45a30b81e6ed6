package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charlesolisa/chat-message/internal/chatkey"
)

func newMessages(t *testing.T) (*MessageService, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 7, 1, 10, 0, 5, 0, time.UTC)}
	s := NewMessageService(newSvcDB(t))
	s.Now = clock.now
	return s, clock
}

func TestAppend_InsertsAndSuppressesReloadDuplicate(t *testing.T) {
	s, clock := newMessages(t)
	ctx := context.Background()
	key := chatkey.Direct("Ana", "Ben")

	outcome, m, err := s.Append(ctx, key, "Ana", "Hola", "es")
	if err != nil || outcome != AppendInserted {
		t.Fatalf("first append = %v, %v", outcome, err)
	}
	if m == nil || m.Body != "Hola" || m.Sender != "Ana" {
		t.Fatalf("unexpected message: %+v", m)
	}

	// The same submission 20s later (same minute bucket) is suppressed.
	clock.advance(20 * time.Second)
	outcome, m, err = s.Append(ctx, key, "Ana", "Hola", "es")
	if err != nil {
		t.Fatalf("duplicate append error: %v", err)
	}
	if outcome != AppendDuplicateSuppressed || m != nil {
		t.Fatalf("duplicate append = %v, %+v", outcome, m)
	}
	if got, _ := s.Recent(ctx, key, 10); len(got) != 1 {
		t.Fatalf("stored %d messages, want 1", len(got))
	}

	// Past the minute boundary the same text is a new message.
	clock.advance(time.Minute)
	outcome, _, err = s.Append(ctx, key, "Ana", "Hola", "es")
	if err != nil || outcome != AppendInserted {
		t.Fatalf("append after boundary = %v, %v", outcome, err)
	}
	if got, _ := s.Recent(ctx, key, 10); len(got) != 2 {
		t.Fatalf("stored %d messages, want 2", len(got))
	}
}

func TestAppend_Validation(t *testing.T) {
	s, _ := newMessages(t)
	ctx := context.Background()

	outcome, _, err := s.Append(ctx, "k", "Ana", "   ", "en")
	if outcome != AppendRejected || err != ErrEmptyBody {
		t.Fatalf("empty body = %v, %v", outcome, err)
	}

	outcome, _, err = s.Append(ctx, "k", "Ana", strings.Repeat("x", 1001), "en")
	if outcome != AppendRejected || err != ErrBodyTooLong {
		t.Fatalf("oversized body = %v, %v", outcome, err)
	}

	// Exactly at the cap is accepted.
	outcome, _, err = s.Append(ctx, "k", "Ana", strings.Repeat("x", 1000), "en")
	if err != nil || outcome != AppendInserted {
		t.Fatalf("cap-length body = %v, %v", outcome, err)
	}
}

func TestAppend_TrimmedBodyDedupes(t *testing.T) {
	s, _ := newMessages(t)
	ctx := context.Background()

	if outcome, _, _ := s.Append(ctx, "k", "Ana", "hi", "en"); outcome != AppendInserted {
		t.Fatalf("first append = %v", outcome)
	}
	// Same content modulo surrounding whitespace is the same submission.
	if outcome, _, _ := s.Append(ctx, "k", "Ana", "  hi ", "en"); outcome != AppendDuplicateSuppressed {
		t.Fatalf("whitespace variant = %v, want suppression", outcome)
	}
}

func TestAppend_DifferentSenderOrKeyIsNotDuplicate(t *testing.T) {
	s, _ := newMessages(t)
	ctx := context.Background()

	s.Append(ctx, "k", "Ana", "hi", "en")
	if outcome, _, _ := s.Append(ctx, "k", "Ben", "hi", "en"); outcome != AppendInserted {
		t.Fatalf("other sender = %v", outcome)
	}
	if outcome, _, _ := s.Append(ctx, "k2", "Ana", "hi", "en"); outcome != AppendInserted {
		t.Fatalf("other conversation = %v", outcome)
	}
}

func TestRecent_LimitAndOrder(t *testing.T) {
	s, clock := newMessages(t)
	ctx := context.Background()

	for _, body := range []string{"a", "b", "c"} {
		if outcome, _, err := s.Append(ctx, "k", "Ana", body, "en"); err != nil || outcome != AppendInserted {
			t.Fatalf("seed %q: %v %v", body, outcome, err)
		}
		clock.advance(time.Minute)
	}

	got, err := s.Recent(ctx, "k", 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 || got[0].Body != "b" || got[1].Body != "c" {
		t.Fatalf("unexpected tail: %+v", got)
	}
	if got[0].CreatedAt.After(got[1].CreatedAt) {
		t.Fatal("history not in chronological order")
	}

	// Zero limit applies the service default rather than returning nothing.
	all, err := s.Recent(ctx, "k", 0)
	if err != nil || len(all) != 3 {
		t.Fatalf("Recent(0) = %d msgs, %v", len(all), err)
	}
}

func TestRecent_EmptyConversationIsEmptySlice(t *testing.T) {
	s, _ := newMessages(t)
	got, err := s.Recent(context.Background(), "nobody", 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want explicit empty slice, got %#v", got)
	}
}

func TestGetAndDeleteConversation(t *testing.T) {
	s, _ := newMessages(t)
	ctx := context.Background()

	_, m, err := s.Append(ctx, "k", "Ana", "hi", "en")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := s.Get(ctx, m.ID)
	if err != nil || got.Body != "hi" {
		t.Fatalf("Get = %+v, %v", got, err)
	}
	if _, err := s.Get(ctx, "missing"); err != ErrMessageNotFound {
		t.Fatalf("Get(missing) err = %v", err)
	}

	if err := s.DeleteConversation(ctx, "k"); err != nil {
		t.Fatalf("DeleteConversation: %v", err)
	}
	if got, _ := s.Recent(ctx, "k", 10); len(got) != 0 {
		t.Fatalf("conversation not deleted: %+v", got)
	}
}

func TestAppendOutcome_String(t *testing.T) {
	for outcome, want := range map[AppendOutcome]string{
		AppendInserted:            "inserted",
		AppendDuplicateSuppressed: "duplicate_suppressed",
		AppendRejected:            "rejected",
		AppendOutcome(99):         "unknown",
	} {
		if got := outcome.String(); got != want {
			t.Fatalf("String(%d) = %q, want %q", int(outcome), got, want)
		}
	}
}
