// Package services – MessageService
//
// This file implements MessageService, the application-level component that
// owns the durable, ordered, deduplicated message log. Appends validate the
// body, fingerprint the submission with a time-bucketed content hash, and
// let the unique index on that hash suppress reload-triggered duplicate
// writes. Retrieval returns the conversation tail in chronological order.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// the conversation key and outcome.
package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/charlesolisa/chat-message/internal/domain"
	"github.com/charlesolisa/chat-message/internal/repo"
)

// AppendOutcome classifies the result of an append. DuplicateSuppressed is
// a normal outcome, not an error: callers can report "already sent" without
// retrying.
type AppendOutcome int

const (
	// AppendInserted means the message was durably stored.
	AppendInserted AppendOutcome = iota
	// AppendDuplicateSuppressed means an identical submission already
	// exists within the deduplication window; nothing was stored.
	AppendDuplicateSuppressed
	// AppendRejected means validation or storage declined the append.
	AppendRejected
)

// String returns the lower-snake name of the outcome.
func (o AppendOutcome) String() string {
	switch o {
	case AppendInserted:
		return "inserted"
	case AppendDuplicateSuppressed:
		return "duplicate_suppressed"
	case AppendRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// MessageService coordinates message persistence and retrieval.
type MessageService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// MaxBodyRunes caps message bodies; zero applies the 1000-rune default.
	MaxBodyRunes int
	// DedupWindow is the timestamp bucket within which an identical
	// (key, sender, body) resubmission is suppressed. Deliberately coarse
	// (default one minute): it models reload-triggered re-submission of a
	// form, not true idempotency across time.
	DedupWindow time.Duration
	// HistoryLimit is the default number of messages Recent returns.
	HistoryLimit int

	// Now is a clock seam for tests; defaults to time.Now.
	Now func() time.Time
}

// NewMessageService constructs a MessageService with the default body cap,
// deduplication window, and history limit.
func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{
		DB:           db,
		MaxBodyRunes: 1000,
		DedupWindow:  time.Minute,
		HistoryLimit: 100,
	}
}

// Append validates and durably stores one message. The write is committed
// before Append returns. Outcomes:
//   - AppendInserted with the stored message;
//   - AppendDuplicateSuppressed (nil message, nil error) when the identical
//     submission already exists within the dedup window;
//   - AppendRejected with ErrEmptyBody / ErrBodyTooLong on validation
//     failure, or with the storage error on backend failure.
func (s *MessageService) Append(ctx context.Context, conversationKey, sender, body, sourceLanguage string) (AppendOutcome, *domain.Message, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "Append",
		trace.WithAttributes(attribute.String("chat.key", conversationKey)),
	)
	defer span.End()

	body = strings.TrimSpace(body)
	if body == "" {
		return AppendRejected, nil, ErrEmptyBody
	}
	max := s.MaxBodyRunes
	if max <= 0 {
		max = 1000
	}
	if utf8.RuneCountInString(body) > max {
		return AppendRejected, nil, ErrBodyTooLong
	}
	if sourceLanguage == "" {
		sourceLanguage = "auto"
	}

	now := s.now()
	hash := domain.ContentHash(conversationKey, sender, body, now, s.DedupWindow)

	m, err := repo.InsertMessage(ctx, s.DB, conversationKey, sender, body, sourceLanguage, hash, now)
	if errors.Is(err, repo.ErrDuplicate) {
		span.SetAttributes(attribute.String("append.outcome", AppendDuplicateSuppressed.String()))
		return AppendDuplicateSuppressed, nil, nil
	}
	if err != nil {
		span.SetAttributes(attribute.String("append.outcome", AppendRejected.String()))
		return AppendRejected, nil, err
	}
	span.SetAttributes(attribute.String("append.outcome", AppendInserted.String()))
	return AppendInserted, m, nil
}

// Recent returns up to limit messages of the conversation in chronological
// order (the newest tail when the conversation is longer). A non-positive
// limit applies the configured default.
func (s *MessageService) Recent(ctx context.Context, conversationKey string, limit int) ([]domain.Message, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "Recent",
		trace.WithAttributes(
			attribute.String("chat.key", conversationKey),
			attribute.Int("limit", limit),
		),
	)
	defer span.End()

	if limit <= 0 {
		limit = s.HistoryLimit
	}
	if limit <= 0 {
		limit = 100
	}
	msgs, err := repo.ListRecent(ctx, s.DB, conversationKey, limit)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}

// Get fetches one message by ID, or ErrMessageNotFound.
func (s *MessageService) Get(ctx context.Context, id string) (*domain.Message, error) {
	var m domain.Message
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &m, nil
}

// DeleteConversation removes all messages for the key. Irreversible.
func (s *MessageService) DeleteConversation(ctx context.Context, conversationKey string) error {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "DeleteConversation",
		trace.WithAttributes(attribute.String("chat.key", conversationKey)),
	)
	defer span.End()

	return repo.DeleteConversation(ctx, s.DB, conversationKey)
}

func (s *MessageService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
