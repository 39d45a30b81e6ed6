// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Message
// model, including unique-hash duplicate detection for reload-safe appends.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/charlesolisa/chat-message/internal/domain"
)

// ErrDuplicate indicates that a message with the same content hash already
// exists, i.e. the identical (key, sender, body) was already stored within
// the current deduplication bucket.
var ErrDuplicate = errors.New("duplicate")

// InsertMessage inserts a message row with a precomputed content hash.
// On a unique-hash collision it returns ErrDuplicate; any other DB error is
// propagated. The write is committed before return.
func InsertMessage(ctx context.Context, db *gorm.DB, conversationKey, sender, body, sourceLanguage, contentHash string, now time.Time) (*domain.Message, error) {
	m := &domain.Message{
		ID:              uuid.NewString(),
		ConversationKey: conversationKey,
		Sender:          sender,
		Body:            body,
		SourceLanguage:  sourceLanguage,
		ContentHash:     contentHash,
		CreatedAt:       now.UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
		low := strings.ToLower(err.Error())
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(low, "unique constraint failed") ||
			strings.Contains(low, "constraint failed: unique") {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return m, nil
}

// ListRecent returns up to limit messages for the conversation, ordered
// chronologically ascending (CreatedAt, then ID for determinism). When more
// than limit messages exist, the newest limit are returned: the tail of the
// conversation, still oldest-first. A non-positive limit returns everything.
func ListRecent(ctx context.Context, db *gorm.DB, conversationKey string, limit int) ([]domain.Message, error) {
	var out []domain.Message
	err := db.WithContext(ctx).
		Where("conversation_key = ?", conversationKey).
		Order("created_at DESC, id DESC").
		Limit(limitOrAll(limit)).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	// Newest-first from the index scan; flip to chronological order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// CountMessages uses a raw COUNT so a missing table surfaces as an error.
func CountMessages(ctx context.Context, db *gorm.DB, conversationKey string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM messages WHERE conversation_key = ?", conversationKey).
		Scan(&total).Error
	return total, err
}

// DeleteConversation removes all messages for the key. Irreversible.
func DeleteConversation(ctx context.Context, db *gorm.DB, conversationKey string) error {
	return db.WithContext(ctx).
		Where("conversation_key = ?", conversationKey).
		Delete(&domain.Message{}).Error
}

// limitOrAll maps a non-positive limit to "no limit" for GORM.
func limitOrAll(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}
