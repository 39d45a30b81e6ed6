// Package domain defines the persistence models for users and messages.
// These types are mapped with GORM and form the core data layer of the
// multilingual chat store.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// User represents a chat participant, keyed by name. Presence is tracked by
// LastSeenAt: a user is "online" while their last heartbeat is within the
// configured active window. Rows are never deleted; going offline is a
// decay of LastSeenAt, which keeps name reclamation deterministic.
//
// Fields:
//   - Name: unique, case-sensitive identity (primary key).
//   - LastSeenAt: timestamp of the most recent heartbeat; indexed so the
//     online directory can be listed efficiently.
//   - PreferredLanguage: language code used as the default translation
//     target for this user's history view.
//   - CreatedAt: set on first heartbeat.
type User struct {
	Name              string    `json:"name"               gorm:"type:varchar(64);primaryKey"`
	LastSeenAt        time.Time `json:"last_seen_at"       gorm:"not null;index:idx_users_last_seen"`
	PreferredLanguage string    `json:"preferred_language" gorm:"type:varchar(16);not null;default:'en'"`
	CreatedAt         time.Time `json:"created_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Message represents a single line in a conversation. Messages are
// append-only: they are never mutated, and removed only by deleting the
// whole conversation.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - ConversationKey: canonical chat key (see package chatkey); indexed
//     together with CreatedAt so recent-history reads stay efficient.
//   - Sender: name of the authoring user.
//   - Body: message text, bounded length enforced by the service layer.
//   - SourceLanguage: language code the sender wrote in.
//   - ContentHash: sha256 over (key, sender, body, minute bucket); the
//     unique index on it is what suppresses reload-triggered duplicates.
//   - CreatedAt: insertion timestamp.
type Message struct {
	ID              string    `json:"id"               gorm:"type:char(36);primaryKey"`
	ConversationKey string    `json:"conversation_key" gorm:"type:varchar(160);not null;index:idx_conv_msgs,priority:1"`
	Sender          string    `json:"sender"           gorm:"type:varchar(64);not null"`
	Body            string    `json:"body"             gorm:"type:text;not null"`
	SourceLanguage  string    `json:"source_language"  gorm:"type:varchar(16);not null;default:'auto'"`
	ContentHash     string    `json:"-"                gorm:"type:char(64);not null;uniqueIndex:ux_messages_content_hash"`
	CreatedAt       time.Time `json:"created_at"       gorm:"index:idx_conv_msgs,priority:2"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }

// ContentHash fingerprints a message submission for duplicate suppression.
// The timestamp is bucketed by window (one minute by default), so the same
// (key, sender, body) resubmitted within one bucket hashes identically and
// collides with the unique index, while a resend in a later bucket does not.
func ContentHash(conversationKey, sender, body string, at time.Time, window time.Duration) string {
	if window <= 0 {
		window = time.Minute
	}
	bucket := at.UTC().Truncate(window)
	h := sha256.New()
	h.Write([]byte(conversationKey))
	h.Write([]byte{0})
	h.Write([]byte(sender))
	h.Write([]byte{0})
	h.Write([]byte(body))
	h.Write([]byte{0})
	h.Write([]byte(bucket.Format(time.RFC3339)))
	return hex.EncodeToString(h.Sum(nil))
}
