// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model,
// which doubles as the presence table: liveness is a predicate over
// last_seen_at, not a separate relation.
//
// Error semantics:
//   - When a user is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/charlesolisa/chat-message/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// UpsertHeartbeat records a heartbeat for name: it creates the user row on
// first contact and otherwise bumps last_seen_at in place. The stored
// preferred language is rewritten only when preferredLanguage is non-empty;
// a bare heartbeat must not clobber it. The upsert is a single statement, so
// concurrent heartbeats for the same name serialize at the database.
func UpsertHeartbeat(ctx context.Context, db *gorm.DB, name, preferredLanguage string, now time.Time) error {
	u := &domain.User{
		Name:              name,
		LastSeenAt:        now.UTC(),
		PreferredLanguage: preferredLanguage,
		CreatedAt:         now.UTC(),
	}
	cols := []string{"last_seen_at"}
	if preferredLanguage != "" {
		cols = append(cols, "preferred_language")
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns(cols),
		}).
		Create(u).Error
}

// GetUser fetches a user by name, or ErrNotFound.
func GetUser(ctx context.Context, db *gorm.DB, name string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("name = ?", name).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListActiveSince returns all users whose last heartbeat is at or after
// cutoff, ordered by most recent heartbeat first.
func ListActiveSince(ctx context.Context, db *gorm.DB, cutoff time.Time) ([]domain.User, error) {
	var out []domain.User
	err := db.WithContext(ctx).
		Where("last_seen_at >= ?", cutoff.UTC()).
		Order("last_seen_at desc").
		Find(&out).Error
	return out, err
}

// ExpireUser forces a user's last_seen_at to expiredAt, a point safely
// before the active cutoff. The row is kept so the name can be reclaimed
// deterministically rather than racing a straggling reload. Returns
// ErrNotFound when no such user exists.
func ExpireUser(ctx context.Context, db *gorm.DB, name string, expiredAt time.Time) error {
	res := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("name = ?", name).
		Update("last_seen_at", expiredAt.UTC())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
