// Package services – PresenceService
//
// This file implements PresenceService, which approximates liveness without
// any persistent connection: clients are poll/reload-driven, so "online"
// means "heartbeated recently". A user row is created on first heartbeat and
// never deleted; leaving only pushes the last-seen timestamp into the past,
// which keeps name reclamation deterministic instead of racing a reload that
// arrives microseconds after a leave.
//
// Presence is advisory, not safety-critical: storage failures are logged and
// degrade to "inactive"/"no active users" rather than propagating.
package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/charlesolisa/chat-message/internal/domain"
	"github.com/charlesolisa/chat-message/internal/repo"
)

// maxNameRunes caps user names; the column is varchar(64).
const maxNameRunes = 64

// PresenceService tracks which users are active via heartbeat and expiry.
type PresenceService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Window is the duration after a heartbeat during which a user counts
	// as online.
	Window time.Duration
	// DefaultLang is applied when a join carries no language code, and when
	// reading the preference of a user who never set one.
	DefaultLang string
	// Log receives degradation warnings.
	Log zerolog.Logger

	// Now is a clock seam for tests; defaults to time.Now via now().
	Now func() time.Time
}

// NewPresenceService constructs a PresenceService with the given window.
// A non-positive window falls back to the two-minute default.
func NewPresenceService(db *gorm.DB, window time.Duration, log zerolog.Logger) *PresenceService {
	if window <= 0 {
		window = 2 * time.Minute
	}
	return &PresenceService{DB: db, Window: window, DefaultLang: "en", Log: log}
}

// Join claims a name for a new participant. The claim fails with
// ErrNameTaken while another holder of the name is still within the active
// window; an expired name is reclaimed by upserting over it. Validation
// errors are returned; storage errors during the activity check degrade to
// "not taken" since presence is advisory.
func (s *PresenceService) Join(ctx context.Context, name, preferredLanguage string) error {
	name, lang, err := s.validate(name, preferredLanguage)
	if err != nil {
		return err
	}

	u, err := repo.GetUser(ctx, s.DB, name)
	switch {
	case err == nil:
		if s.now().Sub(u.LastSeenAt) <= s.Window {
			return ErrNameTaken
		}
	case errors.Is(err, repo.ErrNotFound):
		// first contact
	default:
		s.Log.Warn().Err(err).Str("user", name).Msg("presence lookup failed, treating name as free")
	}

	// A join establishes the profile, so an omitted language means the
	// service default rather than "keep whatever is stored".
	if lang == "" {
		lang = s.DefaultLang
	}
	return s.record(ctx, name, lang)
}

// Heartbeat upserts the user's last-seen timestamp to now, creating the row
// on first contact. An empty preferredLanguage leaves the stored preference
// untouched; bare presence polls must not reset a user's language. Safe
// under concurrent calls: the upsert serializes at the database.
func (s *PresenceService) Heartbeat(ctx context.Context, name, preferredLanguage string) error {
	name, lang, err := s.validate(name, preferredLanguage)
	if err != nil {
		return err
	}
	return s.record(ctx, name, lang)
}

// IsActive reports whether the user heartbeated within the window. Unknown
// users and storage failures read as inactive.
func (s *PresenceService) IsActive(ctx context.Context, name string) bool {
	u, err := repo.GetUser(ctx, s.DB, name)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			s.Log.Warn().Err(err).Str("user", name).Msg("presence lookup failed")
		}
		return false
	}
	return s.now().Sub(u.LastSeenAt) <= s.Window
}

// ListActive returns all users inside the active window, most recent
// heartbeat first. Storage failures degrade to an empty directory. Callers
// that present a "who can I chat with" view filter out the viewer
// themselves.
func (s *PresenceService) ListActive(ctx context.Context) []domain.User {
	cutoff := s.now().Add(-s.Window)
	users, err := repo.ListActiveSince(ctx, s.DB, cutoff)
	if err != nil {
		s.Log.Warn().Err(err).Msg("presence listing failed, returning empty directory")
		return []domain.User{}
	}
	return users
}

// Expire forces the user offline by moving last-seen beyond the window.
// The row is kept for deterministic name reclamation.
func (s *PresenceService) Expire(ctx context.Context, name string) error {
	expiredAt := s.now().Add(-s.Window - time.Second)
	err := repo.ExpireUser(ctx, s.DB, name, expiredAt)
	if errors.Is(err, repo.ErrNotFound) {
		return err
	}
	if err != nil {
		s.Log.Warn().Err(err).Str("user", name).Msg("presence expire failed")
	}
	return err
}

// PreferredLanguage returns the stored language for name, or the service
// default when the user is unknown or storage is degraded.
func (s *PresenceService) PreferredLanguage(ctx context.Context, name string) string {
	u, err := repo.GetUser(ctx, s.DB, name)
	if err != nil || u.PreferredLanguage == "" {
		return s.DefaultLang
	}
	return u.PreferredLanguage
}

// record writes the heartbeat, logging and swallowing storage errors.
func (s *PresenceService) record(ctx context.Context, name, lang string) error {
	if err := repo.UpsertHeartbeat(ctx, s.DB, name, lang, s.now()); err != nil {
		s.Log.Warn().Err(err).Str("user", name).Msg("heartbeat write failed")
	}
	return nil
}

// validate normalizes and checks the name (letters only, bounded length)
// and the language code. An empty language stays empty; the caller decides
// whether that means "use the default" or "do not touch the stored one".
func (s *PresenceService) validate(name, lang string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxNameRunes || !isLetters(name) {
		return "", "", ErrNameInvalid
	}
	normalized, err := NormalizeLanguage(lang)
	if err != nil {
		return "", "", err
	}
	return name, normalized, nil
}

func (s *PresenceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// isLetters reports whether every rune in s is a letter, mirroring the
// join-form rule that names contain letters only.
func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
