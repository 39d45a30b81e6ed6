package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// SynthesizeFunc produces audio bytes for text spoken in lang. A failure is
// reported with an error; AudioCache callers see absence, never the error.
type SynthesizeFunc func(text, lang string) ([]byte, error)

// AudioCache memoizes synthesized speech on disk. Artifacts are keyed by a
// deterministic hash of (text, lang) so the next reload of the same message
// reuses the same file across cache instances and process restarts.
//
// Freshness is checked on read: an artifact older than the freshness window
// is regenerated in place. Disk usage is bounded by Sweep, which removes
// stale artifacts and is safe to run concurrently with reads and writes:
// duplicate regeneration of the same key is idempotent, and staleness is
// re-checked per file at delete time so an artifact rewritten after the
// sweep started is not removed.
type AudioCache struct {
	dir       string
	freshness time.Duration
	log       zerolog.Logger

	// now is a seam for tests; defaults to time.Now.
	now func() time.Time
}

// NewAudioCache creates the cache directory if needed and returns a cache
// serving artifacts younger than freshness.
func NewAudioCache(dir string, freshness time.Duration, log zerolog.Logger) (*AudioCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if freshness <= 0 {
		freshness = 300 * time.Second
	}
	return &AudioCache{dir: dir, freshness: freshness, log: log, now: time.Now}, nil
}

// Get returns audio bytes for (text, lang). A cached artifact younger than
// the freshness window is served as-is; otherwise fn is invoked, its output
// persisted under the deterministic name, and the fresh bytes returned.
// On synthesis failure Get returns nil; missing audio is a degraded
// experience, not an error.
func (a *AudioCache) Get(text, lang string, fn SynthesizeFunc) []byte {
	path := a.path(text, lang)

	if info, err := os.Stat(path); err == nil {
		if a.now().Sub(info.ModTime()) < a.freshness {
			if data, err := os.ReadFile(path); err == nil {
				return data
			}
		}
	}

	data, err := fn(text, lang)
	if err != nil || len(data) == 0 {
		if err != nil {
			a.log.Warn().Err(err).Str("lang", lang).Msg("speech synthesis failed")
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		// Serving un-persisted bytes is still correct; the next read regenerates.
		a.log.Warn().Err(err).Str("path", path).Msg("audio cache write failed")
	}
	return data
}

// Sweep removes artifacts older than maxAge and returns how many files were
// deleted. Age is re-read per file immediately before deletion, so a file
// regenerated while the sweep is in flight survives.
func (a *AudioCache) Sweep(maxAge time.Duration) int {
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		a.log.Warn().Err(err).Str("dir", a.dir).Msg("audio cache sweep failed")
		return 0
	}

	removed := 0
	cutoff := a.now().Add(-maxAge)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(a.dir, e.Name())
		// Staleness decided at delete time, not from a pre-computed list.
		info, err := os.Stat(path)
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err == nil {
			removed++
		}
	}
	return removed
}

// path derives the on-disk artifact path for (text, lang).
func (a *AudioCache) path(text, lang string) string {
	h := sha256.New()
	h.Write([]byte(lang))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return filepath.Join(a.dir, hex.EncodeToString(h.Sum(nil))+".mp3")
}
