// Package services – ChatService
//
// This file implements the ChatService composition root. It owns no state
// beyond references to the presence store, message store, both caches, and
// the two external collaborators (translation, speech synthesis), and it
// sequences one poll/reload interaction cycle: refresh presence, resolve
// the directory, append any outgoing message, and serve translated history
// with per-line audio.
//
// Degradation policy: "no other active users" and "no messages yet" are
// explicit empty results; translator failure serves the original text;
// synthesizer failure serves no audio. None of these block message flow.
package services

import (
	"context"

	"github.com/rs/zerolog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/charlesolisa/chat-message/internal/cache"
	"github.com/charlesolisa/chat-message/internal/domain"
	"github.com/charlesolisa/chat-message/internal/speech"
	"github.com/charlesolisa/chat-message/internal/translate"
)

// Line is one rendered history entry: the stored message plus its
// translation into the viewer's language.
type Line struct {
	Message    domain.Message `json:"message"`
	Translated string         `json:"translated"`
}

// ChatService wires the chat core together for the presentation layer.
type ChatService struct {
	Presence     *PresenceService
	Messages     *MessageService
	Translations *cache.TranslationLRU
	Audio        *cache.AudioCache
	Translator   translate.Translator
	Synthesizer  speech.Synthesizer
	Log          zerolog.Logger
}

// Join claims a name and marks it online. See PresenceService.Join.
func (s *ChatService) Join(ctx context.Context, name, preferredLanguage string) error {
	return s.Presence.Join(ctx, name, preferredLanguage)
}

// Heartbeat refreshes the caller's presence. See PresenceService.Heartbeat.
func (s *ChatService) Heartbeat(ctx context.Context, name, preferredLanguage string) error {
	return s.Presence.Heartbeat(ctx, name, preferredLanguage)
}

// Leave forces the caller offline; their name becomes reclaimable once the
// active window elapses.
func (s *ChatService) Leave(ctx context.Context, name string) error {
	return s.Presence.Expire(ctx, name)
}

// Directory lists the users self could chat with: everyone active except
// self, most recent heartbeat first. Empty when nobody else is online.
func (s *ChatService) Directory(ctx context.Context, self string) []domain.User {
	active := s.Presence.ListActive(ctx)
	out := make([]domain.User, 0, len(active))
	for _, u := range active {
		if u.Name != self {
			out = append(out, u)
		}
	}
	return out
}

// PreferredLanguage returns name's persisted viewer language, falling back
// to the presence default for unknown users.
func (s *ChatService) PreferredLanguage(ctx context.Context, name string) string {
	return s.Presence.PreferredLanguage(ctx, name)
}

// Send refreshes the sender's presence and appends the outgoing message.
// The heartbeat half is advisory and cannot fail the append. The message's
// source language describes the message, not the sender, so it never touches
// the sender's stored preference.
func (s *ChatService) Send(ctx context.Context, conversationKey, sender, body, sourceLanguage string) (AppendOutcome, *domain.Message, error) {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "Send",
		trace.WithAttributes(
			attribute.String("chat.key", conversationKey),
			attribute.String("chat.sender", sender),
		),
	)
	defer span.End()

	if err := s.Presence.Heartbeat(ctx, sender, ""); err != nil {
		s.Log.Debug().Err(err).Str("user", sender).Msg("send-side heartbeat skipped")
	}
	return s.Messages.Append(ctx, conversationKey, sender, body, sourceLanguage)
}

// History returns the conversation tail translated into viewerLang. Storage
// failure degrades to an empty history with a warning; per-line translation
// failure degrades to the original text. An empty conversation is an empty
// slice, not an error.
func (s *ChatService) History(ctx context.Context, conversationKey, viewerLang string, limit int) []Line {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "History",
		trace.WithAttributes(
			attribute.String("chat.key", conversationKey),
			attribute.String("chat.viewer_lang", viewerLang),
		),
	)
	defer span.End()

	msgs, err := s.Messages.Recent(ctx, conversationKey, limit)
	if err != nil {
		s.Log.Warn().Err(err).Str("key", conversationKey).Msg("history read failed, serving empty view")
		return []Line{}
	}

	lines := make([]Line, 0, len(msgs))
	for _, m := range msgs {
		lines = append(lines, Line{
			Message:    m,
			Translated: s.translated(ctx, m.Body, viewerLang),
		})
	}
	return lines
}

// LineAudio synthesizes (or serves cached) speech for one stored message,
// spoken in lang after translation. Absence (unknown message, synthesis
// failure) is nil, never an error surfaced to the chat flow.
func (s *ChatService) LineAudio(ctx context.Context, messageID, lang string) []byte {
	m, err := s.Messages.Get(ctx, messageID)
	if err != nil {
		return nil
	}
	text := s.translated(ctx, m.Body, lang)
	return s.Audio.Get(text, lang, func(text, lang string) ([]byte, error) {
		return s.Synthesizer.Synthesize(ctx, text, lang)
	})
}

// DeleteConversation removes a conversation's full history.
func (s *ChatService) DeleteConversation(ctx context.Context, conversationKey string) error {
	return s.Messages.DeleteConversation(ctx, conversationKey)
}

// translated runs text through the LRU-backed translation path; translator
// failure yields the original text.
func (s *ChatService) translated(ctx context.Context, text, targetLang string) string {
	if targetLang == "" {
		return text
	}
	return s.Translations.Translate(text, targetLang, func(text, lang string) (string, error) {
		return s.Translator.Translate(ctx, text, lang)
	})
}
