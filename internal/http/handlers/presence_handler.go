// Presence HTTP handlers.
//
// This file exposes REST endpoints for the online directory:
//   - POST   /users/{name}            (join the chat under a display name)
//   - PUT    /users/{name}/heartbeat  (refresh the two-minute activity window)
//   - DELETE /users/{name}            (leave; the name becomes reclaimable)
//   - GET    /users                   (list active users, excluding the caller)
//   - GET    /languages               (selectable translation/speech languages)
//
// Handlers are transport-thin: they validate input, call the chat service,
// and translate results into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesolisa/chat-message/internal/domain"
	"github.com/charlesolisa/chat-message/internal/http/middleware"
	"github.com/charlesolisa/chat-message/internal/repo"
	"github.com/charlesolisa/chat-message/internal/services"
)

// ChatAPI is the service surface consumed by the HTTP handlers.
//
// Implementations must be safe for concurrent use and honor the provided
// context for cancellation and timeouts. *services.ChatService satisfies it.
type ChatAPI interface {
	// Join claims name for an active user; ErrNameTaken while held.
	Join(ctx context.Context, name, preferredLanguage string) error
	// Heartbeat refreshes name's activity window.
	Heartbeat(ctx context.Context, name, preferredLanguage string) error
	// Leave forces name offline.
	Leave(ctx context.Context, name string) error
	// Directory lists active users other than self.
	Directory(ctx context.Context, self string) []domain.User
	// PreferredLanguage returns name's persisted viewer language.
	PreferredLanguage(ctx context.Context, name string) string
	// Send appends a message to the conversation identified by key.
	Send(ctx context.Context, conversationKey, sender, body, sourceLanguage string) (services.AppendOutcome, *domain.Message, error)
	// History returns the recent tail of a conversation, translated for the viewer.
	History(ctx context.Context, conversationKey, viewerLang string, limit int) []services.Line
	// LineAudio returns synthesized speech for a stored message, or nil.
	LineAudio(ctx context.Context, messageID, lang string) []byte
	// DeleteConversation removes a conversation's full history.
	DeleteConversation(ctx context.Context, conversationKey string) error
}

// Handlers groups the HTTP endpoints for presence, messages, and audio.
// It depends on the ChatAPI interface to keep transport concerns separate
// from business logic.
type Handlers struct {
	svc ChatAPI
}

// New constructs a Handlers instance bound to the given service.
func New(svc ChatAPI) *Handlers {
	return &Handlers{svc: svc}
}

//
// DTOs
//

// JoinRequest is the optional JSON payload for joining or heartbeating.
type JoinRequest struct {
	// PreferredLanguage sets the viewer language persisted with the profile.
	PreferredLanguage string `json:"preferred_language" example:"fr"`
}

// DirectoryResponse lists users currently inside the activity window.
type DirectoryResponse struct {
	Users []domain.User `json:"users"`
}

// LanguagesResponse lists the selectable translation/speech languages.
type LanguagesResponse struct {
	Languages []services.Language `json:"languages"`
}

// bindJoinBody decodes the optional JSON body shared by join and heartbeat.
// An empty body is fine; malformed JSON is not.
func bindJoinBody(c *gin.Context) (JoinRequest, bool) {
	var req JoinRequest
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "malformed JSON body")
		return req, false
	}
	return req, true
}

//
// Handlers
//

// Join godoc
// @ID          joinChat
// @Summary     Join the chat under a display name
// @Description Claims a letters-only display name and marks it online. The name
// @Description stays reserved while its holder heartbeats; once the activity
// @Description window lapses the name can be claimed by someone else.
// @Tags        Presence
// @Accept      json
// @Produce     json
//
// @Param       name  path  string               true   "Display name (letters only)"  example(Ana)
// @Param       body  body  handlers.JoinRequest false  "Optional profile settings"
//
// @Success     201  "Joined"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid name or language"
// @Failure     409  {object}  handlers.ErrorResponse  "Name held by an active user"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/{name} [post]
func (h *Handlers) Join(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	req, okBody := bindJoinBody(c)
	if !okBody {
		return
	}

	if err := h.svc.Join(ctx, name, req.PreferredLanguage); err != nil {
		switch {
		case errors.Is(err, services.ErrNameInvalid):
			fail(c, http.StatusBadRequest, ErrCodeInvalidName, "name must be letters only")
		case errors.Is(err, services.ErrLanguageInvalid):
			fail(c, http.StatusBadRequest, ErrCodeInvalidLanguage, "unsupported language code")
		case errors.Is(err, services.ErrNameTaken):
			fail(c, http.StatusConflict, ErrCodeNameTaken, "name is in use by an active user")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "join failed")
		}
		return
	}

	middleware.LoggerFrom(c).Info().Str("user", name).Msg("user joined")
	c.Status(http.StatusCreated)
}

// Heartbeat godoc
// @ID          heartbeat
// @Summary     Refresh presence
// @Description Extends the caller's activity window. Unlike join, heartbeat
// @Description never conflicts: it refreshes the caller's own claim. A body
// @Description with a language updates the stored preference; a bare poll
// @Description leaves it untouched.
// @Tags        Presence
// @Accept      json
//
// @Param       name  path  string               true   "Display name (letters only)"  example(Ana)
// @Param       body  body  handlers.JoinRequest false  "Optional profile settings"
//
// @Success     204  "Presence refreshed"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid name or language"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/{name}/heartbeat [put]
func (h *Handlers) Heartbeat(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	req, okBody := bindJoinBody(c)
	if !okBody {
		return
	}

	if err := h.svc.Heartbeat(ctx, name, req.PreferredLanguage); err != nil {
		switch {
		case errors.Is(err, services.ErrNameInvalid):
			fail(c, http.StatusBadRequest, ErrCodeInvalidName, "name must be letters only")
		case errors.Is(err, services.ErrLanguageInvalid):
			fail(c, http.StatusBadRequest, ErrCodeInvalidLanguage, "unsupported language code")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "heartbeat failed")
		}
		return
	}
	noContent(c)
}

// Leave godoc
// @ID          leaveChat
// @Summary     Leave the chat
// @Description Forces the caller offline so the directory stops listing them.
// @Tags        Presence
//
// @Param       name  path  string  true  "Display name"  example(Ana)
//
// @Success     204  "Left"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown name"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/{name} [delete]
func (h *Handlers) Leave(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	if err := h.svc.Leave(ctx, name); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "unknown user")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "leave failed")
		return
	}
	noContent(c)
}

// Directory godoc
// @ID          listUsers
// @Summary     List online users
// @Description Returns users whose last heartbeat falls inside the activity
// @Description window, most recent first. The caller (X-Chat-User) is excluded.
// @Tags        Presence
// @Produce     json
//
// @Param       X-Chat-User  header  string  false  "Caller's display name (excluded from the listing)"  example(Ana)
//
// @Success     200  {object}  handlers.DirectoryResponse
// @Router      /users [get]
func (h *Handlers) Directory(c *gin.Context) {
	ctx := c.Request.Context()
	self := middleware.ChatUser(c)
	users := h.svc.Directory(ctx, self)
	ok(c, http.StatusOK, DirectoryResponse{Users: users})
}

// Languages godoc
// @ID          listLanguages
// @Summary     List selectable languages
// @Description Returns the language codes accepted for preferred_language,
// @Description history translation, and speech synthesis.
// @Tags        Presence
// @Produce     json
//
// @Success     200  {object}  handlers.LanguagesResponse
// @Router      /languages [get]
func (h *Handlers) Languages(c *gin.Context) {
	ok(c, http.StatusOK, LanguagesResponse{Languages: services.SupportedLanguages()})
}
