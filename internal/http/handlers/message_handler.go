// Message HTTP handlers.
//
// This file exposes REST endpoints for conversation messages:
//   - POST   /messages              (send a message to a peer or group)
//   - GET    /messages              (translated tail of a conversation)
//   - DELETE /messages              (drop a conversation's history)
//   - GET    /messages/{id}/audio   (synthesized speech for one message)
//
// Conversations are addressed by participants, not by key: the handler
// derives the canonical conversation key from the sender plus a `peer` (or
// `group`) parameter, so clients never need to know the key encoding. The
// derived key is echoed in responses for observability.
//
// Handlers are transport-thin: they validate and normalize inputs, delegate
// to the chat service, and translate results into HTTP responses.
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/charlesolisa/chat-message/internal/chatkey"
	"github.com/charlesolisa/chat-message/internal/domain"
	"github.com/charlesolisa/chat-message/internal/http/middleware"
	"github.com/charlesolisa/chat-message/internal/services"
	"github.com/charlesolisa/chat-message/internal/utils"
)

//
// DTOs
//

// SendMessageRequest is the JSON payload for sending a message.
//
// Exactly one of Peer or Group must be set. Sender defaults to the
// X-Chat-User header when omitted.
type SendMessageRequest struct {
	// Sender is the author's display name; defaults to X-Chat-User.
	Sender string `json:"sender" example:"Ana"`
	// Peer addresses a one-to-one conversation with this user.
	Peer string `json:"peer" example:"Ben"`
	// Group addresses a named group conversation instead of a peer.
	Group string `json:"group" example:"standup"`
	// Body is the message text. It must be non-empty after trimming.
	Body string `json:"body" binding:"required" example:"Hola, ¿cómo estás?"`
	// SourceLanguage optionally records the language the body was written in.
	SourceLanguage string `json:"source_language" example:"es"`
}

// SendMessageResponse reports the append outcome and, when a row was
// inserted, the stored message.
type SendMessageResponse struct {
	// Outcome is inserted or duplicate_suppressed.
	Outcome string `json:"outcome" example:"inserted"`
	// ConversationKey is the canonical key derived from the participants.
	ConversationKey string `json:"conversation_key" example:"Ana|Ben"`
	// Message is the stored row; nil when the outcome is duplicate_suppressed.
	Message *domain.Message `json:"message,omitempty"`
}

// HistoryResponse contains the recent tail of a conversation in
// chronological order, each line paired with its viewer-language rendering.
type HistoryResponse struct {
	ConversationKey string          `json:"conversation_key"`
	Messages        []services.Line `json:"messages"`
}

//
// Helpers
//

// resolveKey derives the canonical conversation key from (sender, peer,
// group). Exactly one of peer/group may be set; both or neither is an error.
func resolveKey(sender, peer, group string) (string, error) {
	peer = strings.TrimSpace(peer)
	group = strings.TrimSpace(group)
	switch {
	case peer != "" && group != "":
		return "", fmt.Errorf("peer and group are mutually exclusive")
	case group != "":
		return chatkey.Group(group), nil
	case peer != "":
		if sender == "" {
			return "", fmt.Errorf("sender required for a peer conversation")
		}
		return chatkey.Direct(sender, peer), nil
	default:
		return "", fmt.Errorf("peer or group required")
	}
}

// senderOf picks the explicit sender field when present, else falls back to
// the identity header.
func senderOf(c *gin.Context, explicit string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	return middleware.ChatUser(c)
}

//
// Handlers
//

// SendMessage godoc
// @ID          sendMessage
// @Summary     Send a message
// @Description Appends a message to the conversation with the given peer or
// @Description group. Resending identical text within the dedup window is
// @Description acknowledged but suppressed, so page reloads cannot double-post.
// @Tags        Messages
// @Accept      json
// @Produce     json
//
// @Param       X-Chat-User  header  string  false  "Sender when the body omits one"  example(Ana)
// @Param       body         body    handlers.SendMessageRequest  true  "Message payload"
//
// @Success     201  {object}  handlers.SendMessageResponse  "Stored"
// @Success     200  {object}  handlers.SendMessageResponse  "Duplicate suppressed"
// @Failure     400  {object}  handlers.ErrorResponse        "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse        "Internal error"
// @Router      /messages [post]
func (h *Handlers) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "body required")
		return
	}

	sender := senderOf(c, req.Sender)
	if sender == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "sender required")
		return
	}
	key, err := resolveKey(sender, req.Peer, req.Group)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}

	outcome, m, err := h.svc.Send(ctx, key, sender, req.Body, req.SourceLanguage)
	middleware.ObserveAppend(outcome.String())
	if err != nil {
		switch err {
		case services.ErrEmptyBody:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message body is empty")
		case services.ErrBodyTooLong:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message body too long")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeSendFailed, "message could not be stored")
		}
		return
	}

	status := http.StatusCreated
	if outcome == services.AppendDuplicateSuppressed {
		status = http.StatusOK
	}
	ok(c, status, SendMessageResponse{
		Outcome:         outcome.String(),
		ConversationKey: key,
		Message:         m,
	})
}

// History godoc
// @ID          conversationHistory
// @Summary     Read a conversation's recent messages
// @Description Returns the newest messages of the conversation in
// @Description chronological order, each with a rendering in the viewer's
// @Description language. Unreachable storage or translation degrades to an
// @Description empty list or the original text rather than an error.
// @Tags        Messages
// @Produce     json
//
// @Param       X-Chat-User  header  string  false  "Viewer; used as the peer conversation's first participant"  example(Ana)
// @Param       peer         query   string  false  "Other participant of a one-to-one conversation"  example(Ben)
// @Param       group        query   string  false  "Group conversation name (instead of peer)"       example(standup)
// @Param       lang         query   string  false  "Viewer language; defaults to the caller's preferred language"  example(en)
// @Param       limit        query   int     false  "Maximum messages returned"  minimum(1) default(100)
//
// @Success     200  {object}  handlers.HistoryResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /messages [get]
func (h *Handlers) History(c *gin.Context) {
	ctx := c.Request.Context()

	viewer := middleware.ChatUser(c)
	key, err := resolveKey(viewer, c.Query("peer"), c.Query("group"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}

	lang, err := services.NormalizeLanguage(c.Query("lang"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeInvalidLanguage, "unsupported language code")
		return
	}
	if lang == "" && viewer != "" {
		// No explicit choice: render in the viewer's persisted language.
		lang = h.svc.PreferredLanguage(ctx, viewer)
	}
	limit := utils.AtoiDefault(c.Query("limit"), 0) // 0 → service default

	lines := h.svc.History(ctx, key, lang, limit)
	ok(c, http.StatusOK, HistoryResponse{ConversationKey: key, Messages: lines})
}

// DeleteConversation godoc
// @ID          deleteConversation
// @Summary     Delete a conversation's history
// @Description Permanently removes every stored message of the conversation
// @Description with the given peer or group.
// @Tags        Messages
//
// @Param       X-Chat-User  header  string  false  "Caller; first participant of a peer conversation"  example(Ana)
// @Param       peer         query   string  false  "Other participant"       example(Ben)
// @Param       group        query   string  false  "Group conversation name" example(standup)
//
// @Success     204  "History removed"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /messages [delete]
func (h *Handlers) DeleteConversation(c *gin.Context) {
	ctx := c.Request.Context()

	caller := middleware.ChatUser(c)
	key, err := resolveKey(caller, c.Query("peer"), c.Query("group"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}

	if err := h.svc.DeleteConversation(ctx, key); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "delete failed")
		return
	}
	noContent(c)
}

// MessageAudio godoc
// @ID          messageAudio
// @Summary     Synthesized speech for a message
// @Description Returns MP3 audio of the message body rendered in the given
// @Description language. Fresh synthesis results are cached on disk, so
// @Description repeated playback of the same line is served from cache.
// @Tags        Messages
// @Produce     audio/mpeg
//
// @Param       id    path   string  true   "Message ID (UUID)"  format(uuid)
// @Param       lang  query  string  false  "Playback language"  example(en)
//
// @Success     200  {file}    file                    "MP3 bytes"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown message or synthesis unavailable"
// @Router      /messages/{id}/audio [get]
func (h *Handlers) MessageAudio(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	lang, err := services.NormalizeLanguage(c.Query("lang"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeInvalidLanguage, "unsupported language code")
		return
	}
	if lang == "" {
		lang = "en"
	}

	audio := h.svc.LineAudio(ctx, id, lang)
	if len(audio) == 0 {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "no audio for this message")
		return
	}

	// Synthesis output is immutable per (message, lang); let browsers keep it.
	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, "audio/mpeg", audio)
}
