package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/carbon/internal/carbon/upstream"
	"github.com/aussiebroadwan/carbon/pkg/carbonsdk"
	"github.com/aussiebroadwan/carbon/pkg/httpx"
	"github.com/aussiebroadwan/carbon/pkg/slogx"
)

// UpstreamObserver counts failed upstream calls.
type UpstreamObserver interface {
	UpstreamError(upstream string)
}

type ChatHandler struct {
	Chat     upstream.ChatClient
	Observer UpstreamObserver
}

// ServeHTTP relays a message to the assistant.
//
//	@Summary		Chat
//	@Description	Forwards the message to the conversational agent. If the agent fails the reply is a fixed apology and the status is still 200.
//	@Tags			Proxies
//	@Accept			json
//	@Produce		json
//	@Param			body	body		carbonsdk.ChatRequest	true	"Message"
//	@Success		200		{object}	carbonsdk.ChatResponse	"Reply"
//	@Failure		400		{object}	carbonsdk.ErrorResponse	"Message is required"
//	@Router			/chat [post].
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req carbonsdk.ChatRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		carbonsdk.ErrInvalidBody.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		carbonsdk.ErrMessageRequired.WriteError(w)
		return
	}

	reply, err := h.Chat.SendMessage(r.Context(), req.Message)
	if err != nil {
		slogx.FromContext(r.Context()).Warn("chat upstream failed", "err", err)
		if h.Observer != nil {
			h.Observer.UpstreamError("dialogflow")
		}
		reply = upstream.ChatFallbackReply
	}

	httpx.WriteJSON(w, http.StatusOK, carbonsdk.ChatResponse{Reply: reply})
}

type NewsHandler struct {
	News         upstream.NewsClient
	DefaultQuery string
	Observer     UpstreamObserver
}

// ServeHTTP relays articles from the news API.
//
//	@Summary	News
//	@Tags		Proxies
//	@Produce	json
//	@Param		q	query		string					false	"Search query; defaults to the configured topic"
//	@Success	200	{array}		carbonsdk.Article		"Articles"
//	@Failure	500	{object}	carbonsdk.ErrorResponse	"Error fetching news"
//	@Router		/news [get].
func (h *NewsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		query = h.DefaultQuery
	}

	articles, err := h.News.FetchArticles(r.Context(), query)
	if err != nil {
		slogx.FromContext(r.Context()).Error("news upstream failed", "err", err)
		if h.Observer != nil {
			h.Observer.UpstreamError("newsapi")
		}
		carbonsdk.ErrNewsUnavailable.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, articles)
}
