package http

import (
	"net/http"

	"github.com/aussiebroadwan/carbon/internal/carbon/service"
	"github.com/aussiebroadwan/carbon/pkg/carbonsdk"
	"github.com/aussiebroadwan/carbon/pkg/httpx"
)

type SaveQuizHandler struct {
	UserService *service.UserService
}

// ServeHTTP replaces the caller's saved quiz answers.
//
//	@Summary		Save quiz answers
//	@Description	All five answers are required and replace any earlier submission.
//	@Tags			Quiz
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		carbonsdk.QuizAnswers		true	"Answers"
//	@Success		200		{object}	carbonsdk.MessageResponse	"Saved"
//	@Failure		400		{object}	carbonsdk.ErrorResponse		"Missing answers"
//	@Failure		401		{object}	carbonsdk.ErrorResponse		"Missing, invalid or expired token"
//	@Failure		404		{object}	carbonsdk.ErrorResponse		"User not found"
//	@Router			/saveQuiz [post].
func (h *SaveQuizHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		carbonsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req carbonsdk.QuizAnswers
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		carbonsdk.ErrInvalidBody.WriteError(w)
		return
	}

	if err := h.UserService.SaveQuiz(r.Context(), userID, fromSDKQuiz(req)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, carbonsdk.MessageResponse{
		Success: true,
		Message: carbonsdk.MessageQuizSaved,
	})
}

type SuggestionsHandler struct {
	UserService *service.UserService
}

// HandleSaved builds the report from the caller's saved answers.
//
//	@Summary	Suggestions for saved answers
//	@Tags		Quiz
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	carbonsdk.SuggestionsResponse	"Report"
//	@Failure	401	{object}	carbonsdk.ErrorResponse			"Missing, invalid or expired token"
//	@Failure	404	{object}	carbonsdk.ErrorResponse			"User not found or no answers saved"
//	@Router		/suggestions [get].
func (h *SuggestionsHandler) HandleSaved(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		carbonsdk.ErrUnauthorized.WriteError(w)
		return
	}

	text, err := h.UserService.Suggestions(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, carbonsdk.SuggestionsResponse{Suggestions: text})
}

// HandleAdHoc builds the report for answers in the body without saving them.
//
//	@Summary	Suggestions for given answers
//	@Tags		Quiz
//	@Accept		json
//	@Produce	json
//	@Param		body	body		carbonsdk.QuizAnswers			true	"Answers"
//	@Success	200		{object}	carbonsdk.SuggestionsResponse	"Report"
//	@Failure	400		{object}	carbonsdk.ErrorResponse			"Missing answers"
//	@Router		/suggestions [post].
func (h *SuggestionsHandler) HandleAdHoc(w http.ResponseWriter, r *http.Request) {
	var req carbonsdk.QuizAnswers
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		carbonsdk.ErrInvalidBody.WriteError(w)
		return
	}

	answers := fromSDKQuiz(req)
	if !answers.Complete() {
		carbonsdk.ErrQuizAnswersRequired.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, carbonsdk.SuggestionsResponse{
		Suggestions: service.GenerateSuggestions(answers),
	})
}
