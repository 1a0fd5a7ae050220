package carbonsdk

import (
	"context"
	"net/http"
)

// Session holds a session token for the authenticated endpoints. Tokens live
// one hour and cannot be refreshed; once calls start failing with
// ErrUnauthorized, log in again.
type Session struct {
	client *Client
	token  string
}

// Token returns the raw bearer token.
func (s *Session) Token() string { return s.token }

// SaveQuiz replaces the user's saved quiz answers.
func (s *Session) SaveQuiz(ctx context.Context, answers QuizAnswers) (*MessageResponse, error) {
	var out MessageResponse
	if err := s.client.call(ctx, http.MethodPost, "/saveQuiz", answers, &out, s.token, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the authenticated user's profile.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := s.client.call(ctx, http.MethodGet, "/me", nil, &out, s.token, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Suggestions returns the report for the user's saved answers.
func (s *Session) Suggestions(ctx context.Context) (string, error) {
	var out SuggestionsResponse
	if err := s.client.call(ctx, http.MethodGet, "/suggestions", nil, &out, s.token, http.StatusOK); err != nil {
		return "", err
	}
	return out.Suggestions, nil
}
