package http

import (
	"net/http"

	"github.com/aussiebroadwan/carbon/internal/carbon/domain"
	"github.com/aussiebroadwan/carbon/internal/carbon/service"
	"github.com/aussiebroadwan/carbon/pkg/carbonsdk"
	"github.com/aussiebroadwan/carbon/pkg/httpx"
)

type SignupHandler struct {
	UserService *service.UserService
}

// ServeHTTP registers a user and returns a session token.
//
//	@Summary		Sign up
//	@Description	Creates an account. Email must look like an address and the password must be 8 to 72 bytes.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		carbonsdk.SignupRequest		true	"New account"
//	@Success		201		{object}	carbonsdk.SignupResponse	"Registered, with session token"
//	@Failure		400		{object}	carbonsdk.ErrorResponse		"Missing or invalid field, or email/username taken"
//	@Failure		500		{object}	carbonsdk.ErrorResponse		"Server error"
//	@Router			/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req carbonsdk.SignupRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		carbonsdk.ErrInvalidBody.WriteError(w)
		return
	}

	_, token, err := h.UserService.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, carbonsdk.SignupResponse{
		Success: true,
		Message: carbonsdk.MessageUserRegistered,
		Token:   token,
	})
}

type LoginHandler struct {
	UserService *service.UserService
}

// ServeHTTP exchanges email and password for a session token.
//
//	@Summary		Log in
//	@Description	Unknown email and wrong password produce the same 400 response.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		carbonsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	carbonsdk.LoginResponse	"Session token"
//	@Failure		400		{object}	carbonsdk.ErrorResponse	"Missing fields or invalid credentials"
//	@Failure		500		{object}	carbonsdk.ErrorResponse	"Server error"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req carbonsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		carbonsdk.ErrInvalidBody.WriteError(w)
		return
	}

	token, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, carbonsdk.LoginResponse{Success: true, Token: token})
}

type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP returns the authenticated user's profile.
//
//	@Summary		Current user
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	carbonsdk.UserResponse	"Profile with saved quiz answers, if any"
//	@Failure		401	{object}	carbonsdk.ErrorResponse	"Missing, invalid or expired token"
//	@Failure		404	{object}	carbonsdk.ErrorResponse	"User not found"
//	@Router			/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		carbonsdk.ErrUnauthorized.WriteError(w)
		return
	}

	u, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, carbonsdk.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		QuizAnswers: toSDKQuiz(u.QuizAnswers),
	})
}

func toSDKQuiz(q *domain.QuizAnswers) *carbonsdk.QuizAnswers {
	if q == nil {
		return nil
	}
	return &carbonsdk.QuizAnswers{
		Transportation:   q.Transportation,
		MeatConsumption:  q.MeatConsumption,
		Recycling:        q.Recycling,
		EnergyEfficiency: q.EnergyEfficiency,
		ElectricityUsage: q.ElectricityUsage,
	}
}

func fromSDKQuiz(q carbonsdk.QuizAnswers) domain.QuizAnswers {
	return domain.QuizAnswers{
		Transportation:   q.Transportation,
		MeatConsumption:  q.MeatConsumption,
		Recycling:        q.Recycling,
		EnergyEfficiency: q.EnergyEfficiency,
		ElectricityUsage: q.ElectricityUsage,
	}
}
