package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/carbon/internal/carbon/service"
	"github.com/aussiebroadwan/carbon/pkg/carbonsdk"
	"github.com/aussiebroadwan/carbon/pkg/slogx"
)

// serviceErrors maps service sentinels to the response each one produces.
var serviceErrors = []struct {
	err  error
	resp *carbonsdk.APIError
}{
	{service.ErrMissingFields, carbonsdk.ErrAllFieldsRequired},
	{service.ErrInvalidEmail, carbonsdk.ErrInvalidEmail},
	{service.ErrPasswordTooShort, carbonsdk.ErrPasswordTooShort},
	{service.ErrPasswordTooLong, carbonsdk.ErrPasswordTooLong},
	{service.ErrEmailTaken, carbonsdk.ErrEmailInUse},
	{service.ErrUsernameTaken, carbonsdk.ErrUsernameTaken},
	{service.ErrInvalidCredentials, carbonsdk.ErrInvalidCredentials},
	{service.ErrMissingTrip, carbonsdk.ErrTripRequired},
	{service.ErrInvalidDistance, carbonsdk.ErrInvalidDistance},
	{service.ErrVehicleNotFound, carbonsdk.ErrVehicleNotFound},
	{service.ErrMissingAnswers, carbonsdk.ErrQuizAnswersRequired},
	{service.ErrUserNotFound, carbonsdk.ErrUserNotFound},
	{service.ErrNoQuizAnswers, carbonsdk.ErrNoQuizAnswers},
	{service.ErrInvalidToken, carbonsdk.ErrUnauthorized},
	{service.ErrExpiredToken, carbonsdk.ErrUnauthorized},
}

// writeServiceError writes the response for a service error. Anything not
// in serviceErrors is logged and becomes a 500 with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			m.resp.WriteError(w)
			return
		}
	}

	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	carbonsdk.ErrServerError.WriteError(w)
}
