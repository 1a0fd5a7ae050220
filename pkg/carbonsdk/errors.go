package carbonsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/carbon/pkg/httpx"
)

// Success messages.
const (
	MessageUserRegistered = "User registered successfully"
	MessageQuizSaved      = "Quiz answers saved successfully"
)

// APIError is an error response from the API. Handlers write the predefined
// values below; the client decodes responses back into an APIError.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Is matches on status and message, so errors decoded by the client compare
// equal to the predefined values with errors.Is.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.StatusCode == e.StatusCode && t.Message == e.Message
}

// WriteError writes e as {"message": ...} with its status code.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Message)
}

func newAPIError(code int, msg string) *APIError {
	return &APIError{StatusCode: code, Message: msg}
}

var (
	ErrInvalidBody  = newAPIError(http.StatusBadRequest, "Invalid request body")
	ErrServerError  = newAPIError(http.StatusInternalServerError, "Server error")
	ErrUnauthorized = newAPIError(http.StatusUnauthorized, httpx.UnauthorizedMessage)

	// signup / login
	ErrAllFieldsRequired  = newAPIError(http.StatusBadRequest, "All fields are required")
	ErrInvalidEmail       = newAPIError(http.StatusBadRequest, "Please enter a valid email address")
	ErrPasswordTooShort   = newAPIError(http.StatusBadRequest, "Password must be at least 8 characters long")
	ErrPasswordTooLong    = newAPIError(http.StatusBadRequest, "Password must be at most 72 bytes long")
	ErrEmailInUse         = newAPIError(http.StatusBadRequest, "Email is already in use")
	ErrUsernameTaken      = newAPIError(http.StatusBadRequest, "Username is already taken")
	ErrInvalidCredentials = newAPIError(http.StatusBadRequest, "Invalid email or password")

	// calculate
	ErrTripRequired    = newAPIError(http.StatusBadRequest, "vehicleType and distance are required")
	ErrInvalidDistance = newAPIError(http.StatusBadRequest, "distance must be a non-negative number")
	ErrVehicleNotFound = newAPIError(http.StatusNotFound, "Vehicle Not Found")

	// quiz / profile
	ErrQuizAnswersRequired = newAPIError(http.StatusBadRequest, "All quiz answers are required")
	ErrUserNotFound        = newAPIError(http.StatusNotFound, "User not found")
	ErrNoQuizAnswers       = newAPIError(http.StatusNotFound, "No quiz answers saved")

	// proxies
	ErrMessageRequired = newAPIError(http.StatusBadRequest, "Message is required")
	ErrNewsUnavailable = newAPIError(http.StatusInternalServerError, "Error fetching news")
)

// parseErrorResponse turns a non-2xx response into an *APIError. Bodies
// without a message fall back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Message}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
