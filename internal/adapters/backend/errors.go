package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError is a non-2xx response from the coaching backend, flattened to a
// single message string.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}

// IsUnauthorized reports whether err is a backend 401, i.e. the forwarded
// session token is missing or expired.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 401
}

// ExtractErrorMessage flattens a backend error body to one string. The
// backend is inconsistent: some endpoints return {"error": "..."}, some
// {"detail": "..."}, some plain text.
func ExtractErrorMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}
	var envelope struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case envelope.Error != "":
			return envelope.Error
		case envelope.Detail != "":
			return envelope.Detail
		case envelope.Message != "":
			return envelope.Message
		}
	}
	return trimmed
}

// ErrorMessage returns the backend's own message for an APIError, or the
// full error text otherwise. Handlers use it to re-render forms with a plain
// message string.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// friendlyAuthMessages maps known backend auth error text (matched by
// substring) to wording fit for the login pages.
var friendlyAuthMessages = []struct {
	match    string
	friendly string
}{
	{"invalid code", "That code didn't match. Check the latest WhatsApp message and try again."},
	{"code expired", "That code has expired. Request a new one and try again."},
	{"too many attempts", "Too many attempts. Wait a few minutes before requesting another code."},
	{"unknown phone", "We couldn't find that number. Make sure you signed up with it."},
	{"user not found", "We couldn't find that number. Make sure you signed up with it."},
	{"rate limit", "Too many attempts. Wait a few minutes before requesting another code."},
	{"session expired", "Your session has expired. Please log in again."},
}

// FriendlyAuthError translates a backend auth error into a human-readable
// message, falling back to a generic one when the text is unrecognised.
func FriendlyAuthError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ToLower(err.Error())
	for _, m := range friendlyAuthMessages {
		if strings.Contains(msg, m.match) {
			return m.friendly
		}
	}
	return "Something went wrong logging you in. Please try again."
}
