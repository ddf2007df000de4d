package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/crewchat-dev/crewchat/internal/domain"
	"github.com/crewchat-dev/crewchat/internal/errors"
	"github.com/crewchat-dev/crewchat/internal/logger"
)

type MessageValidator struct{}

func (e *MessageValidator) Text(text string) error {
	if len(text) == 0 {
		return &errors.ValidationError{Message: "Message is empty"}
	}
	if utf8.RuneCountInString(text) > domain.MaxMsgLen {
		return &errors.ValidationError{Message: "Message is too long"}
	}
	return nil
}

// Query length rules match message bodies.
func (e *MessageValidator) Query(query string) error {
	if len(query) == 0 {
		return &errors.ValidationError{Message: "Query is empty"}
	}
	if utf8.RuneCountInString(query) > domain.MaxMsgLen {
		return &errors.ValidationError{Message: "Query is too long"}
	}
	return nil
}

type ChannelNameValidator struct{}

func (e *ChannelNameValidator) Name(name string) error {
	if len(name) == 0 {
		return &errors.ValidationError{Message: "Name is empty"}
	}
	if utf8.RuneCountInString(name) > 20 {
		return &errors.ValidationError{Message: "Name is too long"}
	}
	return nil
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type CredentialsValidator struct{}

func (e *CredentialsValidator) Email(email string) error {
	if !emailRe.MatchString(email) {
		return &errors.ValidationError{Message: "Email is invalid"}
	}
	return nil
}

func (e *CredentialsValidator) Password(password string) error {
	if len(password) < 6 {
		return &errors.ValidationError{Message: "Password is too short"}
	}
	return nil
}

func (e *CredentialsValidator) HumanName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < 1 || n > 50 {
		return &errors.ValidationError{Message: "Name must be 1-50 characters"}
	}
	return nil
}

// WriteErrorAndStatusCode maps the typed error kinds onto transport status
// codes. The engine itself never sees status codes.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	switch err.(type) {
	case *errors.ValidationError:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case *errors.NotFoundError:
		http.Error(w, err.Error(), http.StatusNotFound)
	case *errors.PermissionError:
		http.Error(w, err.Error(), http.StatusForbidden)
	case *errors.ConflictError:
		http.Error(w, err.Error(), http.StatusConflict)
	case *errors.AuthError:
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		logger.Log.Error("unexpected handler error", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &errors.ValidationError{Message: "Body is invalid json"}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return &errors.ValidationError{Message: "Required fields missing"}
	}
	return nil
}
