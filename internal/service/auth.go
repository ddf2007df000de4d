package service

import (
	"strings"
	"unicode"

	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"
	"github.com/crewchat-dev/crewchat/internal/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

type AuthService interface {
	Register(email, password, nameFirst, nameLast string) (string, domain.UserId, error)
	Login(creds domain.Credentials) (string, domain.UserId, error)
}

type Auth struct {
	storage   AuthStorage
	jwt       Jwt
	validator CredentialsValidator
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.User, error)
	UserByEmail(email domain.Email) (domain.User, error)
}

type Jwt interface {
	NewToken(uid domain.UserId) (string, error)
}

type CredentialsValidator interface {
	Email(email string) error
	Password(password string) error
	HumanName(name string) error
}

func NewAuth(storage AuthStorage, jwt Jwt, validator CredentialsValidator) *Auth {
	return &Auth{storage, jwt, validator}
}

// Register stores the user with a bcrypt password hash and a generated
// handle, then logs them in.
func (a *Auth) Register(email, password, nameFirst, nameLast string) (string, domain.UserId, error) {
	if err := a.validator.Email(email); err != nil {
		return "", 0, err
	}
	if err := a.validator.Password(password); err != nil {
		return "", 0, err
	}
	if err := a.validator.HumanName(nameFirst); err != nil {
		return "", 0, err
	}
	if err := a.validator.HumanName(nameLast); err != nil {
		return "", 0, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", 0, err
	}

	user, err := a.storage.SaveUser(domain.User{
		Email:     email,
		PassHash:  passHash,
		NameFirst: nameFirst,
		NameLast:  nameLast,
		Handle:    baseHandle(nameFirst, nameLast),
	})
	if err != nil {
		return "", 0, err
	}

	token, err := a.jwt.NewToken(user.Id)
	if err != nil {
		return "", 0, err
	}
	return token, user.Id, nil
}

func (a *Auth) Login(creds domain.Credentials) (string, domain.UserId, error) {
	user, err := a.storage.UserByEmail(creds.Email)
	if err != nil {
		return "", 0, &internal_errors.AuthError{Message: "Wrong email or password"}
	}
	if bcrypt.CompareHashAndPassword(user.PassHash, []byte(creds.Password)) != nil {
		return "", 0, &internal_errors.AuthError{Message: "Wrong email or password"}
	}

	token, err := a.jwt.NewToken(user.Id)
	if err != nil {
		return "", 0, err
	}
	return token, user.Id, nil
}

// baseHandle concatenates the lowercased names, drops everything that is not
// lowercase-alphanumeric and trims to 20 chars. Uniqueness suffixes are the
// storage layer's job.
func baseHandle(nameFirst, nameLast string) domain.Handle {
	var b strings.Builder
	for _, r := range strings.ToLower(nameFirst + nameLast) {
		if unicode.IsLower(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	handle := b.String()
	if len(handle) > 20 {
		handle = handle[:20]
	}
	if handle == "" {
		handle = "user"
	}
	return handle
}
