package service

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

// emailRe простая проверка формата email без похода в DNS.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// normalizeEmail приводит email к виду, в котором он хранится.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(email, password string) error {
	return fieldErrors(validation.Errors{
		"email":    validation.Validate(email, validation.Required, validation.Match(emailRe)),
		"password": validation.Validate(password, validation.Required),
	})
}

func validateNewBookmark(b models.NewBookmark) error {
	return fieldErrors(validation.Errors{
		"title": validation.Validate(b.Title, validation.Required),
		"link":  validation.Validate(b.Link, validation.Required),
	})
}

// validateBookmarkPatch: поле можно не передавать, но если передано, оно не пустое.
// description разрешено очищать.
func validateBookmarkPatch(p models.BookmarkPatch) error {
	return fieldErrors(validation.Errors{
		"title": validation.Validate(p.Title, validation.NilOrNotEmpty),
		"link":  validation.Validate(p.Link, validation.NilOrNotEmpty),
	})
}

func validateUserPatch(p models.UserPatch) error {
	return fieldErrors(validation.Errors{
		"email": validation.Validate(p.Email, validation.NilOrNotEmpty, validation.Match(emailRe)),
	})
}

// fieldErrors переводит ошибки ozzo в *serr.ValidationError, nil если ошибок нет.
func fieldErrors(errs validation.Errors) error {
	if errs.Filter() == nil {
		return nil
	}
	fields := make(map[string]string, len(errs))
	for name, err := range errs {
		if err != nil {
			fields[name] = err.Error()
		}
	}
	return serr.NewValidationError(fields)
}
