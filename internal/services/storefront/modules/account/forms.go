package account

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// signupForm field order sets which failure is reported first, so a
// mismatched confirmation wins over a short password.
type signupForm struct {
	Name                 string `validate:"required"`
	Email                string `validate:"required,email"`
	PasswordConfirmation string `validate:"eqfield=Password"`
	Password             string `validate:"required,min=8"`
}

func parseLoginForm(r *http.Request) loginForm {
	return loginForm{
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
	}
}

func parseSignupForm(r *http.Request) signupForm {
	return signupForm{
		Name:                 strings.TrimSpace(r.PostForm.Get("name")),
		Email:                strings.TrimSpace(r.PostForm.Get("email")),
		Password:             r.PostForm.Get("password"),
		PasswordConfirmation: r.PostForm.Get("password_confirmation"),
	}
}

// validationKey returns the message key for the first failing field, or ""
// when form is valid.
func validationKey(form any) string {
	err := validate.Struct(form)
	if err == nil {
		return ""
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "error.validation"
	}
	first := fieldErrs[0]
	switch first.Field() {
	case "Name":
		return "error.name_required"
	case "Email":
		return "error.email_invalid"
	case "PasswordConfirmation":
		return "error.passwords_mismatch"
	case "Password":
		if first.Tag() == "min" {
			return "error.password_too_short"
		}
		return "error.password_required"
	default:
		return "error.validation"
	}
}
