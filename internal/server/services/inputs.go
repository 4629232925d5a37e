package services

import (
	"errors"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/password"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type RegisterInput struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (r RegisterInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&r.Password, validation.Required, validation.By(maxBytes(password.MaxLength))),
		validation.Field(&r.PasswordConfirm, validation.Required, validation.By(stringEquals(r.Password))),
	)
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.By(maxBytes(password.MaxLength))),
	)
}

// TwoFactorInput completes a login. Secret is only consulted while the user
// has no enrolled secret.
type TwoFactorInput struct {
	UserID string `json:"id"`
	Code   string `json:"code"`
	Secret string `json:"secret,omitempty"`
}

func (r TwoFactorInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required, is.UUID),
		validation.Field(&r.Code, validation.Required, validation.Length(6, 8), is.Digit),
		validation.Field(&r.Secret, validation.Length(16, 128)),
	)
}

type ForgotInput struct {
	Email string `json:"email"`
}

func (r ForgotInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type ResetInput struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (r ResetInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required, is.Hexadecimal),
		validation.Field(&r.Password, validation.Required, validation.By(maxBytes(password.MaxLength))),
		validation.Field(&r.PasswordConfirm, validation.Required, validation.By(stringEquals(r.Password))),
	)
}

func stringEquals(str string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != str {
			return errors.New("passwords do not match")
		}
		return nil
	}
}

// maxBytes bounds the encoded length; bcrypt rejects longer input.
func maxBytes(n int) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if len(s) > n {
			return errors.New("is too long")
		}
		return nil
	}
}

type validatable interface {
	Validate() error
}

func validate(in validatable) error {
	if err := in.Validate(); err != nil {
		return common.Validation(err)
	}
	return nil
}
