// Package tags exposes the validator kinds as github.com/go-playground/validator
// struct tags:
//
//	type Signup struct {
//	    Username string `json:"username" validate:"required,username"`
//	    Phone    string `json:"phone" validate:"mobile"`
//	    IDNumber string `json:"id_number" validate:"omitempty,id_number"`
//	}
//
//	v, err := tags.New()
//	...
//	if err := tags.Struct(v, form); err != nil {
//	    verrs := validator.ExtractValidationErrors(err)
//	}
//
// Failures on kind tags carry the same Kind, message and translation key as
// the rule constructors in package validator.
package tags
