package tags

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/infovalid/pkg/validator"
)

// Register adds every validator.Kind to v as a custom tag named after the
// kind ("mobile", "id_number", ...). The "email" and "url" tags replace the
// library's built-in checks on v.
func Register(v *playground.Validate) error {
	for _, kind := range validator.Kinds() {
		check := kind.Predicate()
		fn := func(fl playground.FieldLevel) bool {
			field := fl.Field()
			if field.Kind() != reflect.String {
				return false
			}
			return check(field.String())
		}
		if err := v.RegisterValidation(kind.String(), fn); err != nil {
			return fmt.Errorf("register tag %q: %w", kind, err)
		}
	}
	return nil
}

// New returns a validator with every kind registered. Field names in errors
// come from json tags when present.
func New() (*playground.Validate, error) {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := Register(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Struct validates s with v and converts field failures into
// validator.ValidationErrors. Other errors, such as passing a non-struct,
// are returned unchanged.
func Struct(v *playground.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(validator.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out.Add(convert(fe))
	}
	return out
}

func convert(fe playground.FieldError) validator.ValidationError {
	if kind, err := validator.ParseKind(fe.Tag()); err == nil {
		return validator.NewKindError(fe.Field(), kind)
	}

	values := map[string]any{"field": fe.Field()}
	if fe.Param() != "" {
		values["param"] = fe.Param()
	}
	return validator.ValidationError{
		Field:             fe.Field(),
		Message:           fmt.Sprintf("failed the %q rule", fe.Tag()),
		TranslationKey:    "validation." + fe.Tag(),
		TranslationValues: values,
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}
