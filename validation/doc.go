// Package validation provides struct tag validation backed by
// go-playground/validator.
//
// Field names in messages follow the mapstructure (config) or json tag of the
// field, falling back to snake_case.
//
//	type Caption struct {
//	    LineCount int `mapstructure:"line_count" validate:"gt=0"`
//	}
//	err := validation.Validate(cfg)
//	for _, fe := range validation.FieldErrors(err) { ... }
package validation
