// Package validator classifies form input against a fixed set of formats:
// usernames, passwords, mobile numbers, email addresses, Chinese text,
// national ID numbers, URLs, IP octets, school codes, vehicle license plates
// and strings that start with a letter.
//
// Every format is available as a plain predicate (IsMobile, IsIDNumber, ...)
// returning a bool, and as a Rule constructor (ValidMobile, ValidIDNumber,
// ...) for declarative validation with aggregated, translation-friendly
// errors.
//
// # Architecture
//
// Patterns are compiled once at package initialisation and never mutated.
// The Kind table maps each format name to its predicate and default failure
// message, which lets callers select a check by name (ParseKind, Match) and
// lets adapters such as the tags subpackage register all formats at once.
// There is no other package state, so every function is safe for concurrent
// use.
//
// National ID numbers combine a structural pattern with a weighted modulo-11
// check character. CheckDigit exposes the computation; IsIDNumber never
// returns an error and never panics, reporting any internal failure as false.
//
// # Usage
//
//	if !validator.IsMobile(form.Phone) {
//	    // reject
//	}
//
//	err := validator.Apply(
//	    validator.ValidUsername("username", form.Username),
//	    validator.ValidPassword("password", form.Password),
//	    validator.ValidIDNumber("id_number", form.IDNumber),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        // e.Field, e.Kind, e.TranslationKey
//	    }
//	}
//
// # Format notes
//
// IsURL and IsSchoolCode are prefix/substring checks, not full matches.
// IsIPAddr validates a single octet (0-255) and rejects dotted quads.
// Empty input never conforms to any format.
//
// # Error Handling
//
// ValidationErrors satisfies errors.Is(err, ErrValidationFailed). Use
// ExtractValidationErrors to inspect individual field failures.
package validator
