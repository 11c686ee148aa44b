package validator

import (
	"fmt"
	"slices"
	"strings"
)

// Kind names one of the fixed input formats.
type Kind string

const (
	KindUsername     Kind = "username"
	KindPassword     Kind = "password"
	KindMobile       Kind = "mobile"
	KindEmail        Kind = "email"
	KindChinese      Kind = "chinese"
	KindIDNumber     Kind = "id_number"
	KindURL          Kind = "url"
	KindIPAddr       Kind = "ip_addr"
	KindSchoolCode   Kind = "school_code"
	KindLicensePlate Kind = "license_plate"
	KindLetterStart  Kind = "letter_start"
)

type kindSpec struct {
	check   func(string) bool
	message string
}

var kindOrder = []Kind{
	KindUsername,
	KindPassword,
	KindMobile,
	KindEmail,
	KindChinese,
	KindIDNumber,
	KindURL,
	KindIPAddr,
	KindSchoolCode,
	KindLicensePlate,
	KindLetterStart,
}

var kindTable = map[Kind]kindSpec{
	KindUsername: {
		check:   IsUsername,
		message: "must start with a letter and contain 6-21 letters, digits or underscores",
	},
	KindPassword: {
		check:   IsPassword,
		message: "must be 6-20 letters or digits",
	},
	KindMobile: {
		check:   IsMobile,
		message: "must be an 11-digit mobile number starting with 1",
	},
	KindEmail: {
		check:   IsEmail,
		message: "must be a valid email address",
	},
	KindChinese: {
		check:   IsChinese,
		message: "must contain only Chinese characters",
	},
	KindIDNumber: {
		check:   IsIDNumber,
		message: "must be a valid 15 or 18 character ID number",
	},
	KindURL: {
		check:   IsURL,
		message: "must contain an http or https URL",
	},
	KindIPAddr: {
		check:   IsIPAddr,
		message: "must be a number between 0 and 255",
	},
	KindSchoolCode: {
		check:   IsSchoolCode,
		message: "must start with a 3-digit code",
	},
	KindLicensePlate: {
		check:   IsLicensePlateNumber,
		message: "must be a valid license plate number",
	},
	KindLetterStart: {
		check:   IsLetterStart,
		message: "must start with a letter",
	},
}

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	return slices.Clone(kindOrder)
}

// ParseKind resolves a kind name, ignoring case and surrounding whitespace.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is in the kind table.
func (k Kind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

// Predicate returns the check for k, or nil for an unknown kind.
func (k Kind) Predicate() func(string) bool {
	entry, ok := kindTable[k]
	if !ok {
		return nil
	}
	return entry.check
}

// Message returns the default failure message for k.
func (k Kind) Message() string {
	entry, ok := kindTable[k]
	if !ok {
		return "has an unsupported format"
	}
	return entry.message
}

// TranslationKey returns the i18n key for failures of k.
func (k Kind) TranslationKey() string {
	return "validation." + string(k)
}

// Match reports whether s conforms to kind k. Unknown kinds never match.
func Match(k Kind, s string) bool {
	check := k.Predicate()
	if check == nil {
		return false
	}
	return check(s)
}
