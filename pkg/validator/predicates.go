package validator

// IsUsername reports whether s starts with an ASCII letter followed by 5 to 20
// letters, digits or underscores.
func IsUsername(s string) bool {
	return usernameRegex.MatchString(s)
}

// IsPassword reports whether s is 6 to 20 ASCII letters or digits.
func IsPassword(s string) bool {
	return passwordRegex.MatchString(s)
}

// IsMobile reports whether s is an 11-digit mobile number starting with 1.
func IsMobile(s string) bool {
	return mobileRegex.MatchString(s)
}

// IsEmail reports whether s is an address with an alphanumeric local part
// (segments optionally joined by '-' or '.') and a dotted domain ending in a
// top-level label of at least two letters.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsChinese reports whether s is non-empty and every rune lies in U+4E00..U+9FA5.
func IsChinese(s string) bool {
	if s == "" {
		return false
	}
	return chineseRegex.MatchString(s)
}

// IsURL reports whether s contains an http or https URL with a dotted host.
// The match is not anchored: "see https://example.com" is accepted.
func IsURL(s string) bool {
	return urlRegex.MatchString(s)
}

// IsIPAddr reports whether s is a single decimal octet in the range 0..255.
// Three-digit forms with leading zeros ("001") are accepted. Dotted quads such
// as "192.168.1.1" are rejected.
func IsIPAddr(s string) bool {
	return ipOctetRegex.MatchString(s)
}

// IsSchoolCode reports whether s begins with three digits.
func IsSchoolCode(s string) bool {
	return schoolCodeRegex.MatchString(s)
}

// IsLicensePlateNumber reports whether s is a 7-character vehicle plate.
func IsLicensePlateNumber(s string) bool {
	return plateRegex.MatchString(s)
}

// IsLetterStart reports whether s begins with an ASCII letter.
func IsLetterStart(s string) bool {
	return letterStartRegex.MatchString(s)
}
