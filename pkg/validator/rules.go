package validator

// ValidKind builds a rule that checks value against kind k.
// Rules for unknown kinds always fail.
func ValidKind(field, value string, k Kind) Rule {
	return Rule{
		Check: func() bool {
			return Match(k, value)
		},
		Error: NewKindError(field, k),
	}
}

func ValidUsername(field, value string) Rule {
	return ValidKind(field, value, KindUsername)
}

func ValidPassword(field, value string) Rule {
	return ValidKind(field, value, KindPassword)
}

func ValidMobile(field, value string) Rule {
	return ValidKind(field, value, KindMobile)
}

func ValidEmail(field, value string) Rule {
	return ValidKind(field, value, KindEmail)
}

func ValidChinese(field, value string) Rule {
	return ValidKind(field, value, KindChinese)
}

// ValidIDNumber checks structure and, for 18-character numbers, the check character.
func ValidIDNumber(field, value string) Rule {
	return ValidKind(field, value, KindIDNumber)
}

func ValidURL(field, value string) Rule {
	return ValidKind(field, value, KindURL)
}

// ValidIPAddr accepts a single octet, not a dotted quad. See IsIPAddr.
func ValidIPAddr(field, value string) Rule {
	return ValidKind(field, value, KindIPAddr)
}

func ValidSchoolCode(field, value string) Rule {
	return ValidKind(field, value, KindSchoolCode)
}

func ValidLicensePlateNumber(field, value string) Rule {
	return ValidKind(field, value, KindLicensePlate)
}

func ValidLetterStart(field, value string) Rule {
	return ValidKind(field, value, KindLetterStart)
}
