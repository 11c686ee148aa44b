package validator

import "regexp"

// plateProvinces lists the province abbreviations allowed as the first plate
// character, followed by the embassy and consulate markers.
const plateProvinces = "京津沪渝冀豫云辽黑湘皖鲁新苏浙赣鄂桂甘晋蒙陕吉闽贵粤青藏川宁琼使领"

// plateSuffixes are the trailer, learner, police, Hong Kong and Macau markers.
const plateSuffixes = "挂学警港澳"

var (
	usernameRegex    = regexp.MustCompile(`^[A-Za-z]\w{5,20}$`)
	passwordRegex    = regexp.MustCompile(`^[A-Za-z0-9]{6,20}$`)
	mobileRegex      = regexp.MustCompile(`^1\d{10}$`)
	emailRegex       = regexp.MustCompile(`^([A-Za-z0-9]+[-.]?)+[A-Za-z0-9]@([A-Za-z0-9]+(-[A-Za-z0-9]+)?\.)+[A-Za-z]{2,}$`)
	chineseRegex     = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}]*$`)
	urlRegex         = regexp.MustCompile(`https?://([\w-]+\.)+[\w-]+(/[\w\- ./?%&=]*)?`)
	ipOctetRegex     = regexp.MustCompile(`^(25[0-5]|2[0-4]\d|[01]\d{2}|[1-9]?\d)$`)
	schoolCodeRegex  = regexp.MustCompile(`^\d{3}`)
	letterStartRegex = regexp.MustCompile(`^[A-Za-z]`)
	plateRegex       = regexp.MustCompile(`^[` + plateProvinces + `A-Z][A-Z][A-Z0-9]{4}[A-Z0-9` + plateSuffixes + `]$`)

	// 18-character form: region, century 18-20, year, month, day, sequence, check character.
	// 15-character form: region, two-digit year, month, day, sequence.
	idNumberRegex = regexp.MustCompile(
		`^[1-9]\d{5}(18|19|20)\d{2}(0[1-9]|10|11|12)([0-2][1-9]|10|20|30|31)\d{3}[0-9Xx]$` +
			`|^[1-9]\d{5}\d{2}(0[1-9]|10|11|12)([0-2][1-9]|10|20|30|31)\d{3}$`)
)
