package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/infovalid/pkg/validator"
)

func TestRuleConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    func(field, value string) validator.Rule
		kind    validator.Kind
		valid   string
		invalid string
	}{
		{"username", validator.ValidUsername, validator.KindUsername, "abcdef", "ab"},
		{"password", validator.ValidPassword, validator.KindPassword, "abc123", "abc_123"},
		{"mobile", validator.ValidMobile, validator.KindMobile, "13800138000", "23800138000"},
		{"email", validator.ValidEmail, validator.KindEmail, "user@example.com", "user@example"},
		{"chinese", validator.ValidChinese, validator.KindChinese, "中文", ""},
		{"id number", validator.ValidIDNumber, validator.KindIDNumber, "11010519491231002X", "110105194912310021"},
		{"url", validator.ValidURL, validator.KindURL, "https://example.com", "example.com"},
		{"ip addr", validator.ValidIPAddr, validator.KindIPAddr, "255", "192.168.1.1"},
		{"school code", validator.ValidSchoolCode, validator.KindSchoolCode, "123", "12"},
		{"license plate", validator.ValidLicensePlateNumber, validator.KindLicensePlate, "京A12345", "京A1234"},
		{"letter start", validator.ValidLetterStart, validator.KindLetterStart, "abc", "1abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, validator.Apply(tt.rule("field", tt.valid)))

			err := validator.Apply(tt.rule("field", tt.invalid))
			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.kind, verrs[0].Kind)
			assert.Equal(t, tt.kind.TranslationKey(), verrs[0].TranslationKey)
			assert.Equal(t, tt.kind.Message(), verrs[0].Message)
		})
	}
}

func TestValidKind_UnknownKind(t *testing.T) {
	err := validator.Apply(validator.ValidKind("field", "anything", validator.Kind("zip_code")))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "has an unsupported format", verrs[0].Message)
}
