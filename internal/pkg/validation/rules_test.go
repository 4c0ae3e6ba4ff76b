package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guardianForm struct {
	Name         string  `json:"father_name" validate:"required,max=100"`
	NationalCode string  `json:"father_national_code" validate:"required,national_code"`
	Mobile       *string `json:"father_mobile" validate:"omitempty,ir_mobile"`
	Guardian     string  `json:"guardian" validate:"omitempty,oneof=father mother other"`
}

func str(s string) *string { return &s }

func TestSetupTranslatesWithJSONNames(t *testing.T) {
	v := validator.New()
	trans, err := Setup(v)
	require.NoError(t, err)

	tests := []struct {
		name string
		form guardianForm
		want []string
	}{
		{
			name: "valid",
			form: guardianForm{Name: "Ali", NationalCode: "0012345678", Mobile: str("09121234567"), Guardian: "mother"},
		},
		{
			name: "missing and malformed",
			form: guardianForm{NationalCode: "12345", Mobile: str("9121234567")},
			want: []string{
				"father_name is required",
				"father_national_code must be exactly 10 digits",
				"father_mobile must be a mobile number like 09xxxxxxxxx",
			},
		},
		{
			name: "enum",
			form: guardianForm{Name: "Ali", NationalCode: "0012345678", Guardian: "uncle"},
			want: []string{"guardian must be one of [father mother other]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.form)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, MessagesWith(trans, err))
		})
	}
}

func TestMessagesForNonValidationError(t *testing.T) {
	assert.Equal(t, []string{"invalid request body: unexpected EOF"}, MessagesWith(nil, errors.New("unexpected EOF")))
	assert.Nil(t, MessagesWith(nil, nil))
}

func TestPatterns(t *testing.T) {
	assert.True(t, IsNationalCode("0012345678"))
	assert.False(t, IsNationalCode("001234567a"))
	assert.True(t, IsMobile("09121234567"))
	assert.False(t, IsMobile("0912123456"))
}

func TestRegisterGinValidator(t *testing.T) {
	require.NoError(t, RegisterGinValidator())
	require.NoError(t, RegisterGinValidator())
}
