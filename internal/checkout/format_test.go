package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCardNumber(t *testing.T) {
	tests := map[string]string{
		"":                      "",
		"41":                    "41",
		"4111":                  "4111",
		"41111":                 "4111 1",
		"4111-1111-1111-1111":   "4111 1111 1111 1111",
		"4111 1111 1111 111199": "4111 1111 1111 1111",
		"ab12cd34ef56":          "1234 56",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatCardNumber(in), in)
	}
}

func TestFormatExpiryDate(t *testing.T) {
	tests := map[string]string{
		"":       "",
		"1":      "1",
		"12":     "12/",
		"122":    "12/2",
		"1229":   "12/29",
		"12/29":  "12/29",
		"122999": "12/29",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatExpiryDate(in), in)
	}
}

func TestFormatCVV(t *testing.T) {
	assert.Equal(t, "123", FormatCVV("1a2b3"))
	assert.Equal(t, "1234", FormatCVV("123456"))
	assert.Equal(t, "", FormatCVV("abc"))
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "**** **** **** 1111", MaskCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "123", MaskCardNumber("123"))
	assert.Equal(t, "", MaskCardNumber(""))
}
