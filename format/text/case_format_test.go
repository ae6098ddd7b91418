package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCaseFormat(t *testing.T) {
	var testCases = []struct {
		name   string
		expect CaseFormat
	}{
		{name: "uu", expect: CaseFormatUpperUnderscore},
		{name: "lowerUnderscore", expect: CaseFormatLowerUnderscore},
		{name: "lc", expect: CaseFormatLowerCamel},
		{name: "UpperCamel", expect: CaseFormatUpperCamel},
		{name: "dash", expect: CaseFormatLowerDash},
		{name: "ud", expect: CaseFormatUpperDash},
		{name: "u", expect: CaseFormatUpper},
		{name: "l", expect: CaseFormatLower},
		{name: "title", expect: CaseFormatUndefined},
	}

	for _, testCase := range testCases {
		actual := NewCaseFormat(testCase.name)
		assert.EqualValues(t, testCase.expect, actual, testCase.name)
		assert.Equal(t, testCase.expect != CaseFormatUndefined, CaseFormat(testCase.name).IsDefined(), testCase.name)
	}
}
