package text

import "strings"

// CaseFormat defines identifier case format
type CaseFormat string

const (
	CaseFormatUndefined                  = ""
	CaseFormatUpper           CaseFormat = "upper"
	CaseFormatLower           CaseFormat = "lower"
	CaseFormatUpperCamel      CaseFormat = "upperCamel"
	CaseFormatLowerCamel      CaseFormat = "lowerCamel"
	CaseFormatUpperUnderscore CaseFormat = "upperUnderscore"
	CaseFormatLowerUnderscore CaseFormat = "lowerUnderscore"
	CaseFormatUpperDash       CaseFormat = "upperDash"
	CaseFormatLowerDash       CaseFormat = "lowerDash"
)

// IsDefined returns true if case format is defined
func (c CaseFormat) IsDefined() bool {
	return NewCaseFormat(string(c)) != CaseFormatUndefined
}

// NewCaseFormat returns a case format for a name or its short alias
func NewCaseFormat(name string) CaseFormat {
	switch strings.ToLower(name) {
	case "upper", "u":
		return CaseFormatUpper
	case "lower", "l":
		return CaseFormatLower
	case "uppercamel", "uc", "upperpascal", "up":
		return CaseFormatUpperCamel
	case "lowercamel", "lc", "lowerpascal", "lp":
		return CaseFormatLowerCamel
	case "upperunderscore", "uu", "uppersnake":
		return CaseFormatUpperUnderscore
	case "lowerunderscore", "lu", "lowersnake":
		return CaseFormatLowerUnderscore
	case "upperdash", "ud":
		return CaseFormatUpperDash
	case "lowerdash", "ld", "dash", "d":
		return CaseFormatLowerDash
	default:
		return CaseFormatUndefined
	}
}
