package text

import (
	"strings"
	"unicode"
)

// Format converts identifier (camel, underscore or dash separated) to the case format
func (c CaseFormat) Format(identifier string) string {
	format := NewCaseFormat(string(c))
	if format == CaseFormatUndefined {
		return identifier
	}
	words := Words(identifier)
	if len(words) == 0 {
		return identifier
	}
	sep := ""
	switch format {
	case CaseFormatUpperUnderscore, CaseFormatLowerUnderscore:
		sep = "_"
	case CaseFormatUpperDash, CaseFormatLowerDash:
		sep = "-"
	}
	for i, word := range words {
		switch format {
		case CaseFormatUpper, CaseFormatUpperUnderscore, CaseFormatUpperDash:
			words[i] = strings.ToUpper(word)
		case CaseFormatLower, CaseFormatLowerUnderscore, CaseFormatLowerDash:
			words[i] = strings.ToLower(word)
		case CaseFormatUpperCamel:
			words[i] = ToTitle(word)
		case CaseFormatLowerCamel:
			if i == 0 {
				words[i] = strings.ToLower(word)
			} else {
				words[i] = ToTitle(word)
			}
		}
	}
	return strings.Join(words, sep)
}

// Words splits identifier into words on separators and lower to upper case changes.
// A run of upper case letters stays one word: "centerXY" gives "center", "XY".
func Words(identifier string) []string {
	var result []string
	var word []rune
	flush := func() {
		if len(word) > 0 {
			result = append(result, string(word))
			word = word[:0]
		}
	}
	runes := []rune(identifier)
	for i, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(word) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !unicode.IsUpper(prev) || nextLower {
				flush()
			}
		}
		word = append(word, r)
	}
	flush()
	return result
}

// ToTitle upper cases the first letter and lower cases the rest
func ToTitle(word string) string {
	if word == "" {
		return word
	}
	var ret = make([]rune, 0, len(word))
	for i, r := range word {
		if i == 0 {
			ret = append(ret, unicode.ToUpper(r))
			continue
		}
		ret = append(ret, unicode.ToLower(r))
	}
	return string(ret)
}
