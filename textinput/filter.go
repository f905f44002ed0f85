package textinput

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FilterKind is the closed set of input filter categories.
type FilterKind uint8

const (
	// FilterNone admits any character.
	FilterNone FilterKind = iota
	// FilterNumeric admits ASCII digits only.
	FilterNumeric
	// FilterInteger admits digits plus one leading minus sign.
	FilterInteger
	// FilterDecimal admits digits, one dot, and one leading minus sign.
	FilterDecimal
	// FilterAlphabetic admits letters.
	FilterAlphabetic
	// FilterAlphanumeric admits letters and digits.
	FilterAlphanumeric
	// FilterHexadecimal admits ASCII hex digits.
	FilterHexadecimal
	// FilterPattern matches against Pattern. Currently an accept-all
	// stub: wiring a real pattern engine is an extension point.
	FilterPattern
	// FilterCustom delegates to the Custom predicate.
	FilterCustom
)

// Transform rewrites admitted text before it reaches the buffer.
type Transform uint8

const (
	// TransformNone leaves text unchanged.
	TransformNone Transform = iota
	// TransformUppercase upper-cases all text.
	TransformUppercase
	// TransformLowercase lower-cases all text.
	TransformLowercase
	// TransformCapitalize upper-cases the first letter of each word.
	TransformCapitalize
)

// Filter classifies candidate input for a text field. Filters are
// stateless values; the accumulator passed to IsValidChar supplies all
// context (so Decimal can reject a second dot). Custom filters carry a
// Name for identification instead of relying on predicate comparison.
type Filter struct {
	Kind    FilterKind
	Pattern string
	Custom  func(text string) bool
	Name    string

	// MaxLength caps the content length in runes; 0 means unlimited.
	MaxLength int

	Transform Transform
}

// Convenience constructors for the common categories.

// Numeric returns a digits-only filter.
func Numeric() Filter { return Filter{Kind: FilterNumeric} }

// Integer returns a filter for optionally negative whole numbers.
func Integer() Filter { return Filter{Kind: FilterInteger} }

// Decimal returns a filter for optionally negative decimal numbers.
func Decimal() Filter { return Filter{Kind: FilterDecimal} }

// Alphabetic returns a letters-only filter.
func Alphabetic() Filter { return Filter{Kind: FilterAlphabetic} }

// Alphanumeric returns a letters-and-digits filter.
func Alphanumeric() Filter { return Filter{Kind: FilterAlphanumeric} }

// Hexadecimal returns a hex-digits filter.
func Hexadecimal() Filter { return Filter{Kind: FilterHexadecimal} }

// Custom returns a filter driven by predicate; name identifies it in
// debugging output and tests.
func Custom(name string, predicate func(text string) bool) Filter {
	return Filter{Kind: FilterCustom, Name: name, Custom: predicate}
}

// IsValidChar reports whether ch may be appended given the text typed so
// far.
func (f Filter) IsValidChar(ch rune, current string) bool {
	switch f.Kind {
	case FilterNone:
		return true
	case FilterNumeric:
		return isASCIIDigit(ch)
	case FilterInteger:
		return isASCIIDigit(ch) || (ch == '-' && current == "")
	case FilterDecimal:
		return isASCIIDigit(ch) ||
			(ch == '.' && !strings.ContainsRune(current, '.')) ||
			(ch == '-' && current == "")
	case FilterAlphabetic:
		return unicode.IsLetter(ch)
	case FilterAlphanumeric:
		return unicode.IsLetter(ch) || unicode.IsDigit(ch)
	case FilterHexadecimal:
		return isASCIIHexDigit(ch)
	case FilterPattern:
		// Per-character pattern checks need the full-string pass.
		return true
	case FilterCustom:
		if f.Custom == nil {
			return true
		}
		return f.Custom(current + string(ch))
	}
	return true
}

// IsValidString validates a whole string at once.
func (f Filter) IsValidString(text string) bool {
	switch f.Kind {
	case FilterNone, FilterPattern:
		return true
	case FilterNumeric:
		return allRunes(text, isASCIIDigit)
	case FilterInteger:
		if text == "" {
			return true
		}
		first, size := utf8.DecodeRuneInString(text)
		if first != '-' && !isASCIIDigit(first) {
			return false
		}
		return allRunes(text[size:], isASCIIDigit)
	case FilterDecimal:
		hasDot := false
		for i, ch := range text {
			switch {
			case ch == '-':
				if i != 0 {
					return false
				}
			case ch == '.':
				if hasDot {
					return false
				}
				hasDot = true
			case !isASCIIDigit(ch):
				return false
			}
		}
		return true
	case FilterAlphabetic:
		return allRunes(text, unicode.IsLetter)
	case FilterAlphanumeric:
		return allRunes(text, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		})
	case FilterHexadecimal:
		return allRunes(text, isASCIIHexDigit)
	case FilterCustom:
		if f.Custom == nil {
			return true
		}
		return f.Custom(text)
	}
	return true
}

// FilterString rebuilds text by replaying IsValidChar left to right
// against an accumulator, so positional rules hold: Decimal drops a
// second dot, Integer drops an interior minus.
func (f Filter) FilterString(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, ch := range text {
		if f.IsValidChar(ch, sb.String()) {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// AllowsLength reports whether inserting n more runes into current stays
// within MaxLength.
func (f Filter) AllowsLength(current string, n int) bool {
	if f.MaxLength <= 0 {
		return true
	}
	return utf8.RuneCountInString(current)+n <= f.MaxLength
}

// ApplyTransform rewrites text according to the filter's Transform.
func (f Filter) ApplyTransform(text string) string {
	switch f.Transform {
	case TransformUppercase:
		return strings.ToUpper(text)
	case TransformLowercase:
		return strings.ToLower(text)
	case TransformCapitalize:
		return capitalizeWords(text)
	}
	return text
}

func allRunes(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func capitalizeWords(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	startOfWord := true
	for _, ch := range text {
		if unicode.IsSpace(ch) {
			startOfWord = true
			sb.WriteRune(ch)
			continue
		}
		if startOfWord {
			sb.WriteRune(unicode.ToUpper(ch))
			startOfWord = false
		} else {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
