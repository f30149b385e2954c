package strcase

import "strings"

// snake inserts delim before every ASCII uppercase letter that has a
// preceding character other than a newline, then lowercases ASCII letters.
// Input made only of a-z is returned untouched.
func snake(value, delim string) string {
	if isLower(value) {
		return value
	}

	var b strings.Builder
	b.Grow(len(value) + len(value)/2)
	for i := 0; i < len(value); i++ {
		c := value[i]
		if isUpper(c) {
			if i > 0 && value[i-1] != '\n' {
				b.WriteString(delim)
			}
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// studly turns dashes and underscores into word breaks, uppercases the first
// letter of every word and removes the spaces.
func studly(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	boundary := true
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '-' || c == '_' {
			c = ' '
		}
		if boundary && isLowerByte(c) {
			c -= 'a' - 'A'
		}
		boundary = isWordBreak(c)
		if c != ' ' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func camel(value string) string {
	s := studly(value)
	if s != "" && isUpper(s[0]) {
		return string(s[0]+('a'-'A')) + s[1:]
	}
	return s
}

func isLower(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLowerByte(s[i]) {
			return false
		}
	}
	return true
}

func isLowerByte(c byte) bool { return c >= 'a' && c <= 'z' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isWordBreak(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}
