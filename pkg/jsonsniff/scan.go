package jsonsniff

// scanResult records the lexical problems found outside the decoder.
type scanResult struct {
	mismatch    bool
	controlChar bool
	tooDeep     bool
}

// scan walks s once, tracking strings and bracket nesting. It stops at the
// first bracket mismatch since nothing after it can be classified reliably.
func scan(s string, maxDepth int) scanResult {
	var (
		res      scanResult
		stack    []byte
		inString bool
		escaped  bool
	)

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			case c < 0x20:
				res.controlChar = true
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
			if len(stack) > maxDepth {
				res.tooDeep = true
			}
		case '}', ']':
			open := byte('{')
			if c == ']' {
				open = '['
			}
			if len(stack) == 0 || stack[len(stack)-1] != open {
				res.mismatch = true
				return res
			}
			stack = stack[:len(stack)-1]
		}
	}

	return res
}
