// Package jsonsniff decodes strings that look like JSON objects.
//
// A string is only decoded when, after trimming whitespace, it starts with
// "{" and ends with "}". Every failure is an *Error whose Kind tells the
// caller what went wrong, so a decoded false or null is never confused with
// a failure:
//
//	m, err := jsonsniff.Parse(`{"a":1}`) // map[a:1], nil
//	_, err = jsonsniff.Parse("not json")   // Kind GuardFailed
//	_, err = jsonsniff.Parse("{invalid}")  // Kind SyntaxError
//
//	switch jsonsniff.KindOf(err) {
//	case jsonsniff.DepthExceeded:
//		// ...
//	}
//
// Failures are checked in a fixed order: guard, invalid UTF-8, bracket
// mismatch, raw control character inside a string, nesting deeper than the
// configured maximum, decoder syntax error, anything else. Each failure also
// writes one debug line to the Sniffer's logger.
package jsonsniff
