// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonfmt

// numState is a state of the number grammar acceptor.
type numState byte

const (
	numStart     numState = iota // nothing consumed
	numSign                      // leading sign
	numLeadDot                   // leading "." with no integer part; need a digit
	numInt                       // integer digits
	numDot                       // "." after integer digits; need a digit
	numFrac                      // fraction digits
	numExp                       // "e" or "E"
	numExpSign                   // sign after the exponent marker
	numExpDigits                 // exponent digits
)

// endOfNumber is the sentinel presented to the acceptor after the last byte
// of its input. It cannot occur inside a number.
const endOfNumber = '$'

// ValidNumber reports whether text is a syntactically valid number.
//
// The grammar is the JSON number grammar, relaxed to permit a leading "+"
// sign, a fraction with no integer part (".5", "-.5"), and redundant leading
// zeroes ("01"). Use ValidNumberStrict to apply the RFC 8259 grammar exactly.
func ValidNumber(text string) bool { return acceptNumber(text) }

// ValidNumberStrict reports whether text is a valid number under the RFC 8259
// grammar: the relaxations permitted by ValidNumber are rejected.
func ValidNumberStrict(text string) bool {
	if !acceptNumber(text) {
		return false
	}
	digits := text
	if digits[0] == '-' {
		digits = digits[1:]
	} else if digits[0] == '+' {
		return false
	}
	if digits[0] == '.' {
		return false
	}
	// A leading zero is OK if it's the only integer digit.
	return !(digits[0] == '0' && len(digits) > 1 && isDigit(digits[1]))
}

// acceptNumber runs the number acceptor over text in a single pass. The
// state reached when the end sentinel is presented decides the result.
func acceptNumber(text string) bool {
	st := numStart
	for i := 0; i <= len(text); i++ {
		ch := byte(endOfNumber)
		if i < len(text) {
			ch = text[i]
			if ch == endOfNumber {
				return false
			}
		}

		switch st {
		case numStart:
			switch {
			case ch == '+' || ch == '-':
				st = numSign
			case ch == '.':
				st = numLeadDot
			case isDigit(ch):
				st = numInt
			default:
				return false
			}

		case numSign:
			switch {
			case ch == '.':
				st = numLeadDot
			case isDigit(ch):
				st = numInt
			default:
				return false
			}

		case numLeadDot, numDot:
			if !isDigit(ch) {
				return false
			}
			st = numFrac

		case numInt:
			switch {
			case isDigit(ch):
				// stay
			case ch == '.':
				st = numDot
			case ch == 'e' || ch == 'E':
				st = numExp
			case ch == endOfNumber:
				return true
			default:
				return false
			}

		case numFrac:
			switch {
			case isDigit(ch):
				// stay
			case ch == 'e' || ch == 'E':
				st = numExp
			case ch == endOfNumber:
				return true
			default:
				return false
			}

		case numExp:
			switch {
			case ch == '+' || ch == '-':
				st = numExpSign
			case isDigit(ch):
				st = numExpDigits
			default:
				return false
			}

		case numExpSign:
			if !isDigit(ch) {
				return false
			}
			st = numExpDigits

		case numExpDigits:
			switch {
			case isDigit(ch):
				// stay
			case ch == endOfNumber:
				return true
			default:
				return false
			}
		}
	}
	return false
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

// isNumByte reports whether ch may occur in the text of a number.
func isNumByte(ch byte) bool {
	return isDigit(ch) || ch == '.' || ch == 'e' || ch == 'E' || ch == '+' || ch == '-'
}
