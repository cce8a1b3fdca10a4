package airp

import (
	"math"
	"strconv"
	"time"
	"unicode/utf8"
)

// timeLayout is ISO 8601 without zone and fractional seconds.
const timeLayout = "2006-01-02T15:04:05"

// encodeState carries the formatting rules of one render call.
// It holds no buffers, so the zero value renders with the defaults and
// concurrent calls never share mutable state.
type encodeState struct {
	opts options
}

func (e *encodeState) appendNode(dst []byte, n Node) []byte {
	if n == nil {
		return append(dst, "null"...)
	}
	return n.appendJSON(dst, e)
}

func (e *encodeState) appendBool(dst []byte, b bool) []byte {
	if b {
		return append(dst, "true"...)
	}
	return append(dst, "false"...)
}

func (e *encodeState) appendInt(dst []byte, i int64) []byte {
	return strconv.AppendInt(dst, i, 10)
}

func (e *encodeState) appendUint(dst []byte, u uint64) []byte {
	return strconv.AppendUint(dst, u, 10)
}

// appendFloat writes f with '.' as decimal separator in the shortest form
// that reads back to the same value, like the ES6 number-to-string
// conversion. bits is 32 or 64.
func (e *encodeState) appendFloat(dst []byte, f float64, bits int) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return e.appendNonFinite(dst, f)
	}
	if bits == 32 {
		f = float64(float32(f))
	}
	abs := math.Abs(f)
	fmt := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			fmt = 'e'
		}
	}
	dst = strconv.AppendFloat(dst, f, fmt, -1, bits)
	if fmt == 'e' {
		// e-09 to e-9
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}

func (e *encodeState) appendNonFinite(dst []byte, f float64) []byte {
	switch e.opts.nonFinite {
	case NonFiniteString:
		switch {
		case math.IsNaN(f):
			return append(dst, `"NaN"`...)
		case f > 0:
			return append(dst, `"+Inf"`...)
		default:
			return append(dst, `"-Inf"`...)
		}
	case NonFiniteLiteral:
		switch {
		case math.IsNaN(f):
			return append(dst, "nan"...)
		case f > 0:
			return append(dst, "inf"...)
		default:
			return append(dst, "-inf"...)
		}
	default:
		return append(dst, "null"...)
	}
}

func (e *encodeState) appendTime(dst []byte, t time.Time) []byte {
	dst = append(dst, '"')
	dst = t.AppendFormat(dst, timeLayout)
	return append(dst, '"')
}

// appendString writes s as a quoted JSON string.
// '"', '\\' and '/' are always escaped with a backslash. Unless legacy
// escaping is set, control characters are escaped too and invalid UTF-8
// is replaced with U+FFFD.
func (e *encodeState) appendString(dst []byte, s string) []byte {
	if e.opts.legacyEscaping {
		return appendLegacyQuote(dst, s)
	}
	return appendQuote(dst, s)
}

func appendQuote(dst []byte, s string) []byte {
	dst = append(dst, '"')
	var i, n int
	for n < len(s) {
		if c := s[n]; c < utf8.RuneSelf {
			n++
			if c < ' ' || c == '"' || c == '\\' || c == '/' {
				dst = append(dst, s[i:n-1]...)
				dst = appendEscapedASCII(dst, c)
				i = n
			}
			continue
		}
		r, rn := utf8.DecodeRuneInString(s[n:])
		n += rn
		if r == utf8.RuneError && rn == 1 {
			dst = append(dst, s[i:n-rn]...)
			dst = append(dst, "\ufffd"...)
			i = n
		}
	}
	dst = append(dst, s[i:]...)
	return append(dst, '"')
}

func appendLegacyQuote(dst []byte, s string) []byte {
	dst = append(dst, '"')
	i := 0
	for n := 0; n < len(s); n++ {
		switch c := s[n]; c {
		case '"', '\\', '/':
			dst = append(dst, s[i:n]...)
			dst = append(dst, '\\', c)
			i = n + 1
		}
	}
	dst = append(dst, s[i:]...)
	return append(dst, '"')
}

func appendEscapedASCII(dst []byte, c byte) []byte {
	switch c {
	case '"', '\\', '/':
		return append(dst, '\\', c)
	case '\b':
		return append(dst, `\b`...)
	case '\f':
		return append(dst, `\f`...)
	case '\n':
		return append(dst, `\n`...)
	case '\r':
		return append(dst, `\r`...)
	case '\t':
		return append(dst, `\t`...)
	default:
		const hex = "0123456789abcdef"
		return append(dst, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
	}
}

// validNumber reports whether s is a JSON number per RFC 8259, section 6.
func validNumber(s string) bool {
	digits := func(i int) int {
		j := i
		for j < len(s) && '0' <= s[j] && s[j] <= '9' {
			j++
		}
		return j
	}
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && '1' <= s[i] && s[i] <= '9':
		i = digits(i)
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		j := digits(i + 1)
		if j == i+1 {
			return false
		}
		i = j
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		j := digits(i)
		if j == i {
			return false
		}
		i = j
	}
	return i == len(s)
}
