package mangle

import (
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// substTable is an ordered, ≤26-entry table of previously-mangled
// strings used for back-reference substitution. The same shape backs
// both the per-word table (fresh identifier spellings) and the
// per-entity table (fresh encoded type expressions) — two instances of
// one mechanism, each reset at the start of every Mangle/Demangle call.
type substTable struct{ entries []string }

func (t *substTable) indexOf(s string) (int, bool) {
	for i, e := range t.entries {
		if e == s {
			return i, true
		}
	}
	return 0, false
}

func (t *substTable) add(s string) {
	if len(t.entries) < 26 {
		t.entries = append(t.entries, s)
	}
}

// encodeLetterIndex renders n as the mangler's self-terminating
// letter-index numeral: lowercase digits for every position but the
// last, an uppercase digit for the last, so a decoder never needs a
// separate delimiter to know where the number ends.
func encodeLetterIndex(n int) string {
	if n == 0 {
		return "A"
	}
	var digits []int
	for n > 0 {
		digits = append(digits, n%26)
		n /= 26
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	out := make([]byte, len(digits))
	for i, d := range digits {
		if i == len(digits)-1 {
			out[i] = byte('A' + d)
		} else {
			out[i] = byte('a' + d)
		}
	}
	return string(out)
}

// decodeLetterIndex reads one letter-index numeral starting at pos,
// returning its value and the position just past its terminal uppercase
// digit.
func decodeLetterIndex(s string, pos int) (value, next int, ok bool) {
	i := pos
	for i < len(s) {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			value = value*26 + int(c-'a')
			i++
		case c >= 'A' && c <= 'Z':
			value = value*26 + int(c-'A')
			return value, i + 1, true
		default:
			return 0, pos, false
		}
	}
	return 0, pos, false
}

func readDecimal(s string, pos int) (value, next int, ok bool) {
	i := pos
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		value = value*10 + int(s[i]-'0')
		i++
	}
	if i == pos {
		return 0, pos, false
	}
	return value, i, true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// encodeIdentifier mangles s against words: a repeated spelling becomes
// a '0'-tagged back-reference; a fresh ASCII spelling becomes a
// length-prefixed literal; a fresh spelling containing non-ASCII is
// NFC-normalized (so two source spellings that differ only in
// combining-mark order mangle identically) and then Punycoded.
func encodeIdentifier(words *substTable, s string) string {
	if !isASCII(s) {
		s = norm.NFC.String(s)
	}
	if idx, ok := words.indexOf(s); ok {
		return "0" + encodeLetterIndex(idx)
	}

	var body string
	if isASCII(s) {
		body = strconv.Itoa(len(s)) + s
	} else {
		p := punycodeEncode([]rune(s))
		if len(p) > 0 && (p[0] == '$' || (p[0] >= '0' && p[0] <= '9')) {
			p = "$" + p
		}
		body = "00" + strconv.Itoa(len(p)) + "$" + p
	}
	words.add(s)
	return body
}

// decodeIdentifier inverts encodeIdentifier, reporting ok=false on any
// grammar violation rather than panicking. A leading '0' is ambiguous
// between "length-zero identifier" and the word-substitution tag, so it
// is resolved by lookahead: a second '0' means Punycode, a following
// pieces letter means substitution, anything else (including a bare '0'
// at end of input) means the empty identifier.
func decodeIdentifier(words *substTable, s string, pos int) (name string, next int, ok bool) {
	if pos >= len(s) {
		return "", pos, false
	}
	if s[pos] == '0' {
		if pos+1 < len(s) && s[pos+1] == '0' {
			n, p, ok := readDecimal(s, pos+2)
			if !ok || p >= len(s) || s[p] != '$' {
				return "", pos, false
			}
			p++
			if p+n > len(s) {
				return "", pos, false
			}
			body := s[p : p+n]
			newPos := p + n
			if len(body) > 0 && body[0] == '$' {
				body = body[1:]
			}
			runes, ok := punycodeDecode(body)
			if !ok {
				return "", pos, false
			}
			name = string(runes)
			words.add(name)
			return name, newPos, true
		}
		if pos+1 < len(s) && isLetterIndexDigit(s[pos+1]) {
			idx, newPos, ok := decodeLetterIndex(s, pos+1)
			if !ok || idx < 0 || idx >= len(words.entries) {
				return "", pos, false
			}
			return words.entries[idx], newPos, true
		}
		words.add("")
		return "", pos + 1, true
	}

	n, p, ok := readDecimal(s, pos)
	if !ok || p+n > len(s) {
		return "", pos, false
	}
	name = s[p : p+n]
	words.add(name)
	return name, p + n, true
}

func isLetterIndexDigit(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
