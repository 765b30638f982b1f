package mangle

import "strings"

// Punycode is a from-scratch RFC 3492 implementation with two deviations
// from the RFC's own ACE profile: the basic/extended delimiter is '$'
// rather than '-', and the extended digit alphabet maps digit values
// 26-35 onto 'A'-'J' rather than '0'-'9' — chosen so a punycoded body
// never starts with a bare decimal digit that could be confused with
// the identifier grammar's own length prefix. golang.org/x/net/idna's
// Punycode profile hard-codes the RFC's own delimiter and digit
// alphabet with no hook to override either, so it cannot produce this
// variant; see DESIGN.md.
const (
	puncBase        = 36
	puncTMin        = 1
	puncTMax        = 26
	puncSkew        = 38
	puncDamp        = 700
	puncInitialBias = 72
	puncInitialN    = 128
	puncDelimiter   = '$'
)

func digitToChar(d int) byte {
	if d < 26 {
		return byte('a' + d)
	}
	return byte('A' + (d - 26))
}

func charToDigit(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'J':
		return int(c-'A') + 26, true
	default:
		return 0, false
	}
}

func adaptBias(delta, numPoints int, firstTime bool) int {
	if firstTime {
		delta /= puncDamp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := 0
	for delta > ((puncBase-puncTMin)*puncTMax)/2 {
		delta /= puncBase - puncTMin
		k += puncBase
	}
	return k + (((puncBase-puncTMin+1)*delta)/(delta+puncSkew))
}

// punycodeEncode encodes input (which must contain at least one non-ASCII
// rune) into Silt's Punycode variant.
func punycodeEncode(input []rune) string {
	var out []byte
	basicCount := 0
	for _, r := range input {
		if r < 0x80 {
			out = append(out, byte(r))
			basicCount++
		}
	}
	if basicCount > 0 {
		out = append(out, puncDelimiter)
	}

	n := puncInitialN
	delta := 0
	bias := puncInitialBias
	h := basicCount
	total := len(input)

	for h < total {
		m := int(^uint(0) >> 1)
		for _, r := range input {
			if int(r) >= n && int(r) < m {
				m = int(r)
			}
		}
		delta += (m - n) * (h + 1)
		n = m
		for _, r := range input {
			if int(r) < n {
				delta++
			}
			if int(r) == n {
				q := delta
				for k := puncBase; ; k += puncBase {
					t := k - bias
					if t < puncTMin {
						t = puncTMin
					} else if t > puncTMax {
						t = puncTMax
					}
					if q < t {
						break
					}
					out = append(out, digitToChar(t+(q-t)%(puncBase-t)))
					q = (q - t) / (puncBase - t)
				}
				out = append(out, digitToChar(q))
				bias = adaptBias(delta, h+1, h == basicCount)
				delta = 0
				h++
			}
		}
		delta++
		n++
	}
	return string(out)
}

// punycodeDecode inverts punycodeEncode, reporting false on any
// malformed extended-digit sequence.
func punycodeDecode(s string) ([]rune, bool) {
	last := strings.LastIndexByte(s, puncDelimiter)
	var output []rune
	var ext string
	if last < 0 {
		ext = s
	} else {
		for _, c := range s[:last] {
			output = append(output, c)
		}
		ext = s[last+1:]
	}

	n := puncInitialN
	i := 0
	bias := puncInitialBias
	pos := 0
	for pos < len(ext) {
		oldi := i
		w := 1
		for k := puncBase; ; k += puncBase {
			if pos >= len(ext) {
				return nil, false
			}
			digit, ok := charToDigit(ext[pos])
			if !ok {
				return nil, false
			}
			pos++
			i += digit * w
			t := k - bias
			if t < puncTMin {
				t = puncTMin
			} else if t > puncTMax {
				t = puncTMax
			}
			if digit < t {
				break
			}
			w *= puncBase - t
		}
		bias = adaptBias(i-oldi, len(output)+1, oldi == 0)
		n += i / (len(output) + 1)
		i = i % (len(output) + 1)
		if i > len(output) {
			return nil, false
		}
		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = rune(n)
		i++
	}
	return output, true
}
