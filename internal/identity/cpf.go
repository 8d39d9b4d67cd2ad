package identity

import "strings"

// NationalIDLen is the length of an unformatted CPF.
const NationalIDLen = 11

// CheckDigit computes the CPF check digit over digits. Each digit is
// weighted by len(digits)+1-position (1-indexed), the weighted sum is
// multiplied by 10 and reduced mod 11, and a result of 10 becomes 0.
func CheckDigit(digits []int) int {
	n := len(digits)
	sum := 0
	for i, d := range digits {
		sum += d * (n - i + 1)
	}
	r := sum * 10 % 11
	if r == 10 {
		return 0
	}
	return r
}

// NationalIDFromDigits appends both check digits to base and returns the
// 11-digit string.
func NationalIDFromDigits(base [9]int) string {
	digits := make([]int, 0, NationalIDLen)
	digits = append(digits, base[:]...)
	digits = append(digits, CheckDigit(digits))
	digits = append(digits, CheckDigit(digits))

	var b strings.Builder
	b.Grow(NationalIDLen)
	for _, d := range digits {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// ValidNationalID reports whether s is an 11-digit CPF with correct check
// digits. The punctuated form XXX.XXX.XXX-XX is accepted.
func ValidNationalID(s string) bool {
	digits, ok := parseDigits(strings.NewReplacer(".", "", "-", "").Replace(strings.TrimSpace(s)))
	if !ok || len(digits) != NationalIDLen {
		return false
	}
	return CheckDigit(digits[:9]) == digits[9] && CheckDigit(digits[:10]) == digits[10]
}

// FormatNationalID renders an 11-digit CPF as XXX.XXX.XXX-XX. Anything else
// is returned unchanged.
func FormatNationalID(s string) string {
	if _, ok := parseDigits(s); !ok || len(s) != NationalIDLen {
		return s
	}
	return s[0:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:11]
}

func parseDigits(s string) ([]int, bool) {
	if s == "" {
		return nil, false
	}
	out := make([]int, len(s))
	for i := range len(s) {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		out[i] = int(c - '0')
	}
	return out, true
}
