package validation

import (
	"strings"
	"unicode"
)

// Strength is a coarse password-strength grade shown at registration
type Strength int

const (
	StrengthWeak Strength = iota
	StrengthFair
	StrengthGood
	StrengthStrong
)

func (s Strength) String() string {
	switch s {
	case StrengthFair:
		return "fair"
	case StrengthGood:
		return "good"
	case StrengthStrong:
		return "strong"
	default:
		return "weak"
	}
}

// commonPasswords is a small deny-list of frequent choices; anything on it
// grades weak regardless of composition
var commonPasswords = map[string]bool{
	"password":   true,
	"password1":  true,
	"12345678":   true,
	"123456789":  true,
	"qwerty123":  true,
	"iloveyou":   true,
	"letmein1":   true,
	"guitar123":  true,
	"chordcrack": true,
}

// PasswordStrength grades a password by length and character variety, with
// penalties for repeated runs and keyboard/alphabet sequences.
func PasswordStrength(password string) Strength {
	if commonPasswords[strings.ToLower(password)] {
		return StrengthWeak
	}

	score := 0

	switch {
	case len(password) >= 16:
		score += 3
	case len(password) >= 12:
		score += 2
	case len(password) >= 8:
		score++
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	classes := 0
	for _, has := range []bool{hasLower, hasUpper, hasDigit, hasSymbol} {
		if has {
			classes++
		}
	}
	score += classes - 1

	if hasRepeatedRun(password, 3) {
		score--
	}
	if hasSequentialRun(password, 4) {
		score--
	}

	switch {
	case score >= 5:
		return StrengthStrong
	case score >= 3:
		return StrengthGood
	case score >= 1:
		return StrengthFair
	default:
		return StrengthWeak
	}
}

// hasRepeatedRun reports a run of the same character of at least n
func hasRepeatedRun(s string, n int) bool {
	runes := []rune(s)
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// hasSequentialRun reports an ascending or descending run (abcd, 4321) of at least n
func hasSequentialRun(s string, n int) bool {
	runes := []rune(strings.ToLower(s))
	asc, desc := 1, 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1]+1 {
			asc++
			desc = 1
		} else if runes[i] == runes[i-1]-1 {
			desc++
			asc = 1
		} else {
			asc, desc = 1, 1
		}
		if asc >= n || desc >= n {
			return true
		}
	}
	return false
}
