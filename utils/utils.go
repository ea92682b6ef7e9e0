package utils

import "strings"

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

// DigitsOnly keeps every decimal digit of str, in order.
func DigitsOnly(str string) string {
	var b strings.Builder
	for _, r := range str {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
