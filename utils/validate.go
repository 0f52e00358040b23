package utils

import "regexp"

// Indian mobile numbers: 10 digits, leading digit 6-9.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// ValidPhone reports whether the string is a valid 10-digit Indian mobile
// number.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
