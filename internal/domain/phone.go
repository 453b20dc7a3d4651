package domain

import "regexp"

var phonePattern = regexp.MustCompile(`^(\+\d{7,15}|\d{3}-\d{3}-\d{4})$`)

// ValidPhone accepts an empty value, +<7-15 digits> or DDD-DDD-DDDD.
func ValidPhone(phone string) bool {
	if phone == "" {
		return true
	}
	return phonePattern.MatchString(phone)
}
