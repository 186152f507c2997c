package entity

import (
	"regexp"
	"strings"
	"unicode"
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// NormalizePhone drops the separators people type into phone numbers.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}

		return r
	}, strings.TrimSpace(phone))
}

// IsValidPhone accepts E.164-style numbers with an optional leading plus.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail requires a single @ between a non-empty local part and domain, with no whitespace.
func IsValidEmail(email string) bool {
	if strings.IndexFunc(email, unicode.IsSpace) >= 0 {
		return false
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		return false
	}

	return !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// NormalizeRecipient applies the channel's normalisation.
func NormalizeRecipient(channel Channel, value string) string {
	if channel == ChannelEmail {
		return NormalizeEmail(value)
	}

	return NormalizePhone(value)
}
