package util

import (
	"net/url"
	"strings"
)

// ReplaceTokens substitutes every occurrence of each {token} in s with its
// replacement value. Tokens are literal; there is no recursion, a replacement
// value that itself contains a token is left as-is.
func ReplaceTokens(s string, replacements map[string]string) string {
	for token, value := range replacements {
		s = strings.ReplaceAll(s, "{"+token+"}", value)
	}

	return s
}

// WhatsAppLink builds a wa.me deep link for the given number with an optional
// prefilled message. The number is stripped of spaces and a leading "+".
func WhatsAppLink(number, message string) string {
	number = strings.TrimPrefix(strings.ReplaceAll(number, " ", ""), "+")

	link := "https://wa.me/" + number
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}

	return link
}
