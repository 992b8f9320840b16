package utils

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)
	slugRegex  = regexp.MustCompile(`[^a-z0-9]+`)
)

// ValidateEmail checks an email address format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePhone checks a phone number format. International prefixes and
// common separators are allowed.
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return fmt.Errorf("invalid phone number format")
	}
	return nil
}

// ValidateRating checks a review rating
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf(ErrInvalidRating)
	}
	return nil
}

// SanitizeString escapes HTML and strips tags from free-text input
func SanitizeString(input string) string {
	sanitized := html.EscapeString(input)
	htmlTagRegex := regexp.MustCompile(`<[^>]*>`)
	return strings.TrimSpace(htmlTagRegex.ReplaceAllString(sanitized, ""))
}

// Slugify converts a display name into a URL slug
func Slugify(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	slug := slugRegex.ReplaceAllString(lowered, "-")
	return strings.Trim(slug, "-")
}

// Title converts the first letter of each word to uppercase and the rest
// to lowercase.
func Title(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
