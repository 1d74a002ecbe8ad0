package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// CleanText strips any HTML markup from user-submitted free text. The API
// stores and serves plain text only, so the sanitizer's entity escaping is
// undone: tag-free input round-trips unchanged.
func CleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

// DisplayNameFromContact derives a poster display name from a contact
// address: everything before the first "@". Not validated as a real name.
func DisplayNameFromContact(contact string) string {
	return strings.SplitN(contact, "@", 2)[0]
}

// SplitName splits a full name into first and last on the first space.
func SplitName(name string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}

var categoryEmojis = map[string]string{
	"electronics": "📱",
	"accessories": "👓",
	"bags":        "🎒",
	"documents":   "🆔",
	"jewelry":     "💍",
	"clothing":    "👕",
	"other":       "📦",
}

// CategoryEmoji returns the emoji shown for a category in item payloads.
func CategoryEmoji(category string) string {
	if emoji, ok := categoryEmojis[category]; ok {
		return emoji
	}
	return "📦"
}
