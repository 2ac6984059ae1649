package handlers

import "strings"

// Validation limits.
const (
	MaxEmailLength    = 254
	MaxNameLength     = 100
	MaxWishListLength = 2000
)

// SanitizeEmail trims and lowercases email; returns empty if over max length.
func SanitizeEmail(email string) string {
	s := strings.TrimSpace(strings.ToLower(email))
	if len(s) > MaxEmailLength {
		return ""
	}
	return s
}

// SanitizeName trims the display name; returns empty if over max length.
func SanitizeName(name string) string {
	s := strings.TrimSpace(name)
	if len(s) > MaxNameLength {
		return ""
	}
	return s
}

// TruncateWishList caps free-text wish lists.
func TruncateWishList(wishList string) string {
	s := strings.TrimSpace(wishList)
	if len(s) > MaxWishListLength {
		return s[:MaxWishListLength]
	}
	return s
}
