package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// maxURLLength bounds user-supplied document URLs.
const maxURLLength = 2048

// ValidateURL validates a document URL before it is fetched.
//
// The validation rules are intentionally conservative:
//   - No empty URLs
//   - No control characters
//   - Scheme must be http or https
//   - A host must be present
//   - Maximum length of 2048 characters
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidURL, "URL cannot be empty")
	}

	if len(rawURL) > maxURLLength {
		return New(ErrCodeInvalidURL, "URL too long (max %d characters)", maxURLLength)
	}

	for _, r := range rawURL {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidURL, "URL contains invalid control characters")
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidURL, err, "malformed URL")
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return New(ErrCodeInvalidURL, "URL must use http or https scheme")
	}

	if u.Host == "" {
		return New(ErrCodeInvalidURL, "URL must include a host")
	}

	return nil
}
