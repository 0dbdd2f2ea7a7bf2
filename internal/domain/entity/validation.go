package entity

import (
	"net/mail"
	"net/url"
)

// maxURLLength bounds the accepted URL size.
const maxURLLength = 2048

// ValidateURL validates the format of an article source URL.
// It checks that the URL is well-formed, uses an HTTP or HTTPS scheme,
// and carries a host. Returns a ValidationError when the URL is rejected.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url_fonte", Message: "URL is required"}
	}
	if len(rawURL) > maxURLLength {
		return &ValidationError{Field: "url_fonte", Message: "URL is too long"}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "url_fonte", Message: "URL is invalid"}
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "url_fonte", Message: "URL must use http or https scheme"}
	}
	if parsedURL.Host == "" {
		return &ValidationError{Field: "url_fonte", Message: "URL must have a valid host"}
	}
	return nil
}

// ValidateEmail validates the format of a user email address.
// Returns a ValidationError when the address is empty or not RFC 5322 parseable.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Message: "email is invalid"}
	}
	return nil
}
