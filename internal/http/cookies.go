package httpx

import (
	"encoding/base64"
	"errors"
	"net/http"
	"time"
)

// MaxCookieValueSize caps an encoded cookie value.
const MaxCookieValueSize = 4096

// ErrCookieTooLarge is returned when an encoded value exceeds MaxCookieValueSize.
var ErrCookieTooLarge = errors.New("cookie value too large")

// CookieOptions carries attributes shared by the portal's cookies.
type CookieOptions struct {
	Domain string
	// Secure forces the Secure attribute; otherwise it follows the request scheme.
	Secure bool
	MaxAge time.Duration
}

func (o CookieOptions) secure(r *http.Request) bool {
	return o.Secure || (r != nil && (r.TLS != nil || isForwardedHTTPS(r)))
}

// encodeCookieValue base64url encodes v and enforces the size cap.
func encodeCookieValue(v string) (string, error) {
	enc := base64.RawURLEncoding.EncodeToString([]byte(v))
	if len(enc) > MaxCookieValueSize {
		return "", ErrCookieTooLarge
	}
	return enc, nil
}

// decodeCookieValue reverses encodeCookieValue. Oversized input is refused
// before decoding.
func decodeCookieValue(enc string) (string, error) {
	if len(enc) > MaxCookieValueSize {
		return "", ErrCookieTooLarge
	}
	b, err := base64.RawURLEncoding.DecodeString(enc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// setEncodedCookie writes name=base64url(value).
func setEncodedCookie(w http.ResponseWriter, r *http.Request, name, value string, opts CookieOptions) error {
	enc, err := encodeCookieValue(value)
	if err != nil {
		return err
	}
	c := &http.Cookie{
		Name:     name,
		Value:    enc,
		Path:     "/",
		Domain:   opts.Domain,
		HttpOnly: true,
		Secure:   opts.secure(r),
		SameSite: http.SameSiteLaxMode,
	}
	if opts.MaxAge > 0 {
		c.MaxAge = int(opts.MaxAge.Seconds())
	}
	http.SetCookie(w, c)
	return nil
}

// readEncodedCookie returns the decoded value, or ok=false when the cookie
// is missing or undecodable.
func readEncodedCookie(r *http.Request, name string) (string, bool) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	v, err := decodeCookieValue(c.Value)
	if err != nil {
		return "", false
	}
	return v, true
}
