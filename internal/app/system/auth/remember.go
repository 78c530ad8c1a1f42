package auth

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// Remember keeps the last signed-in email in a long-lived signed cookie so
// the login screen can prefill it.
type Remember struct {
	codec  *securecookie.SecureCookie
	name   string
	domain string
	maxAge time.Duration
	secure bool
}

// NewRemember signs cookies with hashKey.
func NewRemember(hashKey []byte, name, domain string, maxAge time.Duration, secure bool) *Remember {
	codec := securecookie.New(hashKey, nil)
	codec.MaxAge(int(maxAge.Seconds()))
	return &Remember{codec: codec, name: name, domain: domain, maxAge: maxAge, secure: secure}
}

// Set stores email.
func (rm *Remember) Set(w http.ResponseWriter, email string) error {
	v, err := rm.codec.Encode(rm.name, email)
	if err != nil {
		return err
	}
	http.SetCookie(w, rm.cookie(v, int(rm.maxAge.Seconds())))
	return nil
}

// Get returns the remembered email, or "" when the cookie is absent or
// fails verification.
func (rm *Remember) Get(r *http.Request) string {
	c, err := r.Cookie(rm.name)
	if err != nil {
		return ""
	}
	var email string
	if err := rm.codec.Decode(rm.name, c.Value, &email); err != nil {
		return ""
	}
	return email
}

// Clear removes the cookie.
func (rm *Remember) Clear(w http.ResponseWriter) {
	http.SetCookie(w, rm.cookie("", -1))
}

func (rm *Remember) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     rm.name,
		Value:    value,
		Path:     "/",
		Domain:   rm.domain,
		MaxAge:   maxAge,
		Secure:   rm.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
