package client

import (
	"net/http"
	"net/url"
)

// TokenSource supplies the bearer credential for authenticated calls.
// Satisfies editor.TokenSource.
type TokenSource interface {
	Token() string
}

// StaticTokenSource returns a fixed token. Empty means "no credential".
type StaticTokenSource string

func (s StaticTokenSource) Token() string { return string(s) }

// CookieTokenSource reads the credential from the auth-token cookie of a
// cookie jar, mirroring how the browser editor sources it. A missing cookie
// yields an empty token, which callers treat the same as unauthorized.
type CookieTokenSource struct {
	jar  http.CookieJar
	site *url.URL
	name string
}

func NewCookieTokenSource(jar http.CookieJar, site *url.URL, name string) *CookieTokenSource {
	return &CookieTokenSource{jar: jar, site: site, name: name}
}

func (s *CookieTokenSource) Token() string {
	if s == nil || s.jar == nil || s.site == nil {
		return ""
	}
	for _, ck := range s.jar.Cookies(s.site) {
		if ck.Name == s.name {
			return ck.Value
		}
	}
	return ""
}
