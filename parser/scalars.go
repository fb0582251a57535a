package parser

import (
	"errors"
	"fmt"
	"mime"
	"net/url"
	"strings"

	"github.com/erraggy/oasfidelity/internal/httputil"
	"github.com/erraggy/oasfidelity/internal/stringutil"
)

// The semantic scalar types below keep the text they were parsed from, so
// String always returns the source literal and a document encodes back
// byte for byte. Normalized forms are available through accessors.

// URL is an absolute URL.
type URL struct {
	literal string
	parsed  *url.URL
}

// ParseURL parses s as an absolute URL. A scheme is required, so relative
// references such as "/v1" do not parse.
func ParseURL(s string) (URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URL{}, err
	}
	if u.Scheme == "" {
		return URL{}, fmt.Errorf("url %q has no scheme", s)
	}
	return URL{literal: s, parsed: u}, nil
}

// String returns the URL as written.
func (u URL) String() string { return u.literal }

// URL returns a copy of the parsed URL.
func (u URL) URL() *url.URL {
	if u.parsed == nil {
		return nil
	}
	c := *u.parsed
	return &c
}

// Email is an email address.
type Email struct {
	Local  string
	Domain string
}

// ParseEmail parses s as an email address.
func ParseEmail(s string) (Email, error) {
	local, domain, ok := stringutil.SplitEmail(s)
	if !ok {
		return Email{}, fmt.Errorf("invalid email address %q", s)
	}
	return Email{Local: local, Domain: domain}, nil
}

// String returns the address.
func (e Email) String() string { return e.Local + "@" + e.Domain }

// MediaRange is a media type or range such as "application/json",
// "text/*" or "*/*", with optional parameters.
type MediaRange struct {
	literal string
	Type    string
	Subtype string
	Params  map[string]string
}

var errNotMediaRange = errors.New("not a media range")

// ParseMediaRange parses s as a media range.
func ParseMediaRange(s string) (MediaRange, error) {
	mt, params, err := mime.ParseMediaType(s)
	if err != nil {
		return MediaRange{}, err
	}
	typ, sub, ok := strings.Cut(mt, "/")
	if !ok || !httputil.IsValidMediaType(mt) {
		return MediaRange{}, fmt.Errorf("%w: %q", errNotMediaRange, s)
	}
	return MediaRange{literal: s, Type: typ, Subtype: sub, Params: params}, nil
}

// String returns the media range as written.
func (m MediaRange) String() string { return m.literal }

// Canonical returns the normalized form, with lowercase type names and
// parameters in sorted order.
func (m MediaRange) Canonical() string {
	return mime.FormatMediaType(m.Type+"/"+m.Subtype, m.Params)
}
