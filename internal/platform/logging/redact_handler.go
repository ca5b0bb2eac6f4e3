package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists (lowercase) the request headers that carry store
// credentials: the anon key and the session's bearer token. The HTTP
// middleware masks them when dumping headers and the handler below masks
// fields of the same name.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"apikey":        true,
	"x-api-key":     true,
	"cookie":        true,
}

// sensitiveFields are attribute keys that hold a credential wherever they
// appear: sign-in payloads, config dumps, relay messages.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"access_token",
	"refresh_token",
	"jwt_secret",
	"api_key",
}

// sensitivePrefixes catch variants like secret_key or api_key_v2.
var sensitivePrefixes = []string{"secret_", "api_key"}

var (
	// bearerPattern matches a raw "Bearer <token>" value.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// jwtPattern matches a bare JWT. Ten characters per segment keeps
	// version strings like 1.2.3 out.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	// apiKeyInlinePattern matches "apikey=<v>" or "api_key: <v>" inside text.
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// newRedactAttr returns the masq ReplaceAttr used by New. Fields are masked
// by name first; the patterns catch tokens that were logged as part of a
// larger string.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+3)
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range []*regexp.Regexp{bearerPattern, jwtPattern, apiKeyInlinePattern} {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
