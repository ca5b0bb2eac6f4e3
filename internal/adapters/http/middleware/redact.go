package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/kanban-engine/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as log attributes in name order. Store
// credentials (logging.SensitiveHeaders: the bearer token, the anon key)
// are replaced by a marker; repeated headers are joined with commas.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
