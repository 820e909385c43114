package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyRoot       = "root"
	KeyOutput     = "output"
	KeyCategory   = "category"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyKind       = "kind"
	KeyTemplate   = "template"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Root(p string) slog.Attr         { return slog.String(KeyRoot, p) }
func Output(p string) slog.Attr       { return slog.String(KeyOutput, p) }
func Category(uri string) slog.Attr   { return slog.String(KeyCategory, uri) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(name string) slog.Attr      { return slog.String(KeyFile, name) }
func Kind(k string) slog.Attr         { return slog.String(KeyKind, k) }
func Template(p string) slog.Attr     { return slog.String(KeyTemplate, p) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
