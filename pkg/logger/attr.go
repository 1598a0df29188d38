package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Kind records the base type of a schema under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Failure describes one validation failure. The group is keyed by the field
// path, or "_" for a failure on the root value.
func Failure(field, code, message string) slog.Attr {
	key := field
	if key == "" {
		key = "_"
	}
	return Group(key,
		slog.String("code", code),
		slog.String("message", message),
	)
}
