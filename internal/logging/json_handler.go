package logging

import (
	"io"
	"log/slog"
	"strings"
)

// newJSONHandler writes one object per record with short top-level keys:
// ts, level, msg and source.
func newJSONHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   addSource,
		ReplaceAttr: jsonAttr,
	})
}

func jsonAttr(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	switch attr.Key {
	case slog.TimeKey:
		return slog.String("ts", timeLabel(attr.Value.Time(), jsonTimeLayout))
	case slog.LevelKey:
		return slog.String(slog.LevelKey, strings.ToLower(attr.Value.String()))
	case slog.SourceKey:
		src, _ := attr.Value.Any().(*slog.Source)
		if label := sourceLabel(src); label != "" {
			return slog.String(slog.SourceKey, label)
		}
		return slog.Attr{}
	}
	return attr
}
