package logging

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	consoleTimeLayout = "2006-01-02 15:04:05"
	jsonTimeLayout    = "2006-01-02T15:04:05.000Z07:00"
)

// plainValue renders v without quoting. Used for the component and stage
// subject.
func plainValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().Local().Format(consoleTimeLayout)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return fmt.Sprint(v.Any())
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	default:
		return v.String()
	}
}

// consoleValue renders v for a key=value pair, quoting text that would not
// survive a split on spaces.
func consoleValue(v slog.Value) string {
	s := plainValue(v)
	if s == "" || strings.ContainsFunc(s, needsQuote) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuote(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r) || r == '=' || r == '"'
}

func sourceLabel(src *slog.Source) string {
	if src == nil || src.File == "" {
		return ""
	}
	return filepath.Base(src.File) + ":" + strconv.Itoa(src.Line)
}

func timeLabel(ts time.Time, layout string) string {
	if ts.IsZero() {
		ts = time.Now()
	}
	return ts.Local().Format(layout)
}
