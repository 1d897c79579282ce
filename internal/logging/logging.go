package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"crewboard/internal/auth"
	"crewboard/internal/middleware"
)

const timeLayout = "2006/01/02 15:04:05"

// textHandler writes lines like:
// 2025/09/06 21:11:44 level=INFO msg="request" method=GET url=/orgs/.../timeline status=200 ...
type textHandler struct {
	out        io.Writer
	mu         *sync.Mutex
	minLevel   slog.Leveler
	attrs      []slog.Attr
	groups     []string
	timeLayout string
}

func (h *textHandler) Enabled(_ context.Context, l slog.Level) bool {
	min := slog.LevelInfo
	if h.minLevel != nil {
		min = h.minLevel.Level()
	}
	return l >= min
}

func upperLevel(l slog.Level) string {
	switch {
	case l <= slog.LevelDebug:
		return "DEBUG"
	case l <= slog.LevelInfo:
		return "INFO"
	case l <= slog.LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '"' || r == '=' || r == '\\' {
			return true
		}
		if !utf8.ValidRune(r) {
			return true
		}
	}
	return false
}

func quote(s string) string {
	b := &strings.Builder{}
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

func appendKeyVal(sb *strings.Builder, key string, val any) {
	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	var s string
	switch v := val.(type) {
	case string:
		s = v
	case time.Duration:
		sb.WriteString(v.String())
		return
	case error:
		s = v.Error()
	case fmt.Stringer:
		s = v.String()
	default:
		// Let fmt handle numbers, bools, etc.
		s = fmt.Sprint(v)
	}
	if needsQuoting(s) {
		sb.WriteString(quote(s))
	} else {
		sb.WriteString(s)
	}
}

func (h *textHandler) Handle(ctx context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	var sb strings.Builder
	sb.Grow(256)
	sb.WriteString(ts.Format(h.timeLayout))
	sb.WriteString(" level=")
	sb.WriteString(upperLevel(r.Level))
	if r.Message != "" {
		sb.WriteString(" msg=")
		sb.WriteString(quote(r.Message))
	}

	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}

	normal := map[string]any{}
	// Enrich from context: request_id, org_id
	if rid, ok := middleware.GetRequestID(ctx); ok {
		normal["request_id"] = rid
	}
	if oid, ok := middleware.GetLogOrgID(ctx); ok {
		normal["org_id"] = oid
	} else if org, ok := auth.OrgFromContext(ctx); ok {
		normal["org_id"] = org.String()
	}

	var flatten func(key string, v slog.Value)
	flatten = func(key string, v slog.Value) {
		v = v.Resolve()
		switch v.Kind() {
		case slog.KindGroup:
			for _, ga := range v.Group() {
				if ga.Key == "" {
					continue
				}
				flatten(key+"."+ga.Key, ga.Value)
			}
		case slog.KindTime:
			normal[key] = v.Time().Format(time.RFC3339)
		default:
			normal[key] = v.Any()
		}
	}
	for _, a := range h.attrs {
		if a.Key != "" {
			flatten(a.Key, a.Value)
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "" {
			flatten(prefix+a.Key, a.Value)
		}
		return true
	})

	// Priority keys printed first in this exact order if present.
	for _, k := range []string{"method", "url", "status", "duration"} {
		if v, ok := normal[k]; ok {
			appendKeyVal(&sb, k, v)
			delete(normal, k)
		}
	}

	keys := make([]string, 0, len(normal))
	for k := range normal {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		appendKeyVal(&sb, k, normal[k])
	}
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *textHandler) clone() *textHandler {
	c := *h
	return &c
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}
	out := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	out = append(out, h.attrs...)
	for _, a := range attrs {
		out = append(out, slog.Attr{Key: prefix + a.Key, Value: a.Value})
	}
	c := h.clone()
	c.attrs = out
	return c
}

func (h *textHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.groups = append(append([]string{}, h.groups...), name)
	return c
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to w.
// level: "debug", "info", "warn", "error" (case-insensitive)
// json: if true, use JSON handler; otherwise the key=value text handler.
func New(w io.Writer, level string, json bool) *slog.Logger {
	lvl := parseLevel(level)
	if json {
		replace := func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				return slog.String(slog.TimeKey, a.Value.Time().Format(timeLayout))
			}
			return a
		}
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl, ReplaceAttr: replace}))
	}
	return slog.New(&textHandler{
		out:        w,
		mu:         &sync.Mutex{},
		minLevel:   lvl,
		timeLayout: timeLayout,
	})
}

// Setup configures slog's default logger on stdout.
// For text logs, time is prefixed as "YYYY/MM/DD HH:MM:SS" without a key.
func Setup(level string, json bool) *slog.Logger {
	logger := New(os.Stdout, level, json)
	slog.SetDefault(logger)
	return logger
}
