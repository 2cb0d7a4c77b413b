package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// consoleHandler is a slog.Handler that renders records through
// zerolog's ConsoleWriter.
//
// Output format:
//
//	15:04:05.000 INF server started addr=0.0.0.0:8080
type consoleHandler struct {
	logger zerolog.Logger
	level  slog.Leveler
	fields []field
	groups []string
}

type field struct {
	key   string
	value slog.Value
}

func newConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *consoleHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05.000",
		NoColor:    !isTerminal(w),
	}

	return &consoleHandler{
		logger: zerolog.New(zerolog.SyncWriter(out)),
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as a single console line.
func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	ev := h.logger.WithLevel(zerologLevel(r.Level)).
		Str(zerolog.TimestampFieldName, ts.Format(time.RFC3339Nano))

	for _, f := range h.fields {
		ev = addField(ev, f.key, f.value)
	}

	r.Attrs(func(a slog.Attr) bool {
		flatten(h.groups, a, func(key string, v slog.Value) {
			ev = addField(ev, key, v)
		})
		return true
	})

	ev.Msg(r.Message)
	return nil
}

// WithAttrs returns a handler that always includes attrs, qualified by the
// groups open at the time of the call.
func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := slices.Clone(h.fields)
	for _, a := range attrs {
		flatten(h.groups, a, func(key string, v slog.Value) {
			fields = append(fields, field{key: key, value: v})
		})
	}
	return &consoleHandler{
		logger: h.logger,
		level:  h.level,
		fields: fields,
		groups: h.groups,
	}
}

// WithGroup returns a handler that prefixes subsequent keys with name.
func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &consoleHandler{
		logger: h.logger,
		level:  h.level,
		fields: h.fields,
		groups: append(slices.Clip(h.groups), name),
	}
}

func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level < slog.LevelInfo:
		return zerolog.DebugLevel
	case level < slog.LevelWarn:
		return zerolog.InfoLevel
	case level < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func flatten(groups []string, a slog.Attr, fn func(key string, v slog.Value)) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := groups
		if a.Key != "" {
			prefix = append(slices.Clip(groups), a.Key)
		}
		for _, ga := range a.Value.Group() {
			flatten(prefix, ga, fn)
		}
		return
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + a.Key
	}
	fn(key, a.Value)
}

func addField(ev *zerolog.Event, key string, v slog.Value) *zerolog.Event {
	switch v.Kind() {
	case slog.KindString:
		return ev.Str(key, v.String())
	case slog.KindInt64:
		return ev.Int64(key, v.Int64())
	case slog.KindUint64:
		return ev.Uint64(key, v.Uint64())
	case slog.KindFloat64:
		return ev.Float64(key, v.Float64())
	case slog.KindBool:
		return ev.Bool(key, v.Bool())
	case slog.KindDuration:
		return ev.Str(key, v.Duration().String())
	case slog.KindTime:
		return ev.Time(key, v.Time())
	default:
		if err, ok := v.Any().(error); ok {
			return ev.AnErr(key, err)
		}
		return ev.Interface(key, v.Any())
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
