package slog

import (
	"context"
	"log/slog"

	"github.com/trickstertwo/pluginlog"
)

// Handler routes log/slog records through a pluginlog.Logger (Adapter).
// Record attributes become the placeholder context, so
// slog.Info("installed {pkg}", "pkg", name) renders "channel: installed vendor/lib".
// Grouped attributes are flattened to dotted keys ("req.id").
type Handler struct {
	l      *pluginlog.Logger
	bound  []slog.Attr
	prefix string
}

var _ slog.Handler = (*Handler)(nil)

func NewHandler(l *pluginlog.Logger) *Handler {
	return &Handler{l: l}
}

// ToLevel maps slog levels onto pluginlog severities. Anything from
// LevelError+4 upwards is treated as critical.
func ToLevel(l slog.Level) pluginlog.Level {
	switch {
	case l < slog.LevelInfo:
		return pluginlog.LevelDebug
	case l < slog.LevelWarn:
		return pluginlog.LevelInfo
	case l < slog.LevelError:
		return pluginlog.LevelWarning
	case l < slog.LevelError+4:
		return pluginlog.LevelError
	default:
		return pluginlog.LevelCritical
	}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return h.l.Enabled(ToLevel(l))
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	ctx := make(pluginlog.Context, len(h.bound)+r.NumAttrs())
	for _, a := range h.bound {
		addAttr(ctx, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(ctx, h.prefix, a)
		return true
	})
	h.l.Log(ToLevel(r.Level), r.Message, ctx)
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	child := *h
	child.bound = make([]slog.Attr, 0, len(h.bound)+len(attrs))
	child.bound = append(child.bound, h.bound...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		child.bound = append(child.bound, a)
	}
	return &child
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	child := *h
	child.prefix = h.prefix + name + "."
	return &child
}

func addAttr(ctx pluginlog.Context, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if a.Key == "" && v.Kind() != slog.KindGroup {
		return
	}
	key := prefix + a.Key
	switch v.Kind() {
	case slog.KindGroup:
		sub := prefix
		if a.Key != "" {
			sub = key + "."
		}
		for _, ga := range v.Group() {
			addAttr(ctx, sub, ga)
		}
	case slog.KindString:
		ctx[key] = v.String()
	case slog.KindInt64:
		ctx[key] = v.Int64()
	case slog.KindUint64:
		ctx[key] = v.Uint64()
	case slog.KindFloat64:
		ctx[key] = v.Float64()
	case slog.KindBool:
		ctx[key] = v.Bool()
	case slog.KindDuration:
		ctx[key] = v.Duration()
	case slog.KindTime:
		ctx[key] = v.Time()
	default:
		ctx[key] = v.Any()
	}
}
