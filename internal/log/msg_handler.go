package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// MsgHandler prints the message and attribute values like fmt.Println.
// Records above INFO are prefixed with the lower-case level, e.g. "warning: ".
type MsgHandler struct {
	writer io.Writer
	level  slog.Level
}

func NewMsgHandler(writer io.Writer, level slog.Level) *MsgHandler {
	return &MsgHandler{writer: writer, level: level}
}

func (h *MsgHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *MsgHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(prefix(record.Level))
	b.WriteString(record.Message)

	record.Attrs(func(a slog.Attr) bool {
		_, _ = fmt.Fprint(&b, " ", a.Value)
		return true
	})

	b.WriteString("\n")
	_, err := io.WriteString(h.writer, b.String())
	return err
}

func prefix(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "error: "
	case level >= slog.LevelWarn:
		return "warning: "
	default:
		return ""
	}
}

func (h *MsgHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *MsgHandler) WithGroup(_ string) slog.Handler {
	return h
}
