package log

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
)

func TestMsgHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewMsgHandler(buf, slog.LevelInfo))

	logger.Debug("execute", "cmd", "ffmpeg -y")
	logger.Info("converted", "path", "out.flac")
	logger.Warn("using AAC bitrate", "bitrate", "128k")
	logger.Error("bitrate detection failed", "path", "in.opus", "err", errors.New("exit status 1"))

	want := `converted out.flac
warning: using AAC bitrate 128k
error: bitrate detection failed in.opus exit status 1
`
	if got := buf.String(); got != want {
		t.Fatalf("\ngot\n%s\nwant\n%s", got, want)
	}
}

func TestMsgHandler_Level(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewMsgHandler(buf, slog.LevelError))

	logger.Warn("ignored")
	logger.Error("unsupported codec", "codec", "vorbis")

	if got := buf.String(); got != "error: unsupported codec vorbis\n" {
		t.Fatalf("got %q", got)
	}
}
