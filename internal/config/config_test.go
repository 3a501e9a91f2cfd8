package config

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/audioconv/audioconv/internal/audio"
)

func TestParseExample(t *testing.T) {
	example, err := Example()
	if err != nil {
		t.Fatalf("Example(): %v", err)
	}
	c, err := Parse(strings.NewReader(example))
	if err != nil {
		t.Fatalf("Parse(): %v", err)
	}
	if c.Format != audio.Opus || c.LogLevel != slog.LevelInfo {
		t.Fatalf("Parse() = %+v, want defaults", c)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Config
		wantErr bool
	}{
		{
			name: "empty uses defaults",
			yaml: "",
			want: *Default(),
		},
		{
			name: "partial",
			yaml: "format: m4a\nlog_level: DEBUG\n",
			want: Config{LogLevel: slog.LevelDebug, Format: audio.M4a, FFmpeg: "ffmpeg", FFprobe: "ffprobe"},
		},
		{
			name: "binaries",
			yaml: "ffmpeg: /opt/bin/ffmpeg\nffprobe: /opt/bin/ffprobe\n",
			want: Config{LogLevel: slog.LevelInfo, Format: audio.Opus, FFmpeg: "/opt/bin/ffmpeg", FFprobe: "/opt/bin/ffprobe"},
		},
		{
			name:    "unknown key",
			yaml:    "formats: m4a\n",
			wantErr: true,
		},
		{
			name:    "unknown format",
			yaml:    "format: wav\n",
			wantErr: true,
		},
		{
			name:    "empty ffmpeg",
			yaml:    "ffmpeg: \"\"\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.yaml))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse() = %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if *got != tt.want {
				t.Fatalf("Parse() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
