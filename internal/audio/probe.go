package audio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

type ffprobeOutput struct {
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeStream struct {
	BitRate string `json:"bit_rate"`
}

// Prober asks ffprobe for the bitrate of the first audio stream.
type Prober struct {
	execCmdCtx ExecCmdCtx
	ffprobe    string
	logger     *slog.Logger
}

func NewProber(execCmdCtx ExecCmdCtx, ffprobe string, logger *slog.Logger) *Prober {
	return &Prober{execCmdCtx: execCmdCtx, ffprobe: ffprobe, logger: logger}
}

// ProbeBitrate returns the bitrate as kilobits with a "k" suffix, e.g. "128k".
// Failures are logged as warnings and reported as false.
func (p *Prober) ProbeBitrate(ctx context.Context, path string) (string, bool) {
	bitrate, err := p.probe(ctx, path)
	if err != nil {
		p.logger.Warn("bitrate detection failed", "path", path, "err", err)
		return "", false
	}
	if bitrate == "" {
		p.logger.Debug("no bitrate reported", "path", path)
		return "", false
	}
	return bitrate, true
}

func (p *Prober) probe(ctx context.Context, path string) (string, error) {
	args := []string{
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=bit_rate",
		"-of", "json",
		path,
	}

	res, err := run(ctx, p.execCmdCtx, p.ffprobe, args)
	if err != nil {
		return "", err
	}
	if res.exitCode != 0 {
		return "", cmdError(p.ffprobe, args, decodeText(res.stderr))
	}
	return parseBitrate(res.stdout)
}

// parseBitrate returns an empty string without error when ffprobe
// reports no stream or no bit_rate.
func parseBitrate(data []byte) (string, error) {
	var out ffprobeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	if len(out.Streams) == 0 {
		return "", nil
	}

	raw := strings.TrimSpace(out.Streams[0].BitRate)
	if raw == "" {
		return "", nil
	}
	bps, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse bit_rate %q: %w", raw, err)
	}
	if bps < 0 {
		return "", errors.New("negative bit_rate " + raw)
	}
	return strconv.FormatInt(bps/1000, 10) + "k", nil
}
