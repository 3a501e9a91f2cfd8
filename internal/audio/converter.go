package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	ErrInputNotFound    = errors.New("input file does not exist")
	ErrConversionFailed = errors.New("conversion failed")
)

// Request is a single conversion. An empty DecryptionKey means the
// input is not encrypted.
type Request struct {
	InputPath     string
	Codec         string
	OutputName    string
	DecryptionKey string
}

// Converter converts one file per Convert call. It keeps no state
// between calls.
type Converter struct {
	execCmdCtx ExecCmdCtx
	target     Format
	ffmpeg     string
	ffprobe    string
	logger     *slog.Logger
	stat       func(string) (os.FileInfo, error)
}

type Option func(*Converter)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

func WithFFmpeg(path string) Option {
	return func(c *Converter) {
		c.ffmpeg = path
	}
}

func WithFFprobe(path string) Option {
	return func(c *Converter) {
		c.ffprobe = path
	}
}

// WithStat replaces os.Stat for the input check.
func WithStat(stat func(string) (os.FileInfo, error)) Option {
	return func(c *Converter) {
		c.stat = stat
	}
}

func NewConverter(execCmdCtx ExecCmdCtx, target Format, opts ...Option) *Converter {
	c := &Converter{
		execCmdCtx: execCmdCtx,
		target:     target,
		ffmpeg:     "ffmpeg",
		ffprobe:    "ffprobe",
		logger:     slog.Default(),
		stat:       os.Stat,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert runs ffmpeg for req and returns the path of the written file.
//
// Expected failures are logged and returned as ErrInputNotFound,
// ErrUnsupportedCodec or ErrConversionFailed. Any other error means ffmpeg
// could not be run at all and is returned without logging.
func (c *Converter) Convert(ctx context.Context, req Request) (string, error) {
	info, err := c.stat(req.InputPath)
	if err != nil || !info.Mode().IsRegular() {
		c.logger.Error("input file does not exist", "path", req.InputPath)
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, req.InputPath)
	}

	policy, err := Resolve(req.Codec, c.target)
	if err != nil {
		c.logger.Error("unsupported codec", "codec", normalizeCodec(req.Codec), "target", c.target)
		return "", err
	}

	var bitrate string
	if policy.Codec == "aac" {
		bitrate, _ = NewProber(c.execCmdCtx, c.ffprobe, c.logger).ProbeBitrate(ctx, req.InputPath)
		if bitrate == "" {
			bitrate = fallbackBitrate
		}
		c.logger.Warn("using AAC bitrate", "bitrate", bitrate)
	}

	cb := &cmdBuilder{
		policy:        policy,
		inputPath:     req.InputPath,
		outputName:    req.OutputName,
		decryptionKey: req.DecryptionKey,
		bitrate:       bitrate,
	}
	args := cb.args()

	res, err := run(ctx, c.execCmdCtx, c.ffmpeg, args)
	if err != nil {
		return "", fmt.Errorf("run %s: %w", c.ffmpeg, err)
	}
	if res.exitCode != 0 {
		stderr := decodeText(res.stderr)
		c.logger.Error("ffmpeg failed", "exit_code", res.exitCode, "stderr", stderr)
		return "", fmt.Errorf("%w: %w", ErrConversionFailed, cmdError(c.ffmpeg, args, stderr))
	}
	return cb.outputPath(), nil
}
