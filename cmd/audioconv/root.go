package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/audioconv/audioconv/internal/audio"
	"github.com/audioconv/audioconv/internal/config"
	"github.com/audioconv/audioconv/internal/log"

	"github.com/spf13/cobra"
)

type options struct {
	codec      string
	output     string
	key        string
	format     string
	configPath string
}

func ExecuteContext(ctx context.Context, version string) error {
	rootCmd := newRootCmd(version, os.Stdout, os.Stderr, audio.ToExecCmdCtx(exec.CommandContext))
	return rootCmd.ExecuteContext(ctx)
}

// IsReported reports whether err was already logged by the converter
// and must not be printed again.
func IsReported(err error) bool {
	return errors.Is(err, audio.ErrInputNotFound) ||
		errors.Is(err, audio.ErrUnsupportedCodec) ||
		errors.Is(err, audio.ErrConversionFailed)
}

func newRootCmd(
	version string,
	stdout io.Writer,
	stderr io.Writer,
	execCmdCtx audio.ExecCmdCtx,
) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Version:           version,
		Use:               "audioconv [flags] INPUT",
		Short:             "Convert a downloaded audio stream with ffmpeg",
		Long:              "Convert a downloaded, optionally encrypted, audio stream with ffmpeg.\nThe output extension follows the source codec.",
		Example:           "audioconv --codec flac --key 0123abcd --output song song.flac_enc",
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Format, err = audio.ParseFormat(opts.format)
				if err != nil {
					return err
				}
			}

			logger := newLogger(stderr, cfg.LogLevel)
			slog.SetDefault(logger)

			converter := audio.NewConverter(
				execCmdCtx,
				cfg.Format,
				audio.WithLogger(logger),
				audio.WithFFmpeg(cfg.FFmpeg),
				audio.WithFFprobe(cfg.FFprobe),
			)
			out, err := converter.Convert(cmd.Context(), audio.Request{
				InputPath:     args[0],
				Codec:         opts.codec,
				OutputName:    opts.output,
				DecryptionKey: opts.key,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout, out)
			return err
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.codec, "codec", "c", "", "source codec, e.g. flac, ec-3, ac-4.02.02.00, opus")
	flags.StringVarP(&opts.output, "output", "o", "", "output file name without extension")
	flags.StringVarP(&opts.key, "key", "k", "", "decryption key passed to ffmpeg")
	flags.StringVarP(&opts.format, "format", "f", "", "target format: "+strings.Join(formatNames(), ", ")+" (default from config or opus)")
	flags.StringVar(&opts.configPath, "config", "", "yaml configuration file")

	_ = rootCmd.MarkFlagRequired("codec")
	_ = rootCmd.MarkFlagRequired("output")
	_ = rootCmd.MarkFlagFilename("config", "yml", "yaml")
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return formatNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("codec", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		target := audio.Opus
		if f, err := audio.ParseFormat(opts.format); err == nil {
			target = f
		}
		return audio.SupportedCodecs(target), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.SetVersionTemplate(`{{with .DisplayName}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)

	exampleCmd := &cobra.Command{
		Use:               "example",
		Short:             "Print example configuration yaml",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(_ *cobra.Command, _ []string) error {
			example, err := config.Example()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(stdout, example)
			return err
		},
	}

	rootCmd.AddCommand(exampleCmd)

	rootCmd.AddCommand(newManCmd(rootCmd))

	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("configuration not found: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDONLY, 0o600)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return config.Parse(f)
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	switch level {
	case slog.LevelInfo:
		return slog.New(log.NewMsgHandler(w, level))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	}
}

func formatNames() []string {
	names := make([]string, 0, int(audio.Unknown))
	for f := range audio.Unknown {
		names = append(names, strings.ToLower(f.String()))
	}
	return names
}
