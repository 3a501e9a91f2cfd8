package audio

import (
	"fmt"
	"strings"
)

// fallbackBitrate is used for aac when the source bitrate is unknown.
const fallbackBitrate = "128k"

type cmdBuilder struct {
	policy        Policy
	inputPath     string
	outputName    string
	decryptionKey string
	bitrate       string
}

func (cb *cmdBuilder) outputPath() string {
	return cb.outputName + cb.policy.Ext
}

// args returns the ffmpeg arguments without the binary name.
// ffmpeg applies options to the next -i or output file, so the order matters.
func (cb *cmdBuilder) args() []string {
	args := []string{"-y"}

	if cb.decryptionKey != "" {
		args = append(args, "-decryption_key", cb.decryptionKey)
	}

	args = append(args,
		"-i", cb.inputPath,
		"-c:a", cb.policy.Codec,
	)

	if cb.policy.Codec == "aac" {
		bitrate := cb.bitrate
		if bitrate == "" {
			bitrate = fallbackBitrate
		}
		args = append(args, "-b:a", bitrate)
	}

	args = append(args, cb.policy.Args...)

	if cb.policy.Ext == M4a.Ext() {
		args = append(args, "-movflags", "+faststart")
	}

	return append(args, cb.outputPath())
}

// BuildArgs assembles the ffmpeg arguments for converting inputPath with
// policy. bitrate is only used for aac; empty selects the fallback.
func BuildArgs(policy Policy, inputPath, outputName, decryptionKey, bitrate string) []string {
	cb := &cmdBuilder{
		policy:        policy,
		inputPath:     inputPath,
		outputName:    outputName,
		decryptionKey: decryptionKey,
		bitrate:       bitrate,
	}
	return cb.args()
}

// redactArgs masks the decryption key so args can be logged.
func redactArgs(args []string) []string {
	redacted := make([]string, len(args))
	copy(redacted, args)
	for i := range len(redacted) - 1 {
		if redacted[i] == "-decryption_key" {
			redacted[i+1] = "<redacted>"
		}
	}
	return redacted
}

func cmdError(cmd string, args []string, stderr string) error {
	return fmt.Errorf("err: %s %s\n%s",
		cmd,
		strings.Join(redactArgs(args), " "),
		stderr,
	)
}
