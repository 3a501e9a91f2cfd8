package audio

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// copyCodec tells ffmpeg to remux the stream without re-encoding.
const copyCodec = "copy"

var ErrUnsupportedCodec = errors.New("unsupported codec")

// Policy describes how a source codec is written out.
type Policy struct {
	Ext   string
	Codec string
	Args  []string
}

func atmosArgs() []string {
	return []string{"-metadata:s:a:0", "atmos=true"}
}

// policies returns a fresh table for target. Only opus depends on the target:
// it is remuxed into ogg/opus, re-encoded to aac for m4a and
// unsupported for everything else.
func policies(target Format) map[string]Policy {
	p := map[string]Policy{
		"flac":          {Ext: Flac.Ext(), Codec: copyCodec},
		"ec-3":          {Ext: M4a.Ext(), Codec: "ac3", Args: atmosArgs()},
		"ac-4.02.02.00": {Ext: M4a.Ext(), Codec: "ac4", Args: atmosArgs()},
	}

	switch target {
	case M4a:
		p["opus"] = Policy{Ext: M4a.Ext(), Codec: "aac"}
	case Ogg, Opus:
		p["opus"] = Policy{Ext: target.Ext(), Codec: copyCodec}
	default:
	}
	return p
}

func normalizeCodec(codec string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(codec))
}

// Resolve looks up the policy for the source codec when converting for target.
func Resolve(codec string, target Format) (Policy, error) {
	p, ok := policies(target)[normalizeCodec(codec)]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %s", ErrUnsupportedCodec, codec)
	}
	return p, nil
}

// SupportedCodecs lists the source codecs Resolve accepts for target.
func SupportedCodecs(target Format) []string {
	return slices.Sorted(maps.Keys(policies(target)))
}
