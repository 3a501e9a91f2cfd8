package audio

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:generate go run golang.org/x/tools/cmd/stringer@latest -type Format
type Format int

const (
	Flac Format = iota
	M4a
	Opus
	Ogg
	Mp3
	Unknown
)

var formatExt = map[Format]string{
	Flac: ".flac",
	M4a:  ".m4a",
	Opus: ".opus",
	Ogg:  ".ogg",
	Mp3:  ".mp3",
}

// Ext returns the file extension including the leading dot.
func (a Format) Ext() string {
	return formatExt[a]
}

func ParseFormat(s string) (Format, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), ".")
	for i := range Unknown {
		if strings.EqualFold(i.String(), s) {
			return i, nil
		}
	}
	return Unknown, fmt.Errorf("unknown audio format '%s'", s)
}

func (a *Format) UnmarshalYAML(node *yaml.Node) error {
	var y string
	err := node.Decode(&y)
	if err != nil {
		return err
	}
	f, err := ParseFormat(y)
	if err != nil {
		return err
	}
	*a = f
	return nil
}
