package config

import (
	"bytes"
	_ "embed"
	"runtime"
	"text/template"
)

//go:embed example.yaml.tmpl
var exampleYamlTmpl string

func Example() (string, error) {
	parse, err := template.New("").
		Delims("[[", "]]").
		Funcs(template.FuncMap{"isWindows": func() bool { return runtime.GOOS == "windows" }}).
		Parse(exampleYamlTmpl)
	if err != nil {
		return "", err
	}

	buf := &bytes.Buffer{}
	err = parse.Execute(buf, Default())
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
