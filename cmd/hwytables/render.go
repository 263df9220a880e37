package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

const tablesTemplate = `// Code generated by hwytables. DO NOT EDIT.

package {{.Package}}
{{range .Tables}}{{$t := .Type}}
// {{.Var}} holds {{len .Rows}} literal rows for {{$t}} lanes.
var {{.Var}} = []table[{{$t}}]{
{{- range .Rows}}
	{op: {{printf "%q" .Op}}, a: [TableLanes]{{$t}}{ {{- join .A}}}, b: [TableLanes]{{$t}}{ {{- join .B}}}, shift: {{.Shift}}, mask: [TableLanes]bool{ {{- joinBools .Mask}}}, want: [TableLanes]{{$t}}{ {{- join .Want}}}},
{{- end}}
}
{{end}}`

var tmpl = template.Must(template.New("tables").Funcs(template.FuncMap{
	"join": func(vals []string) string { return strings.Join(vals, ", ") },
	"joinBools": func(vals []bool) string {
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = strconv.FormatBool(v)
		}
		return strings.Join(out, ", ")
	},
}).Parse(tablesTemplate))

// tableVar names the variable holding the rows of a lane type, for
// example "tablesUint16".
func tableVar(typeName string) string {
	return "tables" + cases.Title(language.Und).String(typeName)
}

// render executes the template and formats the result as Go source.
func render(pkg string, tables []table) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Package string
		Tables  []table
	}{pkg, tables}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render tables: %w", err)
	}
	src, err := imports.Process("tables_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format tables: %w", err)
	}
	return src, nil
}
