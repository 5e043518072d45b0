package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/format"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/scylladb/go-set/strset"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

var funcMap = template.FuncMap{
	"join": strings.Join,
}

type GeneratorOptions struct {
	Args      []string
	BuildTags string
	Dir       string
	Type      string
}

type Generator struct {
	err     error
	logger  *zap.Logger
	options GeneratorOptions
	pkgDefs map[*ast.Ident]types.Object
	pkgName string
	values  []Value
}

type Value struct {
	Name         string
	OriginalName string
	Value        int64
}

func NewGenerator(options GeneratorOptions, logger *zap.Logger) *Generator {
	if options.Dir == "" {
		options.Dir = "."
	}

	return &Generator{options: options, logger: logger}
}

func (g *Generator) Run() ([]byte, error) {
	var tags []string

	if g.options.BuildTags != "" {
		tags = strings.Split(g.options.BuildTags, ",")
	}

	cfg := &packages.Config{
		Mode:       packages.LoadSyntax,
		Dir:        g.options.Dir,
		Tests:      false,
		BuildFlags: []string{fmt.Sprintf("-tags=%s", strings.Join(tags, " "))},
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%d packages found", len(pkgs))
	}

	g.pkgName = pkgs[0].Name
	g.pkgDefs = pkgs[0].TypesInfo.Defs

	for _, file := range pkgs[0].Syntax {
		ast.Inspect(file, g.findType)
	}

	if g.err != nil {
		return nil, g.err
	}

	if len(g.values) == 0 {
		return nil, fmt.Errorf("no constants of type %s found", g.options.Type)
	}

	data := struct {
		Args        []string
		PackageName string
		Type        string
		Values      []Value
	}{
		Args:        g.options.Args,
		PackageName: g.pkgName,
		Type:        g.options.Type,
		Values:      g.values,
	}

	var buf bytes.Buffer

	if err := _tmpl.Execute(&buf, data); err != nil {
		return buf.Bytes(), err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), err
	}

	output := filepath.Join(g.options.Dir, fmt.Sprintf("%s_enum.go", strings.ToLower(g.options.Type)))

	if err := os.WriteFile(output, src, 0o644); err != nil {
		return src, err
	}

	g.logger.Info("generated enum", zap.String("type", g.options.Type), zap.String("output", output), zap.Int("values", len(g.values)))

	return src, nil
}

func (g *Generator) findType(node ast.Node) bool {
	if g.err != nil {
		return false
	}

	decl, ok := node.(*ast.GenDecl)
	if !ok || decl.Tok != token.CONST {
		// Enum declarations need to be const.
		return true
	}

	typ := "" // name of the constant's type, carried over implicit repetitions

	for _, spec := range decl.Specs {
		vspec := spec.(*ast.ValueSpec) // we've already determined this is a const
		if vspec.Type != nil {
			ident, ok := vspec.Type.(*ast.Ident)
			if !ok {
				continue
			}

			typ = ident.Name
		}

		if g.options.Type != typ {
			// Not the type we want.
			continue
		}

		for _, name := range vspec.Names {
			if name.Name == "_" {
				continue // ignore
			}

			v, err := g.value(name, vspec.Comment)
			if err != nil {
				g.err = err
				return false
			}

			g.values = append(g.values, v)
		}
	}

	return false
}

func (g *Generator) value(name *ast.Ident, comment *ast.CommentGroup) (Value, error) {
	obj, ok := g.pkgDefs[name]
	if !ok {
		return Value{}, fmt.Errorf("no value for constant %q", name.Name)
	}

	info, ok := obj.Type().Underlying().(*types.Basic)
	if !ok || info.Info()&types.IsInteger == 0 {
		return Value{}, fmt.Errorf("%q must be an integer type", g.options.Type)
	}

	value := obj.(*types.Const).Val()
	if value.Kind() != constant.Int {
		return Value{}, fmt.Errorf("%q constant is not an integer", name.Name)
	}

	i64, _ := constant.Int64Val(value)

	v := Value{
		OriginalName: name.Name,
		Value:        i64,
	}

	if comment != nil && len(comment.List) == 1 {
		text := strings.TrimSpace(comment.Text())
		fields := strset.New(strings.Split(text, ", ")...)

		var err error

		fields.Each(func(field string) bool {
			key, val, ok := strings.Cut(field, "=")
			if !ok || key != "name" {
				return true
			}

			if val != "" && val[0] == '"' {
				val, err = strconv.Unquote(val)
				if err != nil {
					return false
				}
			}

			v.Name = val
			return true
		})

		if err != nil {
			return Value{}, err
		}
	}

	if v.Name == "" {
		v.Name = strings.ToLower(strings.TrimPrefix(name.Name, g.options.Type))
		v.Name = strings.ReplaceAll(v.Name, "_", "-")
	}

	if v.Name == "" {
		return Value{}, errors.New("empty enum name for " + name.Name)
	}

	return v, nil
}

var _tmpl = template.Must(template.New("").Funcs(funcMap).Parse(`// Code generated by "gen-enum {{ join .Args " " }}"; DO NOT EDIT.
package {{ .PackageName }}

import (
	"errors"
	"fmt"
)

func _() {
	// An "invalid array index" compiler error signifies that the constant
	// values have changed. Run the generator again.
	var x [1]struct{}
        {{- range .Values }}
	_ = x[{{ .OriginalName }}-{{ .Value }}]
        {{- end }}
}

var _{{ .Type }}_string_to_type = map[string]{{ .Type }}{
	{{- range $i, $value := .Values }}
	"{{ $value.Name }}": {{ $value.OriginalName }},
	{{- end }}
}

var _{{ .Type }}_type_to_string = map[{{ .Type }}]string{
	{{- range $i, $value := .Values }}
	{{ $value.OriginalName }}: "{{ $value.Name }}",
	{{- end }}
}

var ErrInvalid{{ .Type }} = errors.New("invalid {{ .Type }}")

func (i {{ .Type }}) String() string {
	if s, ok := _{{ .Type }}_type_to_string[i]; ok {
		return s
	}
	return fmt.Sprintf("{{ .Type }}(%d)", int(i))
}

func StringTo{{ .Type }}(s string) ({{ .Type }}, error) {
	if t, ok := _{{ .Type }}_string_to_type[s]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalid{{ .Type }}, s)
}

func Is{{ .Type }}(s string) bool {
	_, ok := _{{ .Type }}_string_to_type[s]
	return ok
}

func {{ .Type }}List() []{{ .Type }} {
	return []{{ .Type }}{
		{{- range $i, $value := .Values }}
		{{ $value.OriginalName }},
		{{- end }}
	}
}
`))
