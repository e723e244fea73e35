package sheet

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/momoluna444/csv2sfz/expr"
	"github.com/momoluna444/csv2sfz/sample"
)

// ErrEmptySheet is returned for a CSV with no annotation row at all.
var ErrEmptySheet = errors.New("empty sheet: no annotation row")

// record is one merged output line in the making: the resolved sample path,
// its display style and the evaluated value of every column.
type record struct {
	path   string // "" when the row has no sample
	style  sample.PathStyle
	values []string // indexed like Schema.Columns
}

// Convert transforms one CSV sheet into SFZ text. Globs in @sample cells
// resolve against baseDir, the directory holding the CSV file. Only
// structural problems are errors: malformed CSV and schema violations. Cell
// and glob problems degrade per cell or per row and never fail the sheet.
func Convert(data []byte, baseDir string) ([]byte, error) {
	rows, err := readRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	schema, err := ParseSchema(rows[0])
	if err != nil {
		return nil, err
	}

	body := rows[1:]
	expander := sample.NewExpander(baseDir)

	var buf bytes.Buffer
	for _, rng := range splitRanges(body, schema.Header) {
		table := mergeRange(schema, body, rng, expander)
		for _, rec := range table.records {
			emit(&buf, schema, rng.Prefix, rec)
		}
	}
	return buf.Bytes(), nil
}

// rangeTable accumulates merged records for one range, keyed by sample path.
// Records emit in insertion order, which keeps output deterministic without
// promising any particular order to callers.
type rangeTable struct {
	byKey   map[string]*record
	records []*record
}

// mergeRange expands and evaluates every row of the range top to bottom,
// merging rows that resolve to the same sample path. A later non-empty cell
// replaces the earlier value; empty cells inherit.
func mergeRange(schema *Schema, body [][]string, rng Range, expander *sample.Expander) *rangeTable {
	table := &rangeTable{byKey: make(map[string]*record)}

	for i := rng.Start; i < rng.End; i++ {
		row := body[i]
		for _, exp := range expandRow(schema, row, i, expander) {
			values := make([]string, len(schema.Columns))
			for c := range schema.Columns {
				if c == schema.Header || c == schema.Sample {
					continue
				}
				values[c] = expr.Apply(cell(row, c), exp.env)
			}
			table.merge(exp.key, &record{path: exp.path, style: exp.style, values: values})
		}
	}
	return table
}

// expansion is one output row produced from one input row: a merge key, the
// matched path (if any) and the parameter environment for cell evaluation.
type expansion struct {
	key   string
	path  string
	style sample.PathStyle
	env   expr.Env
}

// expandRow resolves the row's @sample cell into zero or more expansions. A
// row without a sample (no @sample column, or an empty cell) yields a single
// expansion keyed by its row index, so merging passes it through untouched.
// The key carries a NUL prefix, which no path contains, keeping the two key
// spaces apart.
func expandRow(schema *Schema, row []string, rowIdx int, expander *sample.Expander) []expansion {
	raw := ""
	if schema.Sample >= 0 {
		raw = cell(row, schema.Sample)
	}
	if raw == "" {
		return []expansion{{key: "\x00" + strconv.Itoa(rowIdx), env: expr.Env{}}}
	}

	pattern, style := sample.StripStyle(raw)
	paths := expander.Expand(pattern)
	expansions := make([]expansion, 0, len(paths))
	for _, p := range paths {
		expansions = append(expansions, expansion{
			key:   p,
			path:  p,
			style: style,
			env:   sample.StemParams(sample.Stem(p)),
		})
	}
	return expansions
}

func (t *rangeTable) merge(key string, incoming *record) {
	existing, ok := t.byKey[key]
	if !ok {
		t.byKey[key] = incoming
		t.records = append(t.records, incoming)
		return
	}
	for c, v := range incoming.values {
		if v != "" {
			existing.values[c] = v
		}
	}
	// Same key means the incoming row named this path too, so its display
	// style wins.
	if incoming.path != "" {
		existing.path = incoming.path
		existing.style = incoming.style
	}
}

// emit writes one SFZ line: the region prefix, then tokens in column order.
func emit(buf *bytes.Buffer, schema *Schema, prefix string, rec *record) {
	tokens := []string{prefix}
	for c, col := range schema.Columns {
		switch col.Kind {
		case ColOpcode:
			if v := rec.values[c]; v != "" {
				tokens = append(tokens, col.Name+"="+v)
			}
		case ColSample:
			if rec.path == "" || rec.style == sample.StyleHidden {
				continue
			}
			if rec.style == sample.StyleQuoted {
				tokens = append(tokens, col.Name+`="`+rec.path+`"`)
			} else {
				tokens = append(tokens, col.Name+"="+rec.path)
			}
		case ColRaw:
			if v := rec.values[c]; v != "" {
				tokens = append(tokens, v)
			}
		}
	}
	buf.WriteString(strings.Join(tokens, " "))
	buf.WriteByte('\n')
}
