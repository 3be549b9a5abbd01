// Package dump reads the flat text export of the legacy relational database.
//
// The export interleaves directive blocks of the form
//
//	COPY <table> (<col1>, <col2>, ...) FROM STDIN;
//
// followed by one tab-separated data line per row and a terminating line
// containing exactly `\.`. Fields use four two-character backslash escapes
// and the two-character marker `\N` for an explicit null.
//
// The parser is forgiving, not validating: directive lines that do not match
// the expected shape are skipped, so a malformed block yields a missing
// table, never a hard failure. Importers treat a missing table as zero rows.
package dump

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Table is one parsed COPY block: ordered column names plus raw rows.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Row holds one raw data line keyed by column name. The absent-vs-empty
// distinction is carried by sql.NullString: a `\N` field is Valid=false,
// an empty field is Valid=true with an empty string.
type Row struct {
	values map[string]sql.NullString
}

// NewRow builds a row from explicit values. Used by tests and callers that
// synthesize rows outside the parser.
func NewRow(values map[string]sql.NullString) Row {
	return Row{values: values}
}

// Get returns the value of the named column. Columns the block never
// declared come back as null.
func (r Row) Get(col string) sql.NullString {
	return r.values[col]
}

// Set maps table name to its parsed block.
type Set map[string]*Table

// Rows returns the rows of the named table, or nil when the table was not
// present in the dump.
func (s Set) Rows(name string) []Row {
	t, ok := s[name]
	if !ok {
		return nil
	}
	return t.Rows
}

// Names returns the parsed table names. Map iteration order; callers sort
// if they need determinism.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

// copyDirective matches a COPY block header. The schema qualifier is
// optional and `stdin` is matched case-insensitively so both hand-written
// dumps and pg_dump output parse.
var copyDirective = regexp.MustCompile(`^COPY\s+(?:\w+\.)?(\w+)\s+\(([^)]+)\)\s+FROM\s+(?i:stdin);$`)

// Parse reads the dump file at path into a table set.
func Parse(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dump file: %w", err)
	}
	defer f.Close()

	result := Set{}

	scanner := bufio.NewScanner(f)
	// Legacy rows carry multi-line text in escaped form; allow long lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var current *Table
	for scanner.Scan() {
		line := scanner.Text()

		if current == nil {
			m := copyDirective.FindStringSubmatch(strings.TrimRight(line, " \t\r"))
			if m == nil {
				continue
			}
			current = &Table{Name: m[1], Columns: splitColumns(m[2])}
			continue
		}

		if strings.TrimRight(line, " \t\r") == `\.` {
			result[current.Name] = current
			current = nil
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		current.Rows = append(current.Rows, parseRow(current.Columns, line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dump file: %w", err)
	}

	// Block truncated at EOF: keep what we have.
	if current != nil {
		result[current.Name] = current
	}

	return result, nil
}

func splitColumns(list string) []string {
	parts := strings.Split(list, ",")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		col := strings.TrimSpace(p)
		col = strings.Trim(col, `"`)
		if col != "" {
			cols = append(cols, col)
		}
	}
	return cols
}

func parseRow(columns []string, line string) Row {
	fields := strings.Split(line, "\t")
	values := make(map[string]sql.NullString, len(columns))
	for i, col := range columns {
		raw := ""
		if i < len(fields) {
			raw = fields[i]
		}
		// The null marker is checked on the raw bytes, before unescaping,
		// so a field containing a literal backslash-N survives as text.
		if raw == `\N` {
			values[col] = sql.NullString{}
			continue
		}
		values[col] = sql.NullString{String: Unescape(raw), Valid: true}
	}
	return Row{values: values}
}

// Unescape decodes the four COPY escape pairs in a single left-to-right
// pass. `\\` is resolved as it is encountered, so the backslash it yields
// can never be re-read as the start of another escape.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 'r':
				b.WriteByte('\r')
				i++
				continue
			case 't':
				b.WriteByte('\t')
				i++
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
