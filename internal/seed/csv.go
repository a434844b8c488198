package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
)

// row is one CSV record keyed by header
type row struct {
	line   int
	values map[string]string
}

// readRows reads a header-driven CSV file. Unreadable files are an error;
// records with the wrong field count are reported through bad.
func readRows(path string, bad func(line int, err error)) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to open seed file").WithMeta("path", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Persistence(err, "failed to read seed file header").WithMeta("path", path)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	var rows []row
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				bad(line, err)
				continue
			}
			return nil, apperr.Persistence(err, "failed to read seed file").WithMeta("path", path)
		}
		if len(record) != len(header) {
			bad(line, fmt.Errorf("expected %d fields, got %d", len(header), len(record)))
			continue
		}

		values := make(map[string]string, len(header))
		for i, h := range header {
			values[h] = strings.TrimSpace(record[i])
		}
		rows = append(rows, row{line: line, values: values})
	}
	return rows, nil
}

func (r row) str(key string) string {
	return r.values[key]
}

func (r row) require(key string) (string, error) {
	v := r.values[key]
	if v == "" {
		return "", fmt.Errorf("missing %s", key)
	}
	return v, nil
}

// opt returns nil for an empty cell
func (r row) opt(key string) *string {
	v := r.values[key]
	if v == "" {
		return nil
	}
	return &v
}

func (r row) intOr(key string, def int) (int, error) {
	v := r.values[key]
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func (r row) optInt(key string) (*int, error) {
	if r.values[key] == "" {
		return nil, nil
	}
	n, err := r.intOr(key, 0)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// boolOr accepts True/False in any case
func (r row) boolOr(key string, def bool) (bool, error) {
	v := r.values[key]
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", key, v)
	}
	return b, nil
}

// list splits a ';'-joined cell, dropping empty entries
func (r row) list(key string) []string {
	var out []string
	for _, part := range strings.Split(r.values[key], ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// pairs splits a list cell into ':'-separated fields, requiring n of them
func (r row) pairs(key string, n int) ([][]string, error) {
	var out [][]string
	for _, entry := range r.list(key) {
		fields := strings.Split(entry, ":")
		if len(fields) < n {
			return nil, fmt.Errorf("invalid %s entry %q", key, entry)
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		out = append(out, fields)
	}
	return out, nil
}

func atoi(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", key, v)
	}
	return n, nil
}

func (r row) attributeModifiers(key string) ([]catalog.AttributeModifier, error) {
	entries, err := r.pairs(key, 2)
	if err != nil {
		return nil, err
	}
	mods := []catalog.AttributeModifier{}
	for _, e := range entries {
		mod, err := atoi(key, e[1])
		if err != nil {
			return nil, err
		}
		mods = append(mods, catalog.AttributeModifier{AttributeName: e[0], Modification: mod})
	}
	return mods, nil
}
