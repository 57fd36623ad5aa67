package iocsv

import (
	"encoding/csv"
	"fmt"
	"strconv"
)

// header maps a CSV column name to its position in each data row, so
// readers never depend on column order.
type header map[string]int

func readHeader(r *csv.Reader) (header, error) {
	cols, err := r.Read()
	if err != nil {
		return nil, err
	}
	h := make(header, len(cols))
	for i, c := range cols {
		h[c] = i
	}
	return h, nil
}

// index returns the column index for name, or ErrMissingColumn.
func (h header) index(name string) (int, error) {
	i, ok := h[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	return i, nil
}

// row is one decoded data line paired with its header, offering
// typed accessors by column name.
type row struct {
	h      header
	fields []string
}

func (r row) str(name string) (string, error) {
	i, err := r.h.index(name)
	if err != nil {
		return "", err
	}
	if i >= len(r.fields) {
		return "", nil
	}
	return r.fields[i], nil
}

// strOpt returns the column's value, or def if the column is absent from
// the header or the field is empty.
func (r row) strOpt(name, def string) string {
	i, ok := r.h[name]
	if !ok || i >= len(r.fields) || r.fields[i] == "" {
		return def
	}
	return r.fields[i]
}

func (r row) float(name string) (float64, error) {
	s, err := r.str(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q value %q", ErrMalformedRow, name, s)
	}
	return v, nil
}

func (r row) floatOpt(name string, def float64) float64 {
	s := r.strOpt(name, "")
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func (r row) intOpt(name string, def int) int {
	s := r.strOpt(name, "")
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
