// Package encoding reads and writes the DIMACS CNF text format, and
// renders solver models back out in it.
package encoding

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseDIMACS reads the DIMACS CNF format from in: one clause per line, a
// trailing 0 terminator (dropped here, same as an absent one), and "c"/"p"
// lines ignored as comments/header. It does not interpret the header's
// declared variable/clause counts — Solver discovers both from the clauses
// themselves.
func ParseDIMACS(in io.Reader) ([][]int, error) {
	scanner := bufio.NewScanner(in)
	clauses := [][]int{}

	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := bytes.Fields(scanner.Bytes())
		if len(fields) == 0 {
			continue
		}

		switch string(fields[0]) {
		case "c", "p", "%", "0":
			continue
		}

		clause := make([]int, 0, len(fields))
		for _, field := range fields {
			p, err := strconv.Atoi(string(field))
			if err != nil {
				return nil, errors.Wrapf(err, "dimacs: line %d: malformed literal %q", lineNo, field)
			}
			if p != 0 {
				clause = append(clause, p)
			}
		}
		clauses = append(clauses, clause)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "dimacs: scanning input")
	}

	return clauses, nil
}

// Open reads a DIMACS file from path, transparently decompressing it first
// if the name ends in ".gz" (the convention the wider SAT-competition
// benchmark corpora and go-air-gini's own CNF/AIGER loader both use).
func Open(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dimacs: opening %s", path)
	}
	defer f.Close()

	r := io.Reader(f)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "dimacs: %s is not valid gzip", path)
		}
		defer gz.Close()
		r = gz
	}

	clauses, err := ParseDIMACS(r)
	if err != nil {
		return nil, errors.Wrapf(err, "dimacs: parsing %s", path)
	}

	return clauses, nil
}

// Model renders a solver's variable->truth model as a signed-literal line
// in DIMACS model-output convention (each variable appears once, negated
// if false), sorted by variable id for a stable rendering.
func Model(model map[int]bool) []int {
	vars := make([]int, 0, len(model))
	for v := range model {
		vars = append(vars, v)
	}
	sort.Ints(vars)

	lits := make([]int, len(vars))
	for i, v := range vars {
		if model[v] {
			lits[i] = v
		} else {
			lits[i] = -v
		}
	}
	return lits
}

// FormatModel renders Model's output as a single space-separated,
// "0"-terminated DIMACS model line.
func FormatModel(model map[int]bool) string {
	lits := Model(model)

	parts := make([]string, 0, len(lits)+1)
	for _, p := range lits {
		parts = append(parts, strconv.Itoa(p))
	}
	parts = append(parts, "0")

	return strings.Join(parts, " ")
}
