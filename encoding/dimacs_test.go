package encoding

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDIMACSSkipsCommentsAndHeader(t *testing.T) {
	in := strings.NewReader("c a comment\np cnf 3 2\n1 -2 0\n2 3 0\n")

	clauses, err := ParseDIMACS(in)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, -2}, {2, 3}}, clauses)
}

func TestParseDIMACSToleratesMissingTerminator(t *testing.T) {
	in := strings.NewReader("1 -2\n")

	clauses, err := ParseDIMACS(in)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, -2}}, clauses)
}

func TestParseDIMACSRejectsMalformedLiteral(t *testing.T) {
	in := strings.NewReader("1 two 0\n")

	_, err := ParseDIMACS(in)
	assert.Error(t, err)
}

func TestOpenDecompressesGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.cnf.gz")

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("1 2 0\n-1 0\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	clauses, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {-1}}, clauses)
}

func TestOpenPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.cnf")
	require.NoError(t, os.WriteFile(path, []byte("1 2 0\n"), 0o644))

	clauses, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}}, clauses)
}

func TestModelSortsAndSigns(t *testing.T) {
	model := map[int]bool{2: false, 1: true, 3: true}

	assert.Equal(t, []int{1, -2, 3}, Model(model))
}

func TestFormatModelTerminatesWithZero(t *testing.T) {
	model := map[int]bool{1: true}

	assert.Equal(t, "1 0", FormatModel(model))
}
