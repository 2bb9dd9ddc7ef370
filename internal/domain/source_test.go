package domain_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/expense-analyzer/internal/domain"
)

func TestFileSource_Open(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,description,amount\n"), 0o644))

	src := domain.NewFileSource(path)
	rc, err := src.Open()
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "date,description,amount\n", string(data))
	assert.Equal(t, path, src.Name())
}

func TestFileSource_OpenMissing(t *testing.T) {
	src := domain.NewFileSource(filepath.Join(t.TempDir(), "nope.csv"))

	_, err := src.Open()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStreamSource_Open(t *testing.T) {
	src := domain.NewStreamSource("", strings.NewReader("abc"))
	assert.Equal(t, "stream", src.Name())

	rc, err := src.Open()
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "abc", string(data))
	assert.NoError(t, rc.Close())

	_, err = domain.StreamSource{Label: "upload"}.Open()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
