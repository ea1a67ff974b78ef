package filestore

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "voucher.pdf", want: "voucher.pdf"},
		{name: "spaces and unicode", input: "June bill (final).pdf", want: "June_bill_final_.pdf"},
		{name: "path traversal", input: "../../etc/passwd", want: "passwd"},
		{name: "leading dots", input: "..hidden", want: "hidden"},
		{name: "only junk", input: "///", want: "file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize(tt.input))
		})
	}
}

func TestSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	store, err := New(filepath.Join(dir, "vouchers"))
	require.NoError(t, err)

	stored, err := store.Save("receipt 42.png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{8}_\d{6}_receipt_42\.png$`), stored)

	data, err := store.Open(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	_, err = store.Open("../" + stored)
	assert.Error(t, err)

	_, err = store.Open("20250101_000000_missing.png")
	assert.Error(t, err)
}

func TestNew_BadDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	_, err := New(filepath.Join(f, "sub"))
	assert.Error(t, err)
}
