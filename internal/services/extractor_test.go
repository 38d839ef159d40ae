package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	input := "  Ada Lovelace  \n\n\n  Engineer at Acme \n\t\n4 years"
	assert.Equal(t, "Ada Lovelace\nEngineer at Acme\n4 years", CleanText(input))
	assert.Equal(t, "", CleanText("   \n\t  "))
}

func TestStripXMLTags(t *testing.T) {
	input := `<w:p><w:r><w:t>Ada Lovelace</w:t></w:r></w:p><w:p><w:r><w:t>Engineer</w:t></w:r></w:p>`
	assert.Equal(t, "Ada Lovelace\nEngineer\n", stripXMLTags(input))
}

func TestExtractTextPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Ada Lovelace\n\nEngineer  \n"), 0o644))

	svc := NewExtractorService()
	content, err := svc.ExtractText(path)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace\nEngineer", content.Text)
	assert.Equal(t, "txt", content.FileType)
	assert.Equal(t, 1, content.PageCount)
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.odt")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o644))

	svc := NewExtractorService()
	_, err := svc.ExtractText(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
}

func TestExtractTextMissingFile(t *testing.T) {
	svc := NewExtractorService()
	_, err := svc.ExtractText(filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
}

func TestExtractTextEmptyPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n  "), 0o644))

	svc := NewExtractorService()
	_, err := svc.ExtractText(path)
	require.Error(t, err)
}
