package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoredFileName(t *testing.T) {
	name := StoredFileName("My Report (Final).PDF")

	assert.True(t, strings.HasPrefix(name, "my-report-final-"), "got %q", name)
	assert.True(t, strings.HasSuffix(name, ".pdf"), "got %q", name)
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "(")
}

func TestStoredFileName_NoExtension(t *testing.T) {
	name := StoredFileName("README")

	assert.True(t, strings.HasPrefix(name, "readme-"), "got %q", name)
	assert.NotContains(t, name, ".")
}

func TestStoredFileName_UnsluggableBase(t *testing.T) {
	name := StoredFileName("???.txt")

	assert.True(t, strings.HasPrefix(name, "file-"), "got %q", name)
	assert.True(t, strings.HasSuffix(name, ".txt"), "got %q", name)
}

func TestStoredFileName_CollisionResistant(t *testing.T) {
	a := StoredFileName("data.csv")
	b := StoredFileName("data.csv")

	assert.NotEqual(t, a, b)
}

func TestStoredFileName_StripsPathComponents(t *testing.T) {
	name := StoredFileName("../../etc/passwd")

	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "..")
}
