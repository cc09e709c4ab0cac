package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoredFileName_SanitizesBase(t *testing.T) {
	got := StoredFileName("parte diario (enero).PDF")

	assert.True(t, strings.HasPrefix(got, "parte_diario__enero__"))
	assert.True(t, strings.HasSuffix(got, ".pdf"))
	assert.NotContains(t, got, " ")
	assert.NotContains(t, got, "(")
}

func TestStoredFileName_EmptyBase(t *testing.T) {
	got := StoredFileName("....png")

	assert.True(t, strings.HasPrefix(got, "archivo_") || strings.HasPrefix(got, "____"))
	assert.True(t, strings.HasSuffix(got, ".png"))
}

func TestStoredFileName_Unique(t *testing.T) {
	a := StoredFileName("foto.png")
	b := StoredFileName("foto.png")
	assert.NotEqual(t, a, b)
}

func TestStoredFileName_NoExtension(t *testing.T) {
	got := StoredFileName("README")
	assert.True(t, strings.HasPrefix(got, "README_"))
	assert.NotContains(t, got, ".")
}
