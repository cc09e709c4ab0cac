package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// StoredFileName builds a collision-free object name from an uploaded
// filename: sanitized base, a uuid suffix, original extension preserved.
func StoredFileName(originalName string) string {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	clean := unsafeChars.ReplaceAllString(base, "_")
	if clean == "" {
		clean = "archivo"
	}
	return fmt.Sprintf("%s_%s%s", clean, uuid.NewString(), strings.ToLower(ext))
}
