package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// AttachmentKey builds the object key tickets/<ticketID>/<uuid>-<name>.
func AttachmentKey(ticketID uint, fileName string) string {
	return fmt.Sprintf("tickets/%d/%s-%s", ticketID, uuid.NewString(), SanitizeFileName(fileName))
}

// SanitizeFileName strips directories and characters unsafe for object keys and headers.
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f, r == '"', r == '/', r == '\\':
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return "file"
	}
	return name
}
