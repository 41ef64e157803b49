package domain

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// DocumentExtension is the only file extension treated as a document.
// Names without it are ignored by every operation.
const DocumentExtension = ".txt"

// Document is one uploaded text file, identified by its name.
type Document struct {
	Name    string `json:"name"`
	Content []byte `json:"-"`
}

// Text returns the document content decoded as UTF-8.
func (d *Document) Text() string {
	return DecodeText(d.Content)
}

// IsDocumentName reports whether name is accepted as a document name:
// non-empty, a single path element, and ending in DocumentExtension.
func IsDocumentName(name string) bool {
	return ValidateName(name) == nil
}

// ValidateName returns ErrInvalidName if name cannot identify a document.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return ErrInvalidName
	case strings.ContainsAny(name, "/\\\x00"):
		return ErrInvalidName
	case !strings.HasSuffix(name, DocumentExtension):
		return ErrInvalidName
	}
	return nil
}

// FilterDocumentNames returns the names that are valid document names,
// keeping their order.
func FilterDocumentNames(names []string) []string {
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if IsDocumentName(name) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// DecodeText decodes raw bytes as UTF-8. Malformed sequences are
// replaced with U+FFFD; decoding never fails.
func DecodeText(data []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(decoded)
}

// UploadFile is one named payload received on upload.
type UploadFile struct {
	Name string
	Data []byte
}
