package mimetypes

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown   MIME = "unknown"
	TextPlain MIME = "text/plain"
	TextHTML  MIME = "text/html"
	TextCSV   MIME = "text/csv"

	ApplicationPDF   MIME = "application/pdf"
	ApplicationJSON  MIME = "application/json"
	ApplicationXML   MIME = "application/xml"
	ApplicationOctet MIME = "application/octet-stream"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
	ImageWEBP MIME = "image/webp"
)

// Normalize strips parameters like "; charset=utf-8" from a declared media type.
// Invalid declarations normalize to the lower-cased raw string so that prefix
// checks still work on sloppy caller input.
func Normalize(declared string) string {
	mt, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(declared))
	}
	return mt
}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// IsImage reports whether the declared type belongs to the image category.
func IsImage(declared string) bool {
	return strings.HasPrefix(Normalize(declared), "image/")
}

// IsTextual reports whether the declared type is expected to decode into
// genuine document content: any text subtype, JSON or XML.
func IsTextual(declared string) bool {
	mt := Normalize(declared)
	return strings.HasPrefix(mt, "text/") ||
		strings.Contains(mt, "json") ||
		strings.Contains(mt, "xml")
}

// IsDocument reports whether the declared type is a page-description format
// whose parsing is delegated to external tooling.
func IsDocument(declared string) bool {
	return strings.Contains(Normalize(declared), "pdf")
}

// IsTextContent sniffs raw bytes and reports whether they hold text.
// Every textual format detected by the sniffer descends from text/plain.
func IsTextContent(data []byte) bool {
	for mt := mimetype.Detect(data); mt != nil; mt = mt.Parent() {
		if mt.Is(string(TextPlain)) {
			return true
		}
	}
	return false
}
