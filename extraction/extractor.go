// Package extraction decodes caller payloads into plain text.
// It never performs OCR or rich-document parsing itself: image and PDF
// payloads yield fixed placeholders describing that limitation.
package extraction

import (
	"encoding/base64"
	"log/slog"
	"strings"
	"unicode/utf8"

	"doc-lab/domain"
	"doc-lab/domain/mimetypes"
)

const (
	// ImagePlaceholder is returned for any image media type.
	ImagePlaceholder = "This is an image file. I can provide basic image analysis but cannot read text content from images without OCR processing."
	// DocumentPlaceholder is returned for page-description formats such as PDF.
	DocumentPlaceholder = "PDF content analysis requires additional processing. I can see this is a PDF document."
)

type Extractor struct {
	log *slog.Logger
}

func NewExtractor(log *slog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract decodes the payload into text according to its declared media type.
// The boolean is false when no readable text is available; callers must then
// short-circuit instead of analyzing empty content.
func (e *Extractor) Extract(payload domain.Payload) (string, bool) {
	switch {
	case mimetypes.IsImage(payload.MimeType):
		return ImagePlaceholder, true

	case mimetypes.IsTextual(payload.MimeType):
		return e.decode(payload.Data)

	case mimetypes.IsDocument(payload.MimeType):
		return DocumentPlaceholder, true
	}

	// Unknown media type: attempt the text decode, but refuse to hand
	// binary garbage to the analyzer.
	text, ok := e.decode(payload.Data)
	if !ok {
		return "", false
	}
	if !utf8.ValidString(text) || !mimetypes.IsTextContent([]byte(text)) {
		e.log.Debug("payload decoded but does not sniff as text",
			"mime_type", payload.MimeType)
		return "", false
	}
	return text, true
}

// decode turns base64 payload data into a string. A data-URL prefix
// ("data:...;base64,") is stripped when present.
func (e *Extractor) decode(data string) (string, bool) {
	if i := strings.IndexByte(data, ','); i >= 0 {
		data = data[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		e.log.Debug("payload decoding failed", "error", err)
		return "", false
	}
	return string(raw), true
}
