package mimetypes

import (
	"testing"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected MIME
		want     bool
	}{
		{"Plain text with charset", "text/plain; charset=utf-8", TextPlain, true},
		{"HTML text", "text/html; charset=utf-8", TextHTML, true},
		{"CSV text", "text/csv", TextCSV, true},

		{"JSON", "application/json", ApplicationJSON, true},
		{"JSON with charset", "application/json; charset=utf-8", ApplicationJSON, true},
		{"PDF", "application/pdf", ApplicationPDF, true},
		{"XML detected as text/xml", "text/xml; charset=utf-8", ApplicationXML, false}, // attention
		{"XML detected as application/xml", "application/xml", ApplicationXML, true},

		{"PNG", "image/png", ImagePNG, true},
		{"JPEG", "image/jpeg", ImageJPEG, true},

		{"Mismatch", "text/plain; charset=utf-8", ApplicationJSON, false},
		{"Unknown type", "application/octet-stream", TextPlain, false},
		{"Invalid MIME", "not a mime", TextPlain, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Matches(tt.detected, tt.expected)
			if ok != tt.want && got != tt.expected {
				t.Errorf("Matches(%q, %q) = %v; want %v", tt.detected, tt.expected, ok, tt.want)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		image    bool
		textual  bool
		document bool
	}{
		{"PNG", "image/png", true, false, false},
		{"JPEG with params", "image/jpeg; q=0.8", true, false, false},
		{"Plain text", "text/plain", false, true, false},
		{"Plain text with charset", "text/plain; charset=utf-8", false, true, false},
		{"Markdown", "text/markdown", false, true, false},
		{"JSON", "application/json", false, true, false},
		{"XML as text", "text/xml", false, true, false},
		{"XML as application", "application/xml", false, true, false},
		{"PDF", "application/pdf", false, false, true},
		{"Octet stream", "application/octet-stream", false, false, false},
		{"Garbage", "not a mime", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsImage(tt.declared); got != tt.image {
				t.Errorf("IsImage(%q) = %v; want %v", tt.declared, got, tt.image)
			}
			if got := IsTextual(tt.declared); got != tt.textual {
				t.Errorf("IsTextual(%q) = %v; want %v", tt.declared, got, tt.textual)
			}
			if got := IsDocument(tt.declared); got != tt.document {
				t.Errorf("IsDocument(%q) = %v; want %v", tt.declared, got, tt.document)
			}
		})
	}
}

func TestIsTextContent(t *testing.T) {
	if !IsTextContent([]byte("Hello. World is great.")) {
		t.Error("plain english should sniff as text")
	}
	if IsTextContent([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}) {
		t.Error("PNG magic bytes should not sniff as text")
	}
}
