package utils

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

// ErrUnsupportedFormat is returned for files that are not PDF, DOCX or plain text
var ErrUnsupportedFormat = errors.New("unsupported file type")

// DocumentExtractor extracts text from various document formats
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// DetectMime resolves a document's type from its extension, falling back to
// the declared content type.
func DetectMime(filename, contentType string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt":
		return MimeText
	}
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.TrimSpace(strings.ToLower(contentType))
}

// IsSupportedFormat checks if the file format is supported
func (e *DocumentExtractor) IsSupportedFormat(filename, contentType string) bool {
	switch DetectMime(filename, contentType) {
	case MimePDF, MimeDOCX, MimeText:
		return true
	}
	return false
}

// ExtractFile reads an uploaded multipart file and extracts its text
func (e *DocumentExtractor) ExtractFile(file multipart.File, header *multipart.FileHeader) (string, []byte, error) {
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}
	data := buf.Bytes()

	text, err := e.ExtractText(DetectMime(header.Filename, header.Header.Get("Content-Type")), data)
	if err != nil {
		return "", nil, err
	}
	return text, data, nil
}

// ExtractText extracts plain text from document bytes of the given mime type
func (e *DocumentExtractor) ExtractText(mime string, data []byte) (string, error) {
	switch mime {
	case MimeText:
		return string(data), nil
	case MimePDF:
		return extractPDFText(bytes.NewReader(data))
	case MimeDOCX:
		return extractDocxText(bytes.NewReader(data))
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mime)
	}
}

func extractPDFText(reader *bytes.Reader) (string, error) {
	pdfReader, err := pdf.NewReader(reader, reader.Size())
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text.WriteString(content)
		text.WriteString("\n")
	}
	return strings.TrimSpace(text.String()), nil
}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(reader *bytes.Reader) (string, error) {
	doc, err := docx.ReadDocxFromMemory(reader, reader.Size())
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText turns word/document.xml into plain text, one line per paragraph
func docxXMLToText(content string) string {
	content = paragraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	lines := strings.Split(content, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
