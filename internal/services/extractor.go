package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractorService pulls plain text out of uploaded resume files.
type ExtractorService interface {
	ExtractText(filePath string) (*ExtractedContent, error)
}

type ExtractedContent struct {
	Text      string
	PageCount int
	FileType  string
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// ExtractText implements ExtractorService. The file type is taken from the
// extension; pdf, docx, and txt are supported.
func (e *extractorService) ExtractText(filePath string) (*ExtractedContent, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".pdf":
		return e.extractPDF(filePath)
	case ".docx":
		return e.extractDocx(filePath)
	case ".txt":
		return e.extractPlain(filePath)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

func (e *extractorService) extractPDF(filePath string) (*ExtractedContent, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := CleanText(textBuilder.String())
	if text == "" {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return &ExtractedContent{
		Text:      text,
		PageCount: totalPage,
		FileType:  "pdf",
	}, nil
}

func (e *extractorService) extractDocx(filePath string) (*ExtractedContent, error) {
	r, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open docx: %w", err)
	}
	defer r.Close()

	content := r.Editable().GetContent()
	text := CleanText(stripXMLTags(content))
	if text == "" {
		return nil, fmt.Errorf("no text content found in docx")
	}

	return &ExtractedContent{
		Text:      text,
		PageCount: 1,
		FileType:  "docx",
	}, nil
}

func (e *extractorService) extractPlain(filePath string) (*ExtractedContent, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	text := CleanText(string(data))
	if text == "" {
		return nil, fmt.Errorf("file is empty")
	}

	return &ExtractedContent{
		Text:      text,
		PageCount: 1,
		FileType:  "txt",
	}, nil
}

// stripXMLTags removes markup from raw docx document XML, inserting line
// breaks at paragraph boundaries.
func stripXMLTags(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")

	var builder strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// CleanText trims each line and drops blank lines.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
