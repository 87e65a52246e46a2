package util

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"
)

// MaxUploadSize mirrors the limit the upload form advertises.
const MaxUploadSize = 16 * 1024 * 1024

const minContentLength = 100

var (
	ErrUnsupportedFileType = errors.New("unsupported file type, use PDF or TXT")
	ErrFileTooLarge        = errors.New("file too large, maximum is 16MB")
	ErrContentTooShort     = errors.New("content too short for meaningful evaluation")
	ErrNoText              = errors.New("no text extracted from document")
)

// ExtractText returns the plain text of a PDF or TXT upload.
func ExtractText(fileName string, content []byte) (string, error) {
	if len(content) > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		text, err = extractPDF(content)
	case ".txt":
		text, err = extractTXT(content)
	default:
		return "", ErrUnsupportedFileType
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoText
	}
	if utf8.RuneCountInString(text) < minContentLength {
		return "", ErrContentTooShort
	}
	return text, nil
}

func extractPDF(content []byte) (string, error) {
	doc, err := fitz.NewFromMemory(content)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}

func extractTXT(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", fmt.Errorf("text file is not valid UTF-8")
	}
	return strings.TrimPrefix(string(content), "\ufeff"), nil
}
