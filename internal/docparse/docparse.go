// Package docparse extracts plain text from the document formats resumes
// arrive in: PDF, DOCX, HTML, and plain text.
package docparse

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

var blankLinesRe = regexp.MustCompile(`\n\s*\n+`)

// FromFile reads a document and extracts its text based on the file extension.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return FromBytes(path, data)
}

// FromBytes extracts text from an in-memory document. The name is used only
// for its extension; .txt and extensionless content passes through as-is.
func FromBytes(name string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		text, err = fromPDF(data)
	case ".docx":
		text, err = fromDOCX(data)
	case ".html", ".htm":
		text, err = fromHTML(data)
	case ".txt", "":
		text = string(data)
	default:
		return "", fmt.Errorf("unsupported document type %q", filepath.Ext(name))
	}
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", name, err)
	}
	return normalize(text), nil
}

func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	content, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// fromDOCX unzips the document and decodes the WordprocessingML in
// word/document.xml, turning paragraph ends into newlines.
func fromDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", err
		}
		text, err := docxText(rc)
		_ = rc.Close()
		if err != nil {
			return "", err
		}
		return text, nil
	}
	return "", fmt.Errorf("word/document.xml not found in archive")
}

// docxText collects the character data of the document XML. Going through the
// token decoder rather than stripping tags keeps character entities decoded.
func docxText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var sb strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String(), nil
}

func fromHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	doc.Find("script, style").Remove()
	return doc.Text(), nil
}

// normalize collapses runs of blank lines and drops carriage returns so the
// section extractors see consistent line structure.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	return strings.TrimSpace(blankLinesRe.ReplaceAllString(text, "\n\n"))
}
