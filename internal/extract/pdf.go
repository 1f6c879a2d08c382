package extract

import (
	"errors"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText means the document parsed but yielded no extractable text.
var ErrNoText = errors.New("no extractable text in document")

// TextExtractor turns an uploaded document byte stream into plain text. The
// quiz pipeline only ever sees the text, never the bytes.
type TextExtractor interface {
	Text(r io.ReaderAt, size int64) (string, error)
}

type PDFExtractor struct{}

func NewPDFExtractor() PDFExtractor { return PDFExtractor{} }

// Text concatenates per-page plain text with newlines. A page that fails to
// decode is skipped; the document fails only when nothing at all comes out.
func (PDFExtractor) Text(r io.ReaderAt, size int64) (string, error) {
	doc, err := pdf.NewReader(r, size)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", ErrNoText
	}
	return out, nil
}
