package webscraper

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfContent extracts the document title and the text of every page, page rows are kept as lines
func pdfContent(body []byte) (title string, content string, err error) {
	r, err := pdf.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return "", "", err
	}
	title = strings.TrimSpace(r.Trailer().Key("Info").Key("Title").Text())
	var b strings.Builder
	for idx := 1; idx <= r.NumPage(); idx++ {
		page := r.Page(idx)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", "", fmt.Errorf("pdf page %d: %w", idx, err)
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return title, b.String(), nil
}
