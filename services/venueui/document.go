package venueui

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// FindDeleteControls returns every delete control currently in doc
func FindDeleteControls(doc *goquery.Document) []Element {
	var elements []Element
	doc.Find(DeleteSelector).Each(func(_ int, sel *goquery.Selection) {
		elements = append(elements, sel)
	})
	return elements
}

// BindDocument parses a page and binds its delete controls
func BindDocument(page io.Reader, requester Requester, navigator Navigator) (*DeleteHandler, *goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return Bind(FindDeleteControls(doc), requester, navigator), doc, nil
}
