// Package extract turns HTML input into the text voca operates on, either
// as Markdown or as plain text.
package extract

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"sync"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/chriscorrea/voca/internal/escape"
	"github.com/chriscorrea/voca/internal/strip"
)

// ToMarkdown extracts the main content from HTML and converts it to Markdown.
// Optional CSS selector filtering is supported.
//
// Parameters:
//   - content: io.Reader containing HTML content
//   - selector: optional CSS selector to filter content (empty string for main content extraction)
//   - includeAll: if true, skips readability extraction and converts all HTML content
//   - baseURL: optional URL for context during readability extraction (can be nil)
//
// Returns clean Markdown string or error if extraction/conversion fails.
func ToMarkdown(content io.Reader, selector string, includeAll bool, baseURL *url.URL) (string, error) {
	html, err := selectHTML(content, selector, includeAll, baseURL)
	if err != nil {
		return "", err
	}
	return convertToMarkdown(html)
}

// ToText selects HTML the same way ToMarkdown does and returns its text.
// Tags are stripped and entities decoded. Block elements start a new line
// and blank lines are dropped.
func ToText(content io.Reader, selector string, includeAll bool, baseURL *url.URL) (string, error) {
	html, err := selectHTML(content, selector, includeAll, baseURL)
	if err != nil {
		return "", err
	}
	html, err = dropInvisible(html)
	if err != nil {
		return "", err
	}
	html = getBlockPattern().ReplaceAllString(html, "\n$0")
	text := escape.UnescapeHTML(strip.Tags(html))
	slog.Debug("HTML converted to text", "htmlBytes", len(html), "textBytes", len(text))
	return compactLines(text), nil
}

// selectHTML picks the HTML to convert. A selector wins over includeAll;
// without either, go-readability finds the main content.
func selectHTML(content io.Reader, selector string, includeAll bool, baseURL *url.URL) (string, error) {
	if selector != "" {
		return extractWithSelector(content, selector)
	}
	if includeAll {
		return readAllHTML(content)
	}
	return extractMainContent(content, baseURL)
}

// extractMainContent uses go-readability to extract the main article content
func extractMainContent(content io.Reader, baseURL *url.URL) (string, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(content, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}
	return article.Content, nil
}

// extractWithSelector uses a CSS selector to extract specific content
func extractWithSelector(content io.Reader, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	var htmlParts []string
	selection.Each(func(i int, s *goquery.Selection) {
		html, err := s.Html()
		if err == nil {
			// wrap each element to preserve structure
			tagName := goquery.NodeName(s)
			htmlParts = append(htmlParts, fmt.Sprintf("<%s>%s</%s>", tagName, html, tagName))
		}
	})

	if len(htmlParts) == 0 {
		return "", fmt.Errorf("failed to extract HTML from selection")
	}
	slog.Debug("Selector matched", "selector", selector, "elements", len(htmlParts))
	return strings.Join(htmlParts, "\n"), nil
}

func readAllHTML(content io.Reader) (string, error) {
	htmlBytes, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML content: %w", err)
	}
	return string(htmlBytes), nil
}

// dropInvisible removes elements whose text is never rendered.
func dropInvisible(html string) (string, error) {
	if !strings.Contains(html, "<") {
		return html, nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript, template, head").Remove()
	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}
	return out, nil
}

// compactLines trims every line and drops the blank ones.
func compactLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

var (
	blockPattern     *regexp.Regexp
	blockPatternOnce sync.Once
)

// getBlockPattern matches the opening or closing tag of an element that
// starts a new line when rendered.
func getBlockPattern() *regexp.Regexp {
	blockPatternOnce.Do(func() {
		blockPattern = regexp.MustCompile(`(?i)</?(?:p|div|br|hr|h[1-6]|li|ul|ol|dl|dt|dd|tr|table|section|article|header|footer|blockquote|pre)\b`)
	})
	return blockPattern
}

// convertToMarkdown converts HTML string to clean Markdown
func convertToMarkdown(htmlString string) (string, error) {
	converter := md.NewConverter("", true, nil)

	converter.Use(md.Plugin(func(c *md.Converter) []md.Rule {
		return []md.Rule{
			// tidy up excessive whitespace
			{
				Filter: []string{"*"},
				Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
					cleaned := strings.TrimSpace(content)
					result := strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")
					return &result
				},
			},
		}
	}))

	markdown, err := converter.ConvertString(htmlString)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}

	cleaned := strings.TrimSpace(markdown)
	cleaned = strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")
	return cleaned, nil
}
