// Package export converts rendered block trees into host formats: standalone
// HTML, and PDF through a headless-browser collaborator. The renderer itself
// knows nothing about these conversions.
package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// WriteHTML writes a standalone HTML document for the rendered tree. Styles
// are emitted inline since every BlockStyle is already concrete; the output
// needs no stylesheet and renders correctly before any webfont loads.
func WriteHTML(doc *types.RenderedDocument, w io.Writer) error {
	if doc == nil {
		return fmt.Errorf("nil rendered document")
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(doc.TemplateID)))
	sb.WriteString("</head>\n")

	pageStyle := styleAttr(doc.Page)
	sb.WriteString(fmt.Sprintf(`<body class="resume-page" data-template=%q style=%q>`+"\n",
		doc.TemplateID, pageStyle))

	for _, b := range doc.Blocks {
		writeBlock(&sb, b, 1)
	}

	sb.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// HTMLString renders the tree to an HTML string.
func HTMLString(doc *types.RenderedDocument) (string, error) {
	var sb strings.Builder
	if err := WriteHTML(doc, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeBlock(sb *strings.Builder, b types.Block, depth int) {
	indent := strings.Repeat("  ", depth)
	tag, class := tagFor(b.Kind)

	attrs := fmt.Sprintf(`class=%q`, class)
	if b.Role != "" {
		attrs += fmt.Sprintf(` data-role=%q`, b.Role)
	}
	if st := styleAttr(b.Style); st != "" {
		attrs += fmt.Sprintf(` style=%q`, st)
	}
	if b.Kind == types.BlockLink && b.Href != "" {
		attrs += fmt.Sprintf(` href=%q`, b.Href)
	}

	if len(b.Children) == 0 && b.Text == "" && b.Kind != types.BlockRule && b.Kind != types.BlockBar {
		return
	}

	sb.WriteString(indent + "<" + tag + " " + attrs + ">")
	if b.Style.Marker != "" {
		sb.WriteString(html.EscapeString(b.Style.Marker) + " ")
	}
	if b.Text != "" {
		sb.WriteString(html.EscapeString(b.Text))
	}
	if len(b.Children) > 0 {
		sb.WriteString("\n")
		for _, child := range b.Children {
			writeBlock(sb, child, depth+1)
		}
		sb.WriteString(indent)
	}
	sb.WriteString("</" + tag + ">\n")
}

func tagFor(kind types.BlockKind) (tag, class string) {
	switch kind {
	case types.BlockHeader:
		return "header", "resume-header"
	case types.BlockSection:
		return "section", "resume-section"
	case types.BlockHeading:
		return "h2", "section-heading"
	case types.BlockRule:
		return "hr", "rule"
	case types.BlockBar:
		return "div", "accent-bar"
	case types.BlockEntry:
		return "article", "entry"
	case types.BlockRow:
		return "div", "row"
	case types.BlockColumn:
		return "div", "col"
	case types.BlockList:
		return "ul", "points"
	case types.BlockListItem:
		return "li", "point"
	case types.BlockLink:
		return "a", "link"
	case types.BlockTag:
		return "span", "tag"
	case types.BlockMarker:
		return "span", "marker"
	default:
		return "div", "text"
	}
}

// styleAttr flattens a BlockStyle into an inline CSS declaration list.
func styleAttr(st types.BlockStyle) string {
	var parts []string
	add := func(prop, val string) {
		parts = append(parts, prop+":"+val)
	}

	if st.Color != "" {
		add("color", st.Color)
	}
	if st.Background != "" {
		add("background-color", st.Background)
	}
	if st.BorderColor != "" {
		add("border-color", st.BorderColor)
	}
	if st.FontFamily != "" {
		add("font-family", st.FontFamily)
	}
	if st.FontSize > 0 {
		add("font-size", fmt.Sprintf("%gpt", st.FontSize))
	}
	if st.FontWeight > 0 {
		add("font-weight", fmt.Sprintf("%d", st.FontWeight))
	}
	if st.Italic {
		add("font-style", "italic")
	}
	if st.Underline {
		add("text-decoration", "underline")
	}
	if st.Align != "" {
		add("text-align", st.Align)
	}
	if st.Indent > 0 {
		add("padding-left", fmt.Sprintf("%dpt", st.Indent))
	}
	if st.LineHeight > 0 {
		add("line-height", fmt.Sprintf("%g", st.LineHeight))
	}
	if st.Wavy {
		add("border-style", "wavy")
	}
	if st.MarginX > 0 || st.MarginY > 0 {
		add("padding", fmt.Sprintf("%dpt %dpt", st.MarginY, st.MarginX))
	}
	if st.Spacing > 0 && st.Spacing < 100 {
		add("width", fmt.Sprintf("%d%%", st.Spacing))
	}

	return strings.Join(parts, ";")
}
