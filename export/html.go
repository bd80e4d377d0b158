package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/lattice/model"
)

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func textCell(a atom.Atom, text string) *html.Node {
	n := element(a)
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}

// indent appends a newline and depth levels of two-space indentation.
func indent(parent *html.Node, depth int) {
	parent.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: "\n" + strings.Repeat("  ", depth),
	})
}

// buildHTMLTable lays the frame out as
//
//	<table border="1" class="dataframe">
//	  <thead><tr><th></th><th>0</th>...</tr></thead>
//	  <tbody><tr><th>0</th><td>..</td>...</tr>...</tbody>
//	</table>
func buildHTMLTable(frame *model.Frame) *html.Node {
	table := element(atom.Table,
		html.Attribute{Key: "border", Val: "1"},
		html.Attribute{Key: "class", Val: "dataframe"})

	addRow := func(section *html.Node, header string, cells []string, cellAtom atom.Atom, attrs ...html.Attribute) {
		tr := element(atom.Tr, attrs...)
		indent(tr, 3)
		tr.AppendChild(textCell(atom.Th, header))
		for _, c := range cells {
			indent(tr, 3)
			tr.AppendChild(textCell(cellAtom, c))
		}
		indent(tr, 2)

		indent(section, 2)
		section.AppendChild(tr)
	}

	thead := element(atom.Thead)
	addRow(thead, "", frame.Columns, atom.Th, html.Attribute{Key: "style", Val: "text-align: right;"})
	indent(thead, 1)

	tbody := element(atom.Tbody)
	for i, rec := range frame.Records {
		addRow(tbody, strconv.Itoa(i), rec, atom.Td)
	}
	indent(tbody, 1)

	indent(table, 1)
	table.AppendChild(thead)
	indent(table, 1)
	table.AppendChild(tbody)
	indent(table, 0)

	return table
}

// exportHTML renders the frame as an HTML table fragment.
func exportHTML(frame *model.Frame, w io.Writer) error {
	if err := html.Render(w, buildHTMLTable(frame)); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
