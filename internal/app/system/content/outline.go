package content

import (
	"strings"

	"github.com/yuin/goldmark/ast"
)

var shellLangs = map[string]bool{
	"sh":      true,
	"bash":    true,
	"shell":   true,
	"console": true,
}

// outline collects level-2 headings and shell examples in document order.
func outline(doc ast.Node, src []byte) ([]Heading, []Example) {
	var (
		headings []Heading
		examples []Example
		section  string
	)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			if n.Level != 2 {
				return ast.WalkSkipChildren, nil
			}
			section = nodeText(n, src)
			id := ""
			if v, ok := n.AttributeString("id"); ok {
				if b, ok := v.([]byte); ok {
					id = string(b)
				}
			}
			headings = append(headings, Heading{ID: id, Title: section})
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			lang := string(n.Language(src))
			if !shellLangs[lang] {
				return ast.WalkSkipChildren, nil
			}
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				cmd := commandLine(string(seg.Value(src)))
				if cmd == "" {
					continue
				}
				examples = append(examples, Example{Text: cmd, Lang: lang, Section: section})
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return headings, examples
}

// commandLine trims a code line to the command a reader would type.
// Comment lines and blank lines yield "".
func commandLine(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "$ ")
	if line == "" || strings.HasPrefix(line, "#") {
		return ""
	}
	return line
}

func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(src))
		case *ast.String:
			b.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
