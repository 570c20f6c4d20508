package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/burjmall/storefront/internal/services/storefront/platform/i18n"
	"golang.org/x/net/html"
)

func testLocalizer() Localizer {
	return i18n.Printer(i18n.Default())
}

func renderComponent(t *testing.T, c templ.Component) (string, *html.Node) {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := html.Parse(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("parse rendered html: %v", err)
	}
	return buf.String(), doc
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func byID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	}
}

func byClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, c := range strings.Fields(attr(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func TestHTMLWriterEscapes(t *testing.T) {
	t.Parallel()

	c := component(func(_ context.Context, h *htmlWriter) {
		h.element("p", `<b>"x"</b>`, "title", `a"b`, "hidden", "")
	})
	out, _ := renderComponent(t, c)
	if strings.Contains(out, "<b>") {
		t.Fatalf("output %q contains unescaped markup", out)
	}
	if !strings.Contains(out, `title="a&#34;b"`) {
		t.Fatalf("output %q missing escaped attribute", out)
	}
	if !strings.Contains(out, " hidden>") {
		t.Fatalf("output %q missing bare boolean attribute", out)
	}
}

func TestHTMLWriterRejectsDanglingAttribute(t *testing.T) {
	t.Parallel()

	c := component(func(_ context.Context, h *htmlWriter) {
		h.element("a", "home", "href", "/", "class")
		h.element("p", "after")
	})
	var buf bytes.Buffer
	err := c.Render(context.Background(), &buf)
	if err == nil || !strings.Contains(err.Error(), `"class"`) {
		t.Fatalf("Render() error = %v, want dangling class attribute", err)
	}
	if strings.Contains(buf.String(), "<a") {
		t.Fatalf("output %q, want nothing written after the bad tag", buf.String())
	}
}

func TestClasses(t *testing.T) {
	t.Parallel()

	if got := classes("a", " ", "", "b "); got != "a b" {
		t.Fatalf("classes() = %q, want %q", got, "a b")
	}
}

func TestTWithoutLocalizer(t *testing.T) {
	t.Parallel()

	if got := T(nil, "grid.empty"); got != "grid.empty" {
		t.Fatalf("T(nil) = %q, want key", got)
	}
}
