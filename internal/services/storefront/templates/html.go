package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// Localizer formats catalog messages.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T localizes key, falling back to the key itself without a localizer.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key, args...)
}

// htmlWriter accumulates the first write error so markup can be emitted
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// open writes a start tag. attrs alternate name and value; an empty value
// writes a bare boolean attribute. A name without a value fails the render.
func (h *htmlWriter) open(tag string, attrs ...string) {
	if len(attrs)%2 != 0 {
		if h.err == nil {
			h.err = fmt.Errorf("templates: <%s> attribute %q has no value", tag, attrs[len(attrs)-1])
		}
		return
	}
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		b.WriteString(" ")
		b.WriteString(attrs[i])
		if attrs[i+1] == "" && isBooleanAttr(attrs[i]) {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(attrs[i+1]))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	h.raw(b.String())
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

// element writes <tag attrs>escaped text</tag>.
func (h *htmlWriter) element(tag, content string, attrs ...string) {
	h.open(tag, attrs...)
	h.text(content)
	h.close(tag)
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func isBooleanAttr(name string) bool {
	switch name {
	case "disabled", "selected", "checked", "required", "hidden", "defer", "async", "novalidate", "open":
		return true
	default:
		return false
	}
}

// component adapts a writer function into a templ component.
func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		fn(ctx, h)
		return h.err
	})
}

// children returns the wrapped child component and a context without it.
func children(ctx context.Context) (templ.Component, context.Context) {
	child := templ.GetChildren(ctx)
	if child == nil {
		child = templ.NopComponent
	}
	return child, templ.ClearChildren(ctx)
}

func classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return strings.Join(out, " ")
}
