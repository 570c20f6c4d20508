package templates

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

func renderDocument(t *testing.T, page PageView) (string, *html.Node) {
	t.Helper()
	content := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p id="content">hello</p>`)
		return err
	})
	var buf bytes.Buffer
	ctx := templ.WithChildren(context.Background(), content)
	if err := Document(page).Render(ctx, &buf); err != nil {
		t.Fatalf("render document: %v", err)
	}
	doc, err := html.Parse(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return buf.String(), doc
}

func TestComposePageTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "BurjMall"},
		{in: "Login", want: "Login | BurjMall"},
		{in: "Login | BurjMall", want: "Login | BurjMall"},
		{in: "BurjMall", want: "BurjMall"},
	}
	for _, tc := range tests {
		if got := ComposePageTitle(tc.in); got != tc.want {
			t.Fatalf("ComposePageTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDocumentSignedOut(t *testing.T) {
	t.Parallel()

	out, doc := renderDocument(t, PageView{Loc: testLocalizer(), Category: "coffee-machines"})
	if !strings.HasPrefix(out, "<!doctype html>") {
		t.Fatalf("document does not start with doctype")
	}
	main := findNode(doc, byID("main"))
	if main == nil || findNode(main, byID("content")) == nil {
		t.Fatal("expected children inside main")
	}
	if findNode(doc, byID(ModalTargetID)) == nil {
		t.Fatal("expected modal target")
	}
	if title := findNode(doc, byTag("title")); title == nil || textOf(title) != "BurjMall - Online Shopping" {
		t.Fatalf("unexpected document title")
	}
	if !strings.Contains(out, htmxScript) {
		t.Fatal("expected htmx script")
	}

	links := findAll(doc, byClass("auth-link"))
	if len(links) != 2 {
		t.Fatalf("auth links = %d, want 2", len(links))
	}
	if got := attr(links[0], "hx-target"); got != "#modal" {
		t.Fatalf("login hx-target = %q, want %q", got, "#modal")
	}
	if findNode(doc, byClass("greeting")) != nil {
		t.Fatal("signed-out header should not greet")
	}

	selected := findNode(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "option" && hasAttr(n, "selected")
	})
	if selected == nil || attr(selected, "value") != "coffee-machines" {
		t.Fatal("expected the active category selected in search")
	}
}

func TestDocumentSignedIn(t *testing.T) {
	t.Parallel()

	_, doc := renderDocument(t, PageView{
		Loc:    testLocalizer(),
		Header: HeaderView{SignedIn: true, FirstName: "Ada"},
		Notice: &NoticeView{Kind: "success", Message: "Logged in successfully."},
	})
	greeting := findNode(doc, byClass("greeting"))
	if greeting == nil || textOf(greeting) != "Hi, Ada" {
		t.Fatal("expected greeting for signed-in shopper")
	}
	if findNode(doc, byClass("auth-link")) != nil {
		t.Fatal("signed-in header should not offer login links")
	}
	form := findNode(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "form" && attr(n, "action") == "/logout"
	})
	if form == nil || attr(form, "method") != "post" {
		t.Fatal("expected logout form posting to /logout")
	}
	toast := findNode(doc, byClass("toast-success"))
	if toast == nil || textOf(toast) != "Logged in successfully." {
		t.Fatal("expected success toast")
	}
}

func TestToastEmpty(t *testing.T) {
	t.Parallel()

	_, doc := renderComponent(t, Toast(&NoticeView{Message: "  "}))
	region := findNode(doc, byID("toasts"))
	if region == nil {
		t.Fatal("expected toast region")
	}
	if findNode(region, byClass("toast")) != nil {
		t.Fatal("blank notice should render no toast")
	}
}

func TestMegaMenuPanels(t *testing.T) {
	t.Parallel()

	_, doc := renderComponent(t, NavBar(testLocalizer()))
	items := findAll(doc, byClass("mega-menu-item"))
	if len(items) != 9 {
		t.Fatalf("menu items = %d, want 9", len(items))
	}
	special := findAll(doc, byClass("is-special"))
	if len(special) != 1 || findNode(special[0], byClass("badge-new")) == nil {
		t.Fatal("expected one special item with a NEW badge")
	}
	if len(findAll(doc, byClass("has-panel"))) == 0 {
		t.Fatal("expected items with panels")
	}
}
