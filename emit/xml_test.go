package emit

import (
	"strings"
	"testing"

	"github.com/tlang-format/tdoc/go-tdoc/parse"
)

// render runs a full parse over in and concatenates the string output
// of em.
func render(t *testing.T, em parse.Emitter, in string, opts ...parse.Option) string {
	t.Helper()
	p := parse.New(opts...)
	vals, err := p.Parse(strings.Split(in, "\n"), em)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var b strings.Builder
	for _, v := range vals {
		if s, ok := v.(string); ok {
			b.WriteString(s)
		}
	}
	return b.String()
}

const xmlHeader = "<?xml version=\"1.0\"?>\n"

func TestXMLBasic(t *testing.T) {
	got := render(t, NewXML(), "doc\n\titem: hello")
	want := xmlHeader + "<doc><item>hello</item></doc>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestXMLSelfClosing(t *testing.T) {
	got := render(t, NewXML(), "node")
	want := xmlHeader + "<node />"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestXMLAttributes(t *testing.T) {
	got := render(t, NewXML(), `node msg="a<b"`)
	want := xmlHeader + `<node msg="a&lt;b" />`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestXMLNamespaces(t *testing.T) {
	got := render(t, NewXML(), "svg:rect x=10")
	want := xmlHeader + `<svg:rect x="10" />`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestXMLProcessingInstruction(t *testing.T) {
	got := render(t, NewXML(), "pi:stylesheet href=style.css")
	want := xmlHeader + `<?stylesheet href="style.css"?>` + "\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestXMLContentEscaping(t *testing.T) {
	got := render(t, NewXML(), "doc: a < b & c")
	want := xmlHeader + "<doc>a &lt; b &amp; c</doc>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestXMLMultiLineContent(t *testing.T) {
	got := render(t, NewXML(), "doc: one\n\ttwo")
	want := xmlHeader + "<doc>one\ntwo</doc>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestXMLComments(t *testing.T) {
	in := "#hi\nnode"
	got := render(t, NewXML(), in, parse.WithComments(true))
	want := xmlHeader + "<!-- hi -->\n<node />"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = render(t, NewXML(), in)
	want = xmlHeader + "<node />"
	if got != want {
		t.Errorf("without comments: got %q, want %q", got, want)
	}
}
