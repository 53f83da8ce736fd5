package docs

import (
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	got := strings.Join(Topics(), ",")
	if got != "console,keys,rest" {
		t.Fatalf("Topics() = %q", got)
	}
}

func TestGet(t *testing.T) {
	body, ok := Get(" Keys ")
	if !ok || !strings.Contains(body, "ctrl+p") {
		t.Fatalf("Get(keys) = %v, %q", ok, body)
	}
	if _, ok := Get("missing"); ok {
		t.Fatal("expected unknown topic to fail")
	}
	if _, ok := Get(""); ok {
		t.Fatal("expected empty topic to fail")
	}
}

func TestRender(t *testing.T) {
	body, _ := Get("rest")
	out := Render(body, 80, "notty")
	if out == "" || !strings.Contains(out, "Failures carry") {
		t.Fatalf("unexpected render:\n%s", out)
	}
	if Render("   ", 80, "dark") != "" {
		t.Fatal("blank markdown should render empty")
	}
}

func TestHTML(t *testing.T) {
	body, _ := Get("keys")
	out := string(HTML(body))
	if !strings.Contains(out, "<h1>Keys</h1>") || !strings.Contains(out, "<table>") {
		t.Fatalf("unexpected html:\n%s", out)
	}
	if got := string(HTML("hi <script>alert(1)</script>")); strings.Contains(got, "<script>") {
		t.Fatalf("raw html passed through: %s", got)
	}
	if HTML("  ") != "" {
		t.Fatal("blank markdown should be empty")
	}
}
