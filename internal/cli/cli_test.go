package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pkgio "github.com/matzehuels/spanlayout/pkg/io"
	"github.com/matzehuels/spanlayout/pkg/solver"
)

const rowDocument = `{
  "layout": [
    {"name": "A", "top": 0, "left": 0,   "width": 100,             "height": 200},
    {"name": "B", "top": 0, "left": 100, "width": "800 expanding", "height": 200},
    {"name": "C", "top": 0, "left": 900, "width": 100,             "height": 200}
  ]
}`

// execute runs the root command with args and returns what it wrote to
// its output stream.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func decodeSolution(t *testing.T, out string) solver.Solution {
	t.Helper()
	var sol solver.Solution
	if err := json.Unmarshal([]byte(out), &sol); err != nil {
		t.Fatalf("decode solution %q: %v", out, err)
	}
	return sol
}

func TestSolveCommand(t *testing.T) {
	t.Run("expressions", func(t *testing.T) {
		out, err := execute(t, "", "solve", "--json", "-e", "x + y = 1", "-e", "x - y = 3")
		if err != nil {
			t.Fatal(err)
		}
		sol := decodeSolution(t, out)
		if x, _ := sol.Value("x"); x != 2 {
			t.Errorf("x = %v, want 2", x)
		}
	})

	t.Run("stdin", func(t *testing.T) {
		out, err := execute(t, "# halves\n2 * a = 7\n", "solve", "--json", "-")
		if err != nil {
			t.Fatal(err)
		}
		if a, _ := decodeSolution(t, out).Value("a"); a != 3.5 {
			t.Errorf("a = %v, want 3.5", a)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := writeFile(t, "system.txt", "x = 1\nx = 2\ny = 3\n")
		out, err := execute(t, "", "solve", "--json", "--no-cache", path)
		if err != nil {
			t.Fatal(err)
		}
		sol := decodeSolution(t, out)
		if !sol.Inconsistencies.Has("x") || sol.Status("y") != solver.Solved {
			t.Errorf("solution = %+v", sol)
		}
	})

	t.Run("table", func(t *testing.T) {
		out, err := execute(t, "", "solve", "-e", "x + y = 1")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, "underdetermined") {
			t.Errorf("table output:\n%s", out)
		}
	})

	t.Run("errors", func(t *testing.T) {
		if _, err := execute(t, "", "solve"); err == nil {
			t.Error("solve without input should fail")
		}
		if _, err := execute(t, "", "solve", "-e", "x = (1"); err == nil {
			t.Error("syntax error should fail")
		}
		if _, err := execute(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
			t.Error("missing file should fail")
		}
	})
}

func TestLayoutCommand(t *testing.T) {
	path := writeFile(t, "page.json", rowDocument)

	out, err := execute(t, "", "layout", path, "--width", "1200")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := pkgio.ReadJSON(strings.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a document: %v\n%s", err, out)
	}
	if got := doc.Layout[1].Width.Value; got != 1000 {
		t.Errorf("B width = %d, want 1000", got)
	}
	if got := doc.Layout[2].Left; got != 1100 {
		t.Errorf("C left = %d, want 1100", got)
	}

	tomlPath := filepath.Join(t.TempDir(), "wide.toml")
	if _, err := execute(t, "", "layout", path, "--width", "500", "-o", tomlPath); err != nil {
		t.Fatal(err)
	}
	saved, err := pkgio.Load(tomlPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := saved.Layout[1].Width.Value; got != 300 {
		t.Errorf("saved B width = %d, want 300", got)
	}
}

func TestGraphCommand(t *testing.T) {
	path := writeFile(t, "system.txt", "x + y = 3\nx - y = 1\n")
	out, err := execute(t, "", "graph", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"graph G {", `"var:x"`, `"var:y"`, "palegreen"} {
		if !strings.Contains(out, want) {
			t.Errorf("dot missing %q", want)
		}
	}

	doc := writeFile(t, "page.json", rowDocument)
	out, err = execute(t, "", "graph", doc, "--width", "1200")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"var:B.width"`) {
		t.Error("document graph does not mention B.width")
	}

	if _, err := execute(t, "", "graph", path, "-f", "gif"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestRenderCommand(t *testing.T) {
	path := writeFile(t, "page.json", rowDocument)
	outBase := filepath.Join(t.TempDir(), "out", "page")

	if _, err := execute(t, "", "render", path, "--width", "1200", "-f", "svg,json", "-o", outBase); err != nil {
		t.Fatal(err)
	}
	svg, err := os.ReadFile(outBase + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), `viewBox="0 0 1200 200"`) {
		t.Errorf("svg has the wrong view box:\n%s", svg)
	}
	if _, err := os.Stat(outBase + ".json"); err != nil {
		t.Error("json artifact missing")
	}
}

func TestRenderDoesNotOverwriteInput(t *testing.T) {
	path := writeFile(t, "page.json", rowDocument)
	if _, err := execute(t, "", "render", path, "-f", "json"); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != rowDocument {
		t.Error("render overwrote its input document")
	}
	if _, err := os.Stat(strings.TrimSuffix(path, ".json") + ".resized.json"); err != nil {
		t.Error("renamed json artifact missing")
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "", "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion does not mention the binary")
	}
	if _, err := execute(t, "", "completion", "tcsh"); err == nil {
		t.Error("unsupported shell should fail")
	}
}

func TestCachePathCommand(t *testing.T) {
	out, err := execute(t, "", "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), appName) {
		t.Errorf("cache path = %q", out)
	}
}
