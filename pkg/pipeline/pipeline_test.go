package pipeline

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/spanlayout/pkg/cache"
	"github.com/matzehuels/spanlayout/pkg/errors"
	pkgio "github.com/matzehuels/spanlayout/pkg/io"
	"github.com/matzehuels/spanlayout/pkg/layout"
)

// memCache is an in-memory cache that counts writes.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

var _ cache.Cache = (*memCache)(nil)

func rowDocument() *pkgio.Document {
	fixed := func(v int) pkgio.Size { return pkgio.Size{Value: v} }
	return &pkgio.Document{
		Layout: []pkgio.ItemSpec{
			{Name: "A", Width: fixed(100), Height: fixed(200)},
			{Name: "B", Left: 100, Width: pkgio.Size{Value: 800, Policy: layout.Expanding}, Height: fixed(200)},
			{Name: "C", Left: 900, Width: fixed(100), Height: fixed(200)},
		},
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"dot", true},
		{"SVG", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestOptionsSetDefaults(t *testing.T) {
	var opts Options
	opts.SetDefaults()
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v", opts.Scale)
	}
	if opts.Logger == nil {
		t.Error("Logger not set")
	}

	logger := opts.Logger
	opts.Formats = []string{FormatJSON}
	opts.SetDefaults()
	if opts.Formats[0] != FormatJSON || opts.Logger != logger {
		t.Error("SetDefaults overwrote explicit values")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"ok", Options{Document: rowDocument()}, ""},
		{"no document", Options{}, errors.ErrCodeInvalidInput},
		{"negative width", Options{Document: rowDocument(), Width: -1}, errors.ErrCodeInvalidSize},
		{"bad format", Options{Document: rowDocument(), Formats: []string{"gif"}}, errors.ErrCodeInvalidInput},
		{"bad scale", Options{Document: rowDocument(), Scale: -2}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRunnerSolve(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	r := NewRunner(c, nil, nil)

	first, err := r.Solve(ctx, Options{Constraints: []string{"x + y = 1", "x - y = 3"}})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if first.CacheHit {
		t.Error("first solve should miss")
	}
	if v, _ := first.Solution.Value("x"); v != 2 {
		t.Errorf("x = %v, want 2", v)
	}
	if first.Kind != "linear" {
		t.Errorf("Kind = %q, want linear", first.Kind)
	}

	second, err := r.Solve(ctx, Options{Constraints: []string{"x+y=1", "# note", "x-y=3"}})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !second.CacheHit {
		t.Error("reformatted system should hit the cache")
	}
	if second.SystemHash != first.SystemHash {
		t.Error("system hashes differ")
	}
	if v, _ := second.Solution.Value("y"); v != -1 {
		t.Errorf("cached y = %v, want -1", v)
	}
	if second.Kind != "linear" {
		t.Errorf("cached Kind = %q, want linear", second.Kind)
	}

	refreshed, err := r.Solve(ctx, Options{Constraints: []string{"x+y=1", "x-y=3"}, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheHit {
		t.Error("Refresh should bypass the cache")
	}
}

func TestRunnerSolveKind(t *testing.T) {
	tests := []struct {
		name        string
		constraints []string
		want        string
	}{
		{"linear", []string{"x + y = 1"}, "linear"},
		{"single term", []string{"2 * x = 0"}, "monomial"},
		{"product", []string{"x * y = 6", "y = 2"}, "polynomial"},
		{"divides by unknown", []string{"1 / x = 2"}, "non-linear"},
	}
	r := NewRunner(nil, nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Solve(context.Background(), Options{Constraints: tt.constraints})
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			if res.Kind != tt.want {
				t.Errorf("Kind = %q, want %q", res.Kind, tt.want)
			}
		})
	}
}

func TestRunnerSolveErrors(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if _, err := r.Solve(context.Background(), Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty constraints: %v", err)
	}
	if _, err := r.Solve(context.Background(), Options{Constraints: []string{"x = (1"}}); !errors.Is(err, errors.ErrCodeSyntax) {
		t.Errorf("syntax error: %v", err)
	}
}

func TestRunnerLayout(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	r := NewRunner(c, nil, nil)

	res, err := r.Layout(ctx, Options{Document: rowDocument(), Width: 1200})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if res.CacheHit {
		t.Error("first layout should miss")
	}
	if res.Scene.Width != 1200 || res.Scene.Height != 200 {
		t.Errorf("scene = %dx%d, want 1200x200", res.Scene.Width, res.Scene.Height)
	}
	want := map[string][2]int{"A": {0, 100}, "B": {100, 1000}, "C": {1100, 100}}
	for _, it := range res.Scene.Items {
		if got := [2]int{it.Left, it.Width}; got != want[it.Name] {
			t.Errorf("%s left,width = %v, want %v", it.Name, got, want[it.Name])
		}
	}

	again, err := r.Layout(ctx, Options{Document: rowDocument(), Width: 1200})
	if err != nil {
		t.Fatal(err)
	}
	if !again.CacheHit {
		t.Error("second layout should hit")
	}
	if again.Scene.Items[1].Width != 1000 {
		t.Errorf("cached B width = %d", again.Scene.Items[1].Width)
	}
	if again.Scene.Items[1].WidthPolicy != layout.Expanding {
		t.Error("cached scene lost the width policy")
	}

	other, err := r.Layout(ctx, Options{Document: rowDocument(), Width: 500})
	if err != nil {
		t.Fatal(err)
	}
	if other.CacheHit {
		t.Error("a different size must not hit")
	}
}

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	r := NewRunner(c, nil, nil)
	opts := Options{Document: rowDocument(), Width: 500, Formats: []string{FormatSVG, FormatJSON}}

	res, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.CacheInfo.LayoutHit || res.CacheInfo.RenderHit {
		t.Error("first run should miss")
	}
	if len(res.Artifacts[FormatSVG]) == 0 {
		t.Error("missing svg artifact")
	}

	var out struct {
		Width     int `json:"width"`
		Requested struct {
			Width int `json:"width"`
		} `json:"requested"`
		Items []struct {
			Name  string `json:"name"`
			Width int    `json:"width"`
		} `json:"items"`
	}
	if err := json.Unmarshal(res.Artifacts[FormatJSON], &out); err != nil {
		t.Fatalf("decode json artifact: %v", err)
	}
	if out.Width != 500 || out.Requested.Width != 500 {
		t.Errorf("width = %d, requested = %d", out.Width, out.Requested.Width)
	}
	if out.Items[1].Name != "B" || out.Items[1].Width != 300 {
		t.Errorf("B = %+v, want width 300", out.Items[1])
	}

	again, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !again.CacheInfo.LayoutHit || !again.CacheInfo.RenderHit {
		t.Errorf("second run cache info = %+v", again.CacheInfo)
	}
	if string(again.Artifacts[FormatSVG]) != string(res.Artifacts[FormatSVG]) {
		t.Error("cached svg differs")
	}
}

func TestRunnerExecuteInvalid(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if _, err := r.Execute(context.Background(), Options{}); err == nil {
		t.Error("expected error without a document")
	}
	empty := &pkgio.Document{}
	if _, err := r.Execute(context.Background(), Options{Document: empty}); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("empty document: %v", err)
	}
}
