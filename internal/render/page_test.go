package render

import (
	"context"
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCmToInches(t *testing.T) {
	tests := []struct {
		cm   float64
		want float64
	}{
		{2.54, 1.0},
		{0, 0},
		{21.0, 8.2677},
		{29.7, 11.6929},
	}
	for _, tt := range tests {
		got := cmToInches(tt.cm)
		if !almostEqual(got, tt.want, 0.001) {
			t.Errorf("cmToInches(%v) = %v, want ~%v", tt.cm, got, tt.want)
		}
	}
}

func TestPageConfigResolved(t *testing.T) {
	var nilConfig *PageConfig
	if got := nilConfig.resolved(); got != DefaultPageConfig() {
		t.Errorf("nil resolved = %+v, want defaults", got)
	}

	pc := &PageConfig{Landscape: true}
	r := pc.resolved()
	if r.Size != A4 {
		t.Errorf("zero Size resolved to %v, want A4", r.Size)
	}
	if r.Margin != 1.0 {
		t.Errorf("zero Margin resolved to %v, want 1.0", r.Margin)
	}
	if !r.Landscape {
		t.Error("Landscape lost in resolve")
	}
	if r.PrintBackground {
		t.Error("explicit PrintBackground=false overridden")
	}
}

func TestPaperInches(t *testing.T) {
	tests := []struct {
		name          string
		pc            *PageConfig
		width, height float64
		margin        float64
	}{
		{"nil", nil, 8.2677, 11.6929, 0.3937},
		{"letter", &PageConfig{Size: Letter, Margin: 2.54}, 8.5, 11.0, 1.0},
		{"letter landscape", &PageConfig{Size: Letter, Landscape: true}, 11.0, 8.5, 0.3937},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, m := tt.pc.paperInches()
			if !almostEqual(w, tt.width, 0.01) || !almostEqual(h, tt.height, 0.01) || !almostEqual(m, tt.margin, 0.01) {
				t.Errorf("paperInches() = %.4f, %.4f, %.4f; want %.4f, %.4f, %.4f", w, h, m, tt.width, tt.height, tt.margin)
			}
		})
	}
}

func TestPageSizesLookup(t *testing.T) {
	for name, want := range map[string]PageSize{"a4": A4, "letter": Letter, "legal": Legal} {
		if got, ok := PageSizes[name]; !ok || got != want {
			t.Errorf("PageSizes[%q] = %v, %v", name, got, ok)
		}
	}
}

func TestResolveBrowserExplicitPath(t *testing.T) {
	cfg := defaultConfig()
	WithChromePath("/opt/chrome/chrome")(&cfg)
	got, err := resolveBrowser(cfg)
	if err != nil || got != "/opt/chrome/chrome" {
		t.Errorf("resolveBrowser = %q, %v; want explicit path", got, err)
	}
}

func TestClosedRenderer(t *testing.T) {
	r := &Renderer{closed: true}
	if err := r.Close(); err != nil {
		t.Errorf("Close on closed renderer: %v", err)
	}
	if _, err := r.HTML(context.Background(), "<p>x</p>", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("HTML err = %v, want ErrClosed", err)
	}
	if _, err := r.File(context.Background(), "report.html", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("File err = %v, want ErrClosed", err)
	}
}
