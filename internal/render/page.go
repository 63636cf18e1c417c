package render

// PageSize represents paper dimensions in centimeters.
type PageSize struct {
	Width  float64
	Height float64
}

// Standard paper sizes.
var (
	A4     = PageSize{Width: 21.0, Height: 29.7}
	Letter = PageSize{Width: 21.59, Height: 27.94}
	Legal  = PageSize{Width: 21.59, Height: 35.56}
)

// PageSizes maps lowercase paper names to sizes.
var PageSizes = map[string]PageSize{
	"a4":     A4,
	"letter": Letter,
	"legal":  Legal,
}

// PageConfig controls the rendered PDF layout.
//
// A nil PageConfig or zero-value fields use A4 paper, portrait orientation
// and 1 cm margins.
type PageConfig struct {
	Size      PageSize
	Landscape bool
	// Margin is applied on all four sides, in centimeters.
	Margin          float64
	PrintBackground bool
}

// DefaultPageConfig returns the layout used for a nil PageConfig.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Size:            A4,
		Margin:          1.0,
		PrintBackground: true,
	}
}

// resolved returns a PageConfig with zero values replaced by defaults.
func (p *PageConfig) resolved() PageConfig {
	d := DefaultPageConfig()
	if p == nil {
		return d
	}
	r := *p
	if r.Size == (PageSize{}) {
		r.Size = d.Size
	}
	if r.Margin <= 0 {
		r.Margin = d.Margin
	}
	return r
}

func cmToInches(cm float64) float64 {
	return cm / 2.54
}

// paperInches returns width, height and margin in inches, accounting for
// orientation.
func (p *PageConfig) paperInches() (width, height, margin float64) {
	r := p.resolved()
	w, h := cmToInches(r.Size.Width), cmToInches(r.Size.Height)
	if r.Landscape {
		w, h = h, w
	}
	return w, h, cmToInches(r.Margin)
}
