package pdfdump

import (
	"io"
	"log/slog"
	"os"
)

// DefaultPath is the document dumped when no path is configured.
const DefaultPath = `C:\Users\mishr\OneDrive\Desktop\CA Automator.pdf`

// dumperConfig holds internal configuration for a Dumper.
type dumperConfig struct {
	path       string
	out        io.Writer
	candidates []string
	logger     *slog.Logger
}

func defaultConfig() dumperConfig {
	return dumperConfig{
		path:       DefaultPath,
		out:        os.Stdout,
		candidates: DefaultCandidates,
		logger:     discardLogger(),
	}
}

// Option configures a [Dumper].
type Option func(*dumperConfig)

// WithPath sets the document to dump. Defaults to [DefaultPath].
func WithPath(path string) Option {
	return func(c *dumperConfig) {
		c.path = path
	}
}

// WithOutput sets the writer that receives the dump. Defaults to
// standard output.
func WithOutput(w io.Writer) Option {
	return func(c *dumperConfig) {
		c.out = w
	}
}

// WithCandidates overrides the ordered list of provider names to try.
// An empty list keeps [DefaultCandidates].
func WithCandidates(names ...string) Option {
	return func(c *dumperConfig) {
		if len(names) > 0 {
			c.candidates = append([]string(nil), names...)
		}
	}
}

// WithLogger sets the logger used for diagnostics. Diagnostics never go to
// the dump output. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *dumperConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
