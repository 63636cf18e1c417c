package pdfdump

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Provider opens PDF documents. Implementations wrap a PDF parsing library.
type Provider interface {
	// Name returns the name the provider is registered under.
	Name() string
	// Open parses the document at path.
	Open(path string) (Document, error)
}

// Document is an opened PDF file.
type Document interface {
	// NumPages returns the number of pages in the document.
	NumPages() int
	// Page returns the page at index i (0-indexed).
	Page(i int) (Page, error)
	// Close releases the underlying file.
	Close() error
}

// Page is a single page of a [Document].
type Page interface {
	// Text returns the plain text of the page. It may be empty.
	Text() (string, error)
}

// Factory initializes a provider. A factory that returns an error makes
// its provider unavailable for the run.
type Factory func() (Provider, error)

// DefaultCandidates lists the provider names tried by [Select] and
// [Dumper.Run], in order of preference.
var DefaultCandidates = []string{"ledongthuc", "rscpdf"}

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]Factory)
)

// Register makes a provider factory available under name. It is meant to be
// called from the init function of a provider package. Register panics if
// name is empty, f is nil, or name is already registered.
func Register(name string, f Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	if name == "" {
		panic("pdfdump: Register with empty name")
	}
	if f == nil {
		panic("pdfdump: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("pdfdump: Register called twice for provider " + name)
	}
	factories[name] = f
}

// unregister removes the factory registered under name. For tests.
func unregister(name string) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	delete(factories, name)
}

// Registered returns the sorted names of the registered providers.
func Registered() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the first available provider among candidates, tried in
// order. If candidates is empty, [DefaultCandidates] is used. It returns
// [ErrProviderUnavailable] if no candidate can be initialized.
func Select(candidates ...string) (Provider, error) {
	return selectProvider(discardLogger(), candidates)
}

func selectProvider(logger *slog.Logger, candidates []string) (Provider, error) {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	for _, name := range candidates {
		factoriesMu.RLock()
		f, ok := factories[name]
		factoriesMu.RUnlock()
		if !ok {
			logger.Debug("provider not registered", "provider", name)
			continue
		}
		p, err := initProvider(f)
		if err != nil {
			logger.Debug("provider failed to initialize", "provider", name, "error", err)
			continue
		}
		logger.Debug("provider selected", "provider", name)
		return p, nil
	}
	return nil, ErrProviderUnavailable
}

// initProvider runs f, treating a panic or a nil provider as a failure.
func initProvider(f Factory) (p Provider, err error) {
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	p, err = f()
	if err == nil && p == nil {
		err = errors.New("factory returned no provider")
	}
	return p, err
}
