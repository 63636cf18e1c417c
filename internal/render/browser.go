package render

import (
	"errors"
	"fmt"

	"github.com/go-rod/rod/lib/launcher"
)

// ErrNoBrowser is returned when no Chrome or Chromium executable can be
// found and downloading is disabled.
var ErrNoBrowser = errors.New("render: no Chrome or Chromium executable found")

// LookBrowser reports the path of an installed Chrome or Chromium.
func LookBrowser() (string, bool) {
	return launcher.LookPath()
}

// resolveBrowser returns the browser executable to launch. An explicit path
// wins; otherwise installed browsers are searched, and as a last resort a
// compatible Chromium is downloaded into rod's cache directory.
func resolveBrowser(cfg rendererConfig) (string, error) {
	if cfg.chromePath != "" {
		return cfg.chromePath, nil
	}
	if path, ok := launcher.LookPath(); ok {
		return path, nil
	}
	if !cfg.autoDownload {
		return "", ErrNoBrowser
	}
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("render: downloading browser: %w", err)
	}
	return path, nil
}
