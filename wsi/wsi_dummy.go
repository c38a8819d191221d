// Copyright 2026 The vkwsi Authors. All rights reserved.

package wsi

import (
	"errors"
)

var errMissing = errors.New("wsi: no window system available")

// initDummy installs the fallback backend: window creation
// fails with errMissing and everything else is a no-op. It
// serves both targets without a backend and sessions where
// the real backend failed to initialize.
func initDummy() {
	newWindow = func(int, int, string) (Window, error) { return nil, errMissing }
	dispatch = func() {}
	setAppName = func(string) {}
	platform = None
}
