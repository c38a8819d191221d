// Copyright 2026 The vkwsi Authors. All rights reserved.

//go:build (!linux || android) && !freebsd && !windows

package wsi

// Window creation is unavailable on these targets.
// On darwin in particular, views belong to the host
// application; it hands them over as Descriptors.
func init() {
	initDummy()
}
