// Copyright 2026 The vkwsi Authors. All rights reserved.

//go:build linux && !android

package vk

import "vkwsi/wsi"

// A single linux build may face either an X or a Wayland
// session, so both families are compiled and the descriptor
// tag picks between them at run time.
var surfaceCaps = []surfaceCap{
	{
		kind:  wsi.Xlib,
		ext:   extXlibSurface,
		extS:  extXlibSurfaceS,
		build: xlibSurface,
	},
	{
		kind:  wsi.Wayland,
		ext:   extWaylandSurface,
		extS:  extWaylandSurfaceS,
		build: waylandSurface,
	},
}
