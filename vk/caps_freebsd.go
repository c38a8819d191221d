// Copyright 2026 The vkwsi Authors. All rights reserved.

package vk

import "vkwsi/wsi"

var surfaceCaps = []surfaceCap{
	{
		kind:  wsi.Xlib,
		ext:   extXlibSurface,
		extS:  extXlibSurfaceS,
		build: xlibSurface,
	},
}
