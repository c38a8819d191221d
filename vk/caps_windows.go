// Copyright 2026 The vkwsi Authors. All rights reserved.

package vk

import "vkwsi/wsi"

var surfaceCaps = []surfaceCap{
	{
		kind:  wsi.Win32,
		ext:   extWin32Surface,
		extS:  extWin32SurfaceS,
		build: win32Surface,
	},
}
