// Copyright 2026 The vkwsi Authors. All rights reserved.

package vk

import (
	"vkwsi/internal/cocoa"
	"vkwsi/wsi"
)

var surfaceCaps = []surfaceCap{
	{
		kind:  wsi.Cocoa,
		ext:   extMetalSurface,
		extS:  extMetalSurfaceS,
		build: metalSurface,
	},
}

func init() {
	newMetalLayer = func(view uintptr) (uintptr, error) {
		rt, err := cocoa.NewRuntime()
		if err != nil {
			return 0, err
		}
		layer, err := cocoa.MetalLayer(rt, cocoa.ID(view))
		if err != nil {
			return 0, err
		}
		return uintptr(layer), nil
	}
}
