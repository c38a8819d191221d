// Copyright 2026 The vkwsi Authors. All rights reserved.

package vk

import (
	"unsafe"

	"vkwsi/wsi"
)

// newMetalLayer converts an NSView pointer into a
// CAMetalLayer pointer. The darwin build replaces it during
// initialization; everywhere else a Cocoa descriptor cannot
// present.
var newMetalLayer = func(view uintptr) (uintptr, error) {
	return 0, errCannotPresent
}

// win32Surface creates a surface for an HWND.
func win32Surface(n *Instance, des wsi.Descriptor) (SurfaceHandle, error) {
	create, ok := n.dld.SurfaceCreator(procCreateWin32Surface)
	if !ok {
		return 0, errNoEntryPoint
	}
	info := win32SurfaceCreateInfo{
		sType: structureTypeWin32SurfaceCreateInfo,
		// hinstance may be null; the implementation
		// derives the module from the window itself.
		hwnd: des.RenderSurface,
	}
	sf, res := create(n.h, unsafe.Pointer(&info))
	if err := checkResult(res); err != nil {
		return 0, err
	}
	if sf == 0 {
		return 0, errNullSurface
	}
	return sf, nil
}

// metalSurface creates a surface for an NSView. The view is
// converted into a Metal-backed layer first; a view that
// cannot host such a layer fails before any Vulkan call is
// made.
func metalSurface(n *Instance, des wsi.Descriptor) (SurfaceHandle, error) {
	layer, err := newMetalLayer(des.RenderSurface)
	if err != nil {
		return 0, err
	}
	create, ok := n.dld.SurfaceCreator(procCreateMetalSurface)
	if !ok {
		return 0, errNoEntryPoint
	}
	info := metalSurfaceCreateInfo{
		sType: structureTypeMetalSurfaceCreateInfo,
		layer: layer,
	}
	sf, res := create(n.h, unsafe.Pointer(&info))
	if err := checkResult(res); err != nil {
		return 0, err
	}
	if sf == 0 {
		return 0, errNullSurface
	}
	return sf, nil
}

// xlibSurface creates a surface for an X11 window paired
// with its Display connection.
func xlibSurface(n *Instance, des wsi.Descriptor) (SurfaceHandle, error) {
	create, ok := n.dld.SurfaceCreator(procCreateXlibSurface)
	if !ok {
		return 0, errNoEntryPoint
	}
	info := xlibSurfaceCreateInfo{
		sType:  structureTypeXlibSurfaceCreateInfo,
		dpy:    des.Display,
		window: des.RenderSurface,
	}
	sf, res := create(n.h, unsafe.Pointer(&info))
	if err := checkResult(res); err != nil {
		return 0, err
	}
	if sf == 0 {
		return 0, errNullSurface
	}
	return sf, nil
}

// waylandSurface creates a surface for a wl_surface paired
// with its wl_display connection.
func waylandSurface(n *Instance, des wsi.Descriptor) (SurfaceHandle, error) {
	create, ok := n.dld.SurfaceCreator(procCreateWaylandSurface)
	if !ok {
		return 0, errNoEntryPoint
	}
	info := waylandSurfaceCreateInfo{
		sType:   structureTypeWaylandSurfaceCreateInfo,
		display: des.Display,
		surface: des.RenderSurface,
	}
	sf, res := create(n.h, unsafe.Pointer(&info))
	if err := checkResult(res); err != nil {
		return 0, err
	}
	if sf == 0 {
		return 0, errNullSurface
	}
	return sf, nil
}
