// Copyright 2026 The vkwsi Authors. All rights reserved.

// Package vk creates presentable Vulkan surfaces from
// native window handles.
// The window system is selected at runtime from a tagged
// wsi.Descriptor; exactly the platform families compiled
// for the current target can succeed. Platform extension
// entry points are optional and resolved by name on every
// call, so a missing extension degrades into a single,
// well-defined failure instead of a crash.
package vk

import (
	"errors"
)

// InstanceHandle is a VkInstance.
type InstanceHandle uintptr

// SurfaceHandle is a VkSurfaceKHR.
// The zero value is VK_NULL_HANDLE, the universal failure
// sentinel of this layer.
type SurfaceHandle uintptr

// Result is a VkResult value.
type Result int32

// VK_SUCCESS.
const success Result = 0

// Instance extensions used by surface creation.
const (
	extSurface, extSurfaceS               = iota, "VK_KHR_surface"
	extWaylandSurface, extWaylandSurfaceS = iota, "VK_KHR_wayland_surface"
	extWin32Surface, extWin32SurfaceS     = iota, "VK_KHR_win32_surface"
	extXlibSurface, extXlibSurfaceS       = iota, "VK_KHR_xlib_surface"
	extMetalSurface, extMetalSurfaceS     = iota, "VK_EXT_metal_surface"

	extN = iota
)

// Entry point names resolved through Procs.
const (
	procCreateWaylandSurface = "vkCreateWaylandSurfaceKHR"
	procCreateWin32Surface   = "vkCreateWin32SurfaceKHR"
	procCreateXlibSurface    = "vkCreateXlibSurfaceKHR"
	procCreateMetalSurface   = "vkCreateMetalSurfaceEXT"
	procDestroySurface       = "vkDestroySurfaceKHR"
)

// checkResult returns an error derived from a VkResult value.
// If such value does not indicate an error, it returns nil
// instead.
func checkResult(res Result) error {
	if res >= 0 {
		// Not an error: VK_ERROR_* values are all negative.
		return nil
	}
	switch res {
	case -1:
		return errNoHostMemory
	case -2:
		return errNoDeviceMemory
	case -3:
		return errInitFailed
	case -6:
		return errNoLayer
	case -7:
		return errNoExtension
	case -9:
		return errDriverCompat
	case -1000000000:
		return errSurfaceLost
	case -1000000001:
		return errWindowInUse
	}
	return errUnknown
}

// ErrNotInstalled means that the Vulkan library is not
// present in the system.
var ErrNotInstalled = errors.New("vk: missing Vulkan library")

// Common Vulkan errors (VK_ERROR_*).
var (
	errNoHostMemory   = errors.New("vk: out of host memory")
	errNoDeviceMemory = errors.New("vk: out of device memory")
	errInitFailed     = errors.New("vk: initialization failed")
	errNoLayer        = errors.New("vk: layer not present")
	errNoExtension    = errors.New("vk: extension not present")
	errDriverCompat   = errors.New("vk: incompatible driver")
	errSurfaceLost    = errors.New("vk: surface lost")
	errWindowInUse    = errors.New("vk: native window in use")
	errUnknown        = errors.New("vk: unknown error")
)

// Errors detected while selecting and running the platform
// surface builders. They are collapsed into ErrSurfaceInit
// before reaching the caller.
var (
	errCannotPresent = errors.New("vk: presentation not supported")
	errNoEntryPoint  = errors.New("vk: entry point unavailable")
	errNullSurface   = errors.New("vk: native call produced no surface")
)
