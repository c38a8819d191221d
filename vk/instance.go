// Copyright 2026 The vkwsi Authors. All rights reserved.

package vk

import (
	"runtime"
	"unsafe"

	"vkwsi/wsi"
)

// VK_API_VERSION_1_0. Surface creation needs nothing newer.
const apiVersion10 uint32 = 1 << 22

// Instance is an opened Vulkan instance paired with the
// dispatch table used to resolve its extension entry
// points.
type Instance struct {
	h   InstanceHandle
	dld Procs

	// Enabled extensions, indexed by ext* constants.
	// Only tracked for instances created by NewInstance.
	exts [extN]bool

	// Externally owned handles must not be destroyed
	// on Close.
	wrapped bool
}

// Handle returns the VkInstance handle.
func (n *Instance) Handle() InstanceHandle { return n.h }

// WrapInstance wraps an externally created VkInstance
// together with a dispatch table for it. The caller keeps
// ownership of the handle: Close invalidates the wrapper
// without destroying the instance.
func WrapInstance(h InstanceHandle, dld Procs) *Instance {
	return &Instance{h: h, dld: dld, wrapped: true}
}

// NewInstance creates a VkInstance with VK_KHR_surface and
// whichever of the compiled platform surface extensions the
// implementation advertises. The Vulkan library is loaded
// if needed.
//
// An instance is still created when no surface extension is
// advertised; surface creation will then fail with
// ErrSurfaceInit.
func NewInstance(appName string) (*Instance, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	adv, err := instanceExts()
	if err != nil {
		return nil, err
	}
	names, inds := pickInstanceExts(adv, surfaceCaps)

	appInfo := applicationInfo{
		sType:      structureTypeApplicationInfo,
		apiVersion: apiVersion10,
	}
	var nameB []byte
	if appName != "" {
		nameB = cstr(appName)
		appInfo.pApplicationName = ptr(nameB)
	}
	extB := make([][]byte, len(names))
	extP := make([]uintptr, len(names))
	for i := range names {
		extB[i] = cstr(names[i])
		extP[i] = ptr(extB[i])
	}
	info := instanceCreateInfo{
		sType:            structureTypeInstanceCreateInfo,
		pApplicationInfo: uintptr(unsafe.Pointer(&appInfo)),
	}
	if len(extP) > 0 {
		info.enabledExtensionCount = uint32(len(extP))
		info.ppEnabledExtensionNames = uintptr(unsafe.Pointer(&extP[0]))
	}

	pfn := instanceProcAddr(0, "vkCreateInstance")
	if pfn == 0 {
		return nil, ErrNotInstalled
	}
	var h InstanceHandle
	res := result(call(pfn, uintptr(unsafe.Pointer(&info)), 0, uintptr(unsafe.Pointer(&h))))
	runtime.KeepAlive(&appInfo)
	runtime.KeepAlive(nameB)
	runtime.KeepAlive(extB)
	runtime.KeepAlive(extP)
	if err := checkResult(res); err != nil {
		return nil, err
	}
	n := &Instance{h: h, dld: nativeProcs{h}}
	for _, i := range inds {
		n.exts[i] = true
	}
	return n, nil
}

// Close destroys the instance. Surfaces created from it
// must have been destroyed already. Closing an Instance
// that is not open has no effect.
func (n *Instance) Close() {
	if n.h == 0 {
		return
	}
	if !n.wrapped {
		if pfn := instanceProcAddr(n.h, "vkDestroyInstance"); pfn != 0 {
			call(pfn, uintptr(n.h), 0)
		}
	}
	*n = Instance{}
}

// SurfaceSupport reports whether the instance was created
// with the extensions needed to present to k windows. It is
// only meaningful for instances created by NewInstance.
func (n *Instance) SurfaceSupport(k wsi.Kind) bool {
	if !n.exts[extSurface] {
		return false
	}
	for i := range surfaceCaps {
		if surfaceCaps[i].kind == k {
			return n.exts[surfaceCaps[i].ext]
		}
	}
	return false
}

// instanceExts returns a list containing the names of all
// instance extensions advertised by the Vulkan
// implementation.
func instanceExts() (exts []string, err error) {
	pfn := instanceProcAddr(0, "vkEnumerateInstanceExtensionProperties")
	if pfn == 0 {
		return nil, ErrNotInstalled
	}
	var n uint32
	res := result(call(pfn, 0, uintptr(unsafe.Pointer(&n)), 0))
	if err = checkResult(res); err != nil {
		return
	}
	if n == 0 {
		return
	}
	props := make([]extensionProperties, n)
	res = result(call(pfn, 0, uintptr(unsafe.Pointer(&n)), uintptr(unsafe.Pointer(&props[0]))))
	if err = checkResult(res); err != nil {
		return
	}
	exts = make([]string, n)
	for i := range exts {
		exts[i] = props[i].name()
	}
	return
}

// pickInstanceExts selects VK_KHR_surface plus every
// platform surface extension that is both compiled in and
// advertised. It returns nothing when VK_KHR_surface itself
// is missing: no surface can exist then.
func pickInstanceExts(advertised []string, caps []surfaceCap) (names []string, inds []int) {
	has := func(s string) bool {
		for _, a := range advertised {
			if a == s {
				return true
			}
		}
		return false
	}
	if !has(extSurfaceS) {
		return
	}
	names = []string{extSurfaceS}
	inds = []int{extSurface}
	for i := range caps {
		if has(caps[i].extS) {
			names = append(names, caps[i].extS)
			inds = append(inds, caps[i].ext)
		}
	}
	return
}
