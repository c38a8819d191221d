// Copyright 2026 The vkwsi Authors. All rights reserved.

package vk

import (
	"runtime"
	"unsafe"
)

// CreateSurfaceProc is the common shape of the platform
// surface creation entry points (the vkCreate*SurfaceKHR
// family and vkCreateMetalSurfaceEXT share it). info must
// point to the create-info record matching the resolved
// entry point.
type CreateSurfaceProc func(inst InstanceHandle, info unsafe.Pointer) (SurfaceHandle, Result)

// DestroySurfaceProc is the shape of vkDestroySurfaceKHR.
type DestroySurfaceProc func(inst InstanceHandle, sf SurfaceHandle)

// Procs resolves instance-level extension entry points by
// name, returning typed function values. An entry point may
// be absent: not every platform extension is enabled on
// every instance. Resolution happens fresh on each call;
// implementations must not require callers to cache the
// result.
type Procs interface {
	// SurfaceCreator resolves one of the surface
	// creation entry points.
	SurfaceCreator(name string) (CreateSurfaceProc, bool)

	// SurfaceDestroyer resolves vkDestroySurfaceKHR.
	SurfaceDestroyer() (DestroySurfaceProc, bool)
}

// proc is responsible for loading and unloading the Vulkan
// library. Only getInstanceProcAddr is fetched statically;
// everything else goes through it.
type proc struct {
	h                   uintptr
	getInstanceProcAddr uintptr
}

var lib proc

// Load loads the Vulkan library and fetches
// vkGetInstanceProcAddr. Loading an already loaded library
// has no effect. It is not safe for parallel execution.
func Load() error {
	if lib.h != 0 {
		return nil
	}
	return lib.open()
}

// Unload unloads the Vulkan library and invalidates every
// entry point resolved from it, including those held by
// live Instances and Surfaces.
func Unload() {
	lib.close()
}

// result converts a raw call's return word into a Result.
// VkResult is a 32-bit signed enum; the upper half of the
// word is garbage on 64-bit targets.
func result(r uintptr) Result {
	return Result(int32(uint32(r)))
}

// instanceProcAddr resolves an entry point by name through
// vkGetInstanceProcAddr. It returns 0 when the entry point
// is unavailable.
func instanceProcAddr(inst InstanceHandle, name string) uintptr {
	if lib.getInstanceProcAddr == 0 {
		return 0
	}
	b := cstr(name)
	pfn := call(lib.getInstanceProcAddr, uintptr(inst), ptr(b))
	runtime.KeepAlive(b)
	return pfn
}

// nativeProcs implements Procs for an instance of the
// loaded Vulkan library.
type nativeProcs struct {
	inst InstanceHandle
}

// SurfaceCreator resolves one of the surface creation entry
// points.
func (p nativeProcs) SurfaceCreator(name string) (CreateSurfaceProc, bool) {
	pfn := instanceProcAddr(p.inst, name)
	if pfn == 0 {
		return nil, false
	}
	return func(inst InstanceHandle, info unsafe.Pointer) (SurfaceHandle, Result) {
		var sf SurfaceHandle
		res := call(pfn, uintptr(inst), uintptr(info), 0, uintptr(unsafe.Pointer(&sf)))
		return sf, result(res)
	}, true
}

// SurfaceDestroyer resolves vkDestroySurfaceKHR.
func (p nativeProcs) SurfaceDestroyer() (DestroySurfaceProc, bool) {
	pfn := instanceProcAddr(p.inst, procDestroySurface)
	if pfn == 0 {
		return nil, false
	}
	return func(inst InstanceHandle, sf SurfaceHandle) {
		call(pfn, uintptr(inst), uintptr(sf), 0)
	}, true
}
