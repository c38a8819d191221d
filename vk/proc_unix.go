// Copyright 2026 The vkwsi Authors. All rights reserved.

//go:build !windows

package vk

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// libNames returns the candidate names of the Vulkan
// library for the current OS, in preference order.
func libNames() []string {
	switch runtime.GOOS {
	case "android":
		return []string{"libvulkan.so"}
	case "darwin":
		// The loader if installed, MoltenVK otherwise.
		return []string{"libvulkan.1.dylib", "libvulkan.dylib", "libMoltenVK.dylib"}
	default:
		return []string{"libvulkan.so.1"}
	}
}

// open loads the Vulkan library and fetches vkGetInstanceProcAddr.
func (p *proc) open() error {
	var h uintptr
	for _, name := range libNames() {
		var err error
		if h, err = purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL); err == nil && h != 0 {
			break
		}
		h = 0
	}
	if h == 0 {
		return ErrNotInstalled
	}
	f, err := purego.Dlsym(h, "vkGetInstanceProcAddr")
	if err != nil || f == 0 {
		purego.Dlclose(h)
		return ErrNotInstalled
	}
	p.h = h
	p.getInstanceProcAddr = f
	return nil
}

// close unloads the Vulkan library and invalidates all
// symbols.
func (p *proc) close() {
	if p.h != 0 {
		purego.Dlclose(p.h)
	}
	*p = proc{}
}

// call invokes a resolved entry point. Every argument is
// pointer-sized; the result is truncated by the caller as
// needed.
func call(pfn uintptr, args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(pfn, args...)
	return r1
}
