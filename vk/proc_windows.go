// Copyright 2026 The vkwsi Authors. All rights reserved.

package vk

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// open loads the Vulkan library and fetches vkGetInstanceProcAddr.
func (p *proc) open() error {
	h, err := windows.LoadLibraryEx("vulkan-1.dll", 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return ErrNotInstalled
	}
	f, err := windows.GetProcAddress(h, "vkGetInstanceProcAddr")
	if err != nil || f == 0 {
		windows.FreeLibrary(h)
		return ErrNotInstalled
	}
	p.h = uintptr(h)
	p.getInstanceProcAddr = f
	return nil
}

// close unloads the Vulkan library and invalidates all
// symbols.
func (p *proc) close() {
	if p.h != 0 {
		windows.FreeLibrary(windows.Handle(p.h))
	}
	*p = proc{}
}

// call invokes a resolved entry point. Every argument is
// pointer-sized; the result is truncated by the caller as
// needed.
func call(pfn uintptr, args ...uintptr) uintptr {
	r1, _, _ := syscall.SyscallN(pfn, args...)
	return r1
}
