// Copyright 2026 The vkwsi Authors. All rights reserved.

package vk

import (
	"unsafe"
)

// structureType is a VkStructureType value.
type structureType uint32

// Structure tags of the records passed to native entry
// points. Values come from the Vulkan registry and must
// not change.
const (
	structureTypeApplicationInfo          structureType = 0
	structureTypeInstanceCreateInfo       structureType = 1
	structureTypeXlibSurfaceCreateInfo    structureType = 1000004000
	structureTypeWaylandSurfaceCreateInfo structureType = 1000006000
	structureTypeWin32SurfaceCreateInfo   structureType = 1000009000
	structureTypeMetalSurfaceCreateInfo   structureType = 1000217000
)

// The records below mirror the C layouts bit for bit on
// LP64/LLP64 targets. Handles are stored as uintptr since
// they always refer to foreign memory; pNext and flags are
// kept zero. They are stack-allocated per call and never
// outlive it.

// win32SurfaceCreateInfo matches VkWin32SurfaceCreateInfoKHR.
type win32SurfaceCreateInfo struct {
	sType     structureType
	pNext     uintptr
	flags     uint32
	hinstance uintptr
	hwnd      uintptr
}

// metalSurfaceCreateInfo matches VkMetalSurfaceCreateInfoEXT.
type metalSurfaceCreateInfo struct {
	sType structureType
	pNext uintptr
	flags uint32
	layer uintptr
}

// xlibSurfaceCreateInfo matches VkXlibSurfaceCreateInfoKHR.
type xlibSurfaceCreateInfo struct {
	sType  structureType
	pNext  uintptr
	flags  uint32
	dpy    uintptr
	window uintptr
}

// waylandSurfaceCreateInfo matches VkWaylandSurfaceCreateInfoKHR.
type waylandSurfaceCreateInfo struct {
	sType   structureType
	pNext   uintptr
	flags   uint32
	display uintptr
	surface uintptr
}

// applicationInfo matches VkApplicationInfo.
type applicationInfo struct {
	sType              structureType
	pNext              uintptr
	pApplicationName   uintptr
	applicationVersion uint32
	pEngineName        uintptr
	engineVersion      uint32
	apiVersion         uint32
}

// instanceCreateInfo matches VkInstanceCreateInfo.
type instanceCreateInfo struct {
	sType                   structureType
	pNext                   uintptr
	flags                   uint32
	pApplicationInfo        uintptr
	enabledLayerCount       uint32
	ppEnabledLayerNames     uintptr
	enabledExtensionCount   uint32
	ppEnabledExtensionNames uintptr
}

// extensionProperties matches VkExtensionProperties.
type extensionProperties struct {
	extensionName [256]byte
	specVersion   uint32
}

// cstr returns s as a NUL-terminated byte slice.
func cstr(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// name returns the extension name as a Go string.
func (p *extensionProperties) name() string {
	for i := range p.extensionName {
		if p.extensionName[i] == 0 {
			return string(p.extensionName[:i])
		}
	}
	return string(p.extensionName[:])
}

// ptr returns the address of the first byte of b.
func ptr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}
