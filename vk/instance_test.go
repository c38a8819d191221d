// Copyright 2026 The vkwsi Authors. All rights reserved.

package vk

import (
	"testing"

	"vkwsi/wsi"
)

func TestPickInstanceExts(t *testing.T) {
	caps := allCaps()
	for _, c := range [...]struct {
		advertised []string
		wantNames  []string
		wantInds   []int
	}{
		// VK_KHR_surface missing means no surface ever.
		{nil, nil, nil},
		{[]string{extXlibSurfaceS, extWaylandSurfaceS}, nil, nil},
		// VK_KHR_surface alone.
		{
			[]string{extSurfaceS},
			[]string{extSurfaceS},
			[]int{extSurface},
		},
		// Platform extensions follow the capability
		// order, not the advertised order.
		{
			[]string{extWaylandSurfaceS, extXlibSurfaceS, extSurfaceS},
			[]string{extSurfaceS, extXlibSurfaceS, extWaylandSurfaceS},
			[]int{extSurface, extXlibSurface, extWaylandSurface},
		},
		// Unrelated extensions are ignored.
		{
			[]string{"VK_KHR_get_physical_device_properties2", extSurfaceS, extWin32SurfaceS},
			[]string{extSurfaceS, extWin32SurfaceS},
			[]int{extSurface, extWin32Surface},
		},
	} {
		names, inds := pickInstanceExts(c.advertised, caps)
		if !equalStrings(names, c.wantNames) || !equalInts(inds, c.wantInds) {
			t.Fatalf("pickInstanceExts: %v\nhave %v, %v\nwant %v, %v",
				c.advertised, names, inds, c.wantNames, c.wantInds)
		}
	}
}

func TestSurfaceSupport(t *testing.T) {
	var n Instance
	// Without VK_KHR_surface nothing is supported.
	for _, k := range [...]wsi.Kind{wsi.Win32, wsi.Cocoa, wsi.Xlib, wsi.Wayland, wsi.Unknown} {
		if n.SurfaceSupport(k) {
			t.Fatalf("SurfaceSupport: %v without VK_KHR_surface\nhave true\nwant false", k)
		}
	}
	n.exts[extSurface] = true
	if n.SurfaceSupport(wsi.Unknown) {
		t.Fatalf("SurfaceSupport: Unknown\nhave true\nwant false")
	}
}

func TestWrapInstance(t *testing.T) {
	procs := &fakeProcs{}
	n := WrapInstance(0x99, procs)
	if n.Handle() != 0x99 {
		t.Fatalf("n.Handle\nhave %#x\nwant 0x99", n.Handle())
	}
	// Close must not touch the foreign handle.
	n.Close()
	if n.Handle() != 0 {
		t.Fatalf("n.Handle after Close\nhave %#x\nwant 0", n.Handle())
	}
	// Closing again has no effect.
	n.Close()
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
