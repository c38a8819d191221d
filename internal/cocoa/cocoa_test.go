// Copyright 2026 The vkwsi Authors. All rights reserved.

package cocoa

import (
	"fmt"
	"testing"
)

const (
	clsLayer  ID = 0x100
	clsScreen ID = 0x200
	objLayer  ID = 0x101
	objScreen ID = 0x201
	objView   ID = 0x301
)

// fakeRuntime responds to the messages MetalLayer sends and
// records each one in order.
type fakeRuntime struct {
	classes map[string]ID
	noLayer bool
	scale   float64
	sent    []string
}

func (rt *fakeRuntime) LookUpClass(name string) (ID, bool) {
	cls, ok := rt.classes[name]
	return cls, ok
}

func (rt *fakeRuntime) Send(recv ID, sel string) ID {
	rt.sent = append(rt.sent, fmt.Sprintf("%#x %s", uintptr(recv), sel))
	switch {
	case recv == clsLayer && sel == "layer":
		if rt.noLayer {
			return 0
		}
		return objLayer
	case recv == clsScreen && sel == "mainScreen":
		return objScreen
	}
	return 0
}

func (rt *fakeRuntime) SendBool(recv ID, sel string, v bool) {
	rt.sent = append(rt.sent, fmt.Sprintf("%#x %s%t", uintptr(recv), sel, v))
}

func (rt *fakeRuntime) SendID(recv ID, sel string, arg ID) {
	rt.sent = append(rt.sent, fmt.Sprintf("%#x %s%#x", uintptr(recv), sel, uintptr(arg)))
}

func (rt *fakeRuntime) SendFloat(recv ID, sel string, v float64) {
	rt.sent = append(rt.sent, fmt.Sprintf("%#x %s%g", uintptr(recv), sel, v))
}

func (rt *fakeRuntime) Float(recv ID, sel string) float64 {
	rt.sent = append(rt.sent, fmt.Sprintf("%#x %s", uintptr(recv), sel))
	return rt.scale
}

func TestMetalLayer(t *testing.T) {
	rt := &fakeRuntime{
		classes: map[string]ID{"CAMetalLayer": clsLayer, "NSScreen": clsScreen},
		scale:   2,
	}
	layer, err := MetalLayer(rt, objView)
	if layer != objLayer || err != nil {
		t.Fatalf("MetalLayer\nhave %#x, %v\nwant %#x, nil", uintptr(layer), err, uintptr(objLayer))
	}
	want := []string{
		"0x100 layer",
		"0x301 setWantsLayer:true",
		"0x301 setLayer:0x101",
		"0x200 mainScreen",
		"0x201 backingScaleFactor",
		"0x101 setContentsScale:2",
	}
	if len(rt.sent) != len(want) {
		t.Fatalf("messages sent\nhave %v\nwant %v", rt.sent, want)
	}
	for i := range want {
		if rt.sent[i] != want[i] {
			t.Fatalf("messages sent\nhave %v\nwant %v", rt.sent, want)
		}
	}
}

func TestMetalLayerNoClass(t *testing.T) {
	rt := &fakeRuntime{classes: map[string]ID{"NSScreen": clsScreen}}
	layer, err := MetalLayer(rt, objView)
	if layer != 0 || err != ErrNoLayerClass {
		t.Fatalf("MetalLayer: no CAMetalLayer class\nhave %#x, %v\nwant 0, %v", uintptr(layer), err, ErrNoLayerClass)
	}
	if len(rt.sent) != 0 {
		t.Fatalf("messages sent\nhave %v\nwant none", rt.sent)
	}
}

func TestMetalLayerNoLayer(t *testing.T) {
	rt := &fakeRuntime{
		classes: map[string]ID{"CAMetalLayer": clsLayer},
		noLayer: true,
	}
	layer, err := MetalLayer(rt, objView)
	if layer != 0 || err != ErrNoLayer {
		t.Fatalf("MetalLayer: nil layer\nhave %#x, %v\nwant 0, %v", uintptr(layer), err, ErrNoLayer)
	}
	// The view must be left untouched.
	if len(rt.sent) != 1 {
		t.Fatalf("messages sent\nhave %v\nwant [0x100 layer]", rt.sent)
	}
}

func TestMetalLayerNoScreen(t *testing.T) {
	// A headless session has no main screen; the layer is
	// still usable at the default scale.
	rt := &fakeRuntime{classes: map[string]ID{"CAMetalLayer": clsLayer}}
	layer, err := MetalLayer(rt, objView)
	if layer != objLayer || err != nil {
		t.Fatalf("MetalLayer: no NSScreen\nhave %#x, %v\nwant %#x, nil", uintptr(layer), err, uintptr(objLayer))
	}
	for _, s := range rt.sent {
		if s == "0x101 setContentsScale:0" {
			t.Fatalf("messages sent\nhave %v\nwant no setContentsScale:", rt.sent)
		}
	}
}
