// Copyright 2026 The vkwsi Authors. All rights reserved.

// Package cocoa converts a native view handle into a
// compositor-backed drawing layer. It is the only package
// allowed to perform dynamic Objective-C messaging; the
// untyped sends are confined behind the Runtime interface.
package cocoa

import (
	"errors"
)

// ID is an opaque Objective-C object reference.
// Classes are objects too.
type ID uintptr

// Runtime is the dynamic messaging facility used by the
// layer adapter. It covers exactly the message shapes the
// adapter needs; nothing else belongs here.
type Runtime interface {
	// LookUpClass resolves a class by name.
	LookUpClass(name string) (ID, bool)

	// Send sends a message with no arguments and an
	// object result.
	Send(recv ID, sel string) ID

	// SendBool sends a message with a single BOOL
	// argument and no result.
	SendBool(recv ID, sel string, v bool)

	// SendID sends a message with a single object
	// argument and no result.
	SendID(recv ID, sel string, arg ID)

	// SendFloat sends a message with a single CGFloat
	// argument and no result.
	SendFloat(recv ID, sel string, v float64)

	// Float sends a message with no arguments and a
	// CGFloat result.
	Float(recv ID, sel string) float64
}

// ErrNoLayerClass means that the CAMetalLayer class could
// not be resolved (QuartzCore not loaded).
var ErrNoLayerClass = errors.New("cocoa: CAMetalLayer class unavailable")

// ErrNoLayer means that the layer instantiation message
// returned no object.
var ErrNoLayer = errors.New("cocoa: failed to create CAMetalLayer")

// MetalLayer creates a CAMetalLayer, attaches it to the
// given view and returns it. The view becomes layer-backed.
// The layer's contents scale is set to the main screen's
// backing scale factor so drawables render at native pixel
// density rather than logical points.
//
// The layer pointer is returned, and must be used, instead
// of the view's own layer accessor: querying [NSView layer]
// later, off the main thread, is not safe.
//
// It must be called on the thread that owns the view.
func MetalLayer(rt Runtime, view ID) (ID, error) {
	cls, ok := rt.LookUpClass("CAMetalLayer")
	if !ok {
		return 0, ErrNoLayerClass
	}
	// [CAMetalLayer layer]
	layer := rt.Send(cls, "layer")
	if layer == 0 {
		return 0, ErrNoLayer
	}
	// [view setWantsLayer:YES]
	rt.SendBool(view, "setWantsLayer:", true)
	// [view setLayer:layer]
	rt.SendID(view, "setLayer:", layer)
	// layer.contentsScale = [[NSScreen mainScreen] backingScaleFactor]
	if nsScreen, ok := rt.LookUpClass("NSScreen"); ok {
		if screen := rt.Send(nsScreen, "mainScreen"); screen != 0 {
			rt.SendFloat(layer, "setContentsScale:", rt.Float(screen, "backingScaleFactor"))
		}
	}
	return layer, nil
}
