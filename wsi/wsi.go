// Copyright 2026 The vkwsi Authors. All rights reserved.

// Package wsi provides window system integration (WSI)
// for presentation-capable graphics APIs.
// Because a system need not have a window system, WSI
// is conditionally supported. The package classifies
// every window behind a tagged Descriptor so that
// surface creation code never inspects raw handles
// it does not understand.
package wsi

import (
	"errors"
)

// Kind identifies the window system that owns a window's
// native handles.
type Kind int

// Window system kinds.
const (
	// Unknown means that the window cannot be classified.
	// Surface creation always fails for such windows.
	Unknown Kind = iota
	Win32
	Cocoa
	Xlib
	Wayland
)

// String returns the name of the window system.
func (k Kind) String() string {
	switch k {
	case Win32:
		return "win32"
	case Cocoa:
		return "cocoa"
	case Xlib:
		return "xlib"
	case Wayland:
		return "wayland"
	}
	return "unknown"
}

// Descriptor describes a window for surface creation.
// Kind determines which handle fields are meaningful:
//
//	Win32:   RenderSurface is the HWND.
//	Cocoa:   RenderSurface is the NSView pointer.
//	Xlib:    RenderSurface is the X window ID and
//	         Display is the Display pointer.
//	Wayland: RenderSurface is the wl_surface pointer and
//	         Display is the wl_display pointer.
//
// Fields not listed for the active Kind are zero and must
// not be consulted. Use the *Descriptor constructors rather
// than composite literals.
type Descriptor struct {
	Kind          Kind
	RenderSurface uintptr
	Display       uintptr
}

// Win32Descriptor describes a Win32 window.
func Win32Descriptor(hwnd uintptr) Descriptor {
	return Descriptor{Kind: Win32, RenderSurface: hwnd}
}

// CocoaDescriptor describes an Apple window given its
// content NSView.
func CocoaDescriptor(view uintptr) Descriptor {
	return Descriptor{Kind: Cocoa, RenderSurface: view}
}

// XlibDescriptor describes an X11 window given the Xlib
// display connection and the window ID.
func XlibDescriptor(display uintptr, window uintptr) Descriptor {
	return Descriptor{Kind: Xlib, RenderSurface: window, Display: display}
}

// WaylandDescriptor describes a Wayland window given the
// display connection and the compositor surface.
func WaylandDescriptor(display uintptr, surface uintptr) Descriptor {
	return Descriptor{Kind: Wayland, RenderSurface: surface, Display: display}
}

// Window is the interface that defines a drawable window.
// The purpose of a window is to provide a surface into
// which a GPU can draw.
type Window interface {
	// Map makes the window visible.
	Map() error

	// Unmap hides the window.
	Unmap() error

	// Resize resizes the window.
	Resize(width, height int) error

	// SetTitle sets the window's title.
	SetTitle(title string) error

	// Close closes the window.
	Close()

	// Width returns the window's width.
	Width() int

	// Height returns the window's height.
	Height() int

	// Title returns the window's title.
	Title() string

	// Descriptor classifies the window for surface
	// creation.
	Descriptor() Descriptor
}

// NewWindow creates a new window.
func NewWindow(width, height int, title string) (Window, error) {
	if windowCount >= MaxWindows {
		return nil, errors.New("too many windows")
	}
	win, err := newWindow(width, height, title)
	if err != nil {
		return nil, err
	}
	for i := range createdWindows {
		if createdWindows[i] == nil {
			createdWindows[i] = win
			windowCount++
			break
		}
	}
	return win, nil
}

var newWindow func(int, int, string) (Window, error)

// The maximum number of windows that can exist at any
// given time.
const MaxWindows = 16

// Windows returns all created windows.
// The returned value becomes out of date after calls to
// NewWindow and Window.Close.
func Windows() []Window {
	if windowCount == 0 {
		return nil
	}
	wins := make([]Window, 0, windowCount)
	for i := range createdWindows {
		if createdWindows[i] != nil {
			wins = append(wins, createdWindows[i])
		}
	}
	return wins
}

// closeWindow removes win from createdWindows and
// decrements windowCount.
// It must be called by implementations on win.Close.
// Note that win must be comparable.
func closeWindow(win Window) {
	for i := range createdWindows {
		if createdWindows[i] == win {
			createdWindows[i] = nil
			windowCount--
			return
		}
	}
}

var (
	windowCount    int
	createdWindows [MaxWindows]Window
)

// WindowHandler is the interface that defines the methods
// for handling window events.
type WindowHandler interface {
	// WindowClose is called when a window is closed.
	WindowClose(win Window)

	// WindowResize is called when a window is resized.
	WindowResize(win Window, newWidth, newHeight int)
}

// SetWindowHandler sets the global WindowHandler.
func SetWindowHandler(wh WindowHandler) {
	windowHandler = wh
}

var windowHandler WindowHandler

// Dispatch dispatches queued events.
func Dispatch() {
	dispatch()
}

var dispatch func()

// AppName returns the string used to identify the application.
// Its use is platform-specific.
func AppName() string {
	return appName
}

// SetAppName updates the string used to identify the
// application.
func SetAppName(s string) {
	setAppName(s)
	appName = s
}

var (
	appName    string
	setAppName func(string)
)

// Platform identifies an underlying platform used to
// implement wsi.
type Platform int

// Platforms.
const (
	// None means that wsi cannot create windows.
	// Calls to NewWindow will always fail, and calls
	// to Dispatch will do nothing. Surface creation
	// from externally produced Descriptors may still
	// succeed.
	None Platform = iota
	PlatformWin32
	PlatformX11
)

// PlatformInUse identifies the underlying platform which
// wsi is using.
func PlatformInUse() Platform {
	return platform
}

var platform Platform
