// Copyright 2026 The vkwsi Authors. All rights reserved.

//go:build (linux && !android) || freebsd

package wsi

import (
	"errors"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Handle for the shared object.
var hX11 uintptr

// Xlib functions fetched from the shared object.
// Pointer-typed C parameters are declared as uintptr
// because they always refer to foreign memory.
var (
	xOpenDisplay        func(name uintptr) uintptr
	xCloseDisplay       func(dpy uintptr) int32
	xDefaultScreen      func(dpy uintptr) int32
	xRootWindow         func(dpy uintptr, screen int32) uintptr
	xBlackPixel         func(dpy uintptr, screen int32) uintptr
	xWhitePixel         func(dpy uintptr, screen int32) uintptr
	xCreateSimpleWindow func(dpy, parent uintptr, x, y int32, width, height, border uint32, borderPixel, backPixel uintptr) uintptr
	xDestroyWindow      func(dpy, win uintptr) int32
	xMapWindow          func(dpy, win uintptr) int32
	xUnmapWindow        func(dpy, win uintptr) int32
	xStoreName          func(dpy, win uintptr, name string) int32
	xResizeWindow       func(dpy, win uintptr, width, height uint32) int32
	xSelectInput        func(dpy, win uintptr, mask int64) int32
	xInternAtom         func(dpy uintptr, name string, onlyIfExists int32) uintptr
	xSetWMProtocols     func(dpy, win uintptr, protocols unsafe.Pointer, count int32) int32
	xChangeProperty     func(dpy, win, property, typ uintptr, format, mode int32, data unsafe.Pointer, nelements int32) int32
	xPending            func(dpy uintptr) int32
	xNextEvent          func(dpy uintptr, ev unsafe.Pointer) int32
	xFlush              func(dpy uintptr) int32
)

// Common X11 variables.
var (
	dpyX11       uintptr
	screenX11    int32
	rootX11      uintptr
	blackPixX11  uintptr
	whitePixX11  uintptr
	protoAtomX11 uintptr
	delAtomX11   uintptr
)

// Xlib protocol constants used by the backend.
const (
	structureNotifyMask = 1 << 17

	configureNotifyX11 = 22
	clientMessageX11   = 33

	atomWMClass = 67 // XA_WM_CLASS
	atomString  = 31 // XA_STRING

	propModeReplace = 0
)

// openX11 opens the shared library and gets function pointers.
// It is not safe to call any of the wrappers unless this
// function succeeds.
func openX11() error {
	if hX11 != 0 {
		return nil
	}
	h, err := purego.Dlopen("libX11.so.6", purego.RTLD_LAZY|purego.RTLD_LOCAL)
	if err != nil {
		return errors.New("wsi: failed to open libX11")
	}
	syms := []struct {
		name string
		fptr any
	}{
		{"XOpenDisplay", &xOpenDisplay},
		{"XCloseDisplay", &xCloseDisplay},
		{"XDefaultScreen", &xDefaultScreen},
		{"XRootWindow", &xRootWindow},
		{"XBlackPixel", &xBlackPixel},
		{"XWhitePixel", &xWhitePixel},
		{"XCreateSimpleWindow", &xCreateSimpleWindow},
		{"XDestroyWindow", &xDestroyWindow},
		{"XMapWindow", &xMapWindow},
		{"XUnmapWindow", &xUnmapWindow},
		{"XStoreName", &xStoreName},
		{"XResizeWindow", &xResizeWindow},
		{"XSelectInput", &xSelectInput},
		{"XInternAtom", &xInternAtom},
		{"XSetWMProtocols", &xSetWMProtocols},
		{"XChangeProperty", &xChangeProperty},
		{"XPending", &xPending},
		{"XNextEvent", &xNextEvent},
		{"XFlush", &xFlush},
	}
	for i := range syms {
		addr, err := purego.Dlsym(h, syms[i].name)
		if err != nil || addr == 0 {
			purego.Dlclose(h)
			return errors.New("wsi: failed to fetch Xlib symbol " + syms[i].name)
		}
		purego.RegisterFunc(syms[i].fptr, addr)
	}
	hX11 = h
	return nil
}

// closeX11 closes the shared library.
// It is not safe to call any of the wrappers after
// calling this function.
func closeX11() {
	if hX11 != 0 {
		purego.Dlclose(hX11)
		hX11 = 0
	}
}

// initX11 initializes the X11 platform.
func initX11() error {
	if dpyX11 != 0 {
		return nil
	}
	if err := openX11(); err != nil {
		return err
	}

	dpyX11 = xOpenDisplay(0)
	if dpyX11 == 0 {
		return errors.New("wsi: XOpenDisplay failed")
	}
	screenX11 = xDefaultScreen(dpyX11)
	rootX11 = xRootWindow(dpyX11, screenX11)
	blackPixX11 = xBlackPixel(dpyX11, screenX11)
	whitePixX11 = xWhitePixel(dpyX11, screenX11)

	protoAtomX11 = xInternAtom(dpyX11, "WM_PROTOCOLS", 0)
	delAtomX11 = xInternAtom(dpyX11, "WM_DELETE_WINDOW", 0)
	if protoAtomX11 == 0 || delAtomX11 == 0 {
		xCloseDisplay(dpyX11)
		dpyX11 = 0
		return errors.New("wsi: XInternAtom failed")
	}

	newWindow = newWindowX11
	dispatch = dispatchX11
	setAppName = setAppNameX11
	platform = PlatformX11
	return nil
}

// deinitX11 deinitializes the X11 platform.
func deinitX11() {
	if windowCount > 0 {
		for _, w := range createdWindows {
			if w != nil {
				w.Close()
			}
		}
	}
	if dpyX11 != 0 {
		xCloseDisplay(dpyX11)
		dpyX11 = 0
	}
	closeX11()
	initDummy()
}

// windowX11 implements Window.
type windowX11 struct {
	id     uintptr
	width  int
	height int
	title  string
	mapped bool
}

// newWindowX11 creates a new window.
func newWindowX11(width, height int, title string) (Window, error) {
	id := xCreateSimpleWindow(dpyX11, rootX11, 0, 0, uint32(width), uint32(height), 0, blackPixX11, whitePixX11)
	if id == 0 {
		return nil, errors.New("wsi: XCreateSimpleWindow failed")
	}
	xSelectInput(dpyX11, id, structureNotifyMask)
	proto := delAtomX11
	xSetWMProtocols(dpyX11, id, unsafe.Pointer(&proto), 1)
	if title != "" {
		xStoreName(dpyX11, id, title)
	}
	if appName != "" {
		setClassX11(id, appName)
	}
	xFlush(dpyX11)
	return &windowX11{
		id:     id,
		width:  width,
		height: height,
		title:  title,
	}, nil
}

// Map makes the window visible.
func (w *windowX11) Map() error {
	if w.mapped {
		return nil
	}
	xMapWindow(dpyX11, w.id)
	xFlush(dpyX11)
	w.mapped = true
	return nil
}

// Unmap hides the window.
func (w *windowX11) Unmap() error {
	if !w.mapped {
		return nil
	}
	xUnmapWindow(dpyX11, w.id)
	xFlush(dpyX11)
	w.mapped = false
	return nil
}

// Resize resizes the window.
func (w *windowX11) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("wsi: invalid window size")
	}
	xResizeWindow(dpyX11, w.id, uint32(width), uint32(height))
	xFlush(dpyX11)
	w.width = width
	w.height = height
	return nil
}

// SetTitle sets the window's title.
func (w *windowX11) SetTitle(title string) error {
	xStoreName(dpyX11, w.id, title)
	xFlush(dpyX11)
	w.title = title
	return nil
}

// Close closes the window.
func (w *windowX11) Close() {
	if w == nil {
		return
	}
	if w.id != 0 {
		xDestroyWindow(dpyX11, w.id)
		xFlush(dpyX11)
		closeWindow(w)
	}
	*w = windowX11{}
}

// Width returns the window's width.
func (w *windowX11) Width() int { return w.width }

// Height returns the window's height.
func (w *windowX11) Height() int { return w.height }

// Title returns the window's title.
func (w *windowX11) Title() string { return w.title }

// Descriptor classifies the window for surface creation.
func (w *windowX11) Descriptor() Descriptor {
	return XlibDescriptor(dpyX11, w.id)
}

// findWindowX11 returns the created window whose X window
// ID matches id, or nil.
func findWindowX11(id uintptr) *windowX11 {
	for _, w := range createdWindows {
		if w, ok := w.(*windowX11); ok && w.id == id {
			return w
		}
	}
	return nil
}

// xEvent is an XEvent-sized buffer. Xlib defines XEvent as
// a union padded to 24 longs; fields are read at their C
// offsets for the LP64 targets this backend compiles on.
type xEvent [24]uint64

func (e *xEvent) typ() int32 {
	return *(*int32)(unsafe.Pointer(e))
}

func (e *xEvent) uptrAt(off uintptr) uintptr {
	return *(*uintptr)(unsafe.Add(unsafe.Pointer(e), off))
}

func (e *xEvent) int32At(off uintptr) int32 {
	return *(*int32)(unsafe.Add(unsafe.Pointer(e), off))
}

// dispatchX11 dispatches queued events.
func dispatchX11() {
	var ev xEvent
	for xPending(dpyX11) > 0 {
		xNextEvent(dpyX11, unsafe.Pointer(&ev))
		switch ev.typ() {
		case configureNotifyX11:
			// XConfigureEvent: window at +40, width/height at +56/+60.
			win := findWindowX11(ev.uptrAt(40))
			if win == nil {
				continue
			}
			width := int(ev.int32At(56))
			height := int(ev.int32At(60))
			if width == win.width && height == win.height {
				continue
			}
			win.width = width
			win.height = height
			if windowHandler != nil {
				windowHandler.WindowResize(win, width, height)
			}
		case clientMessageX11:
			// XClientMessageEvent has no event field, so its
			// window sits at +32, message_type at +40 and
			// data.l[0] at +56.
			if ev.uptrAt(40) != protoAtomX11 || ev.uptrAt(56) != delAtomX11 {
				continue
			}
			win := findWindowX11(ev.uptrAt(32))
			if win == nil {
				continue
			}
			if windowHandler != nil {
				windowHandler.WindowClose(win)
			}
		}
	}
}

// setClassX11 replaces the WM_CLASS property of the window.
func setClassX11(id uintptr, name string) {
	// Instance and class name, both NUL-terminated.
	b := make([]byte, 0, 2*len(name)+2)
	b = append(b, name...)
	b = append(b, 0)
	b = append(b, name...)
	b = append(b, 0)
	xChangeProperty(dpyX11, id, atomWMClass, atomString, 8, propModeReplace, unsafe.Pointer(&b[0]), int32(len(b)))
}

// setAppNameX11 updates the string used to identify the
// application.
func setAppNameX11(s string) {
	for _, w := range createdWindows {
		if w, ok := w.(*windowX11); ok {
			setClassX11(w.id, s)
		}
	}
	if windowCount > 0 {
		xFlush(dpyX11)
	}
}
