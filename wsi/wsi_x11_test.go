// Copyright 2026 The vkwsi Authors. All rights reserved.

//go:build (linux && !android) || freebsd

package wsi

import (
	"testing"
	"unsafe"
)

const (
	testProtoAtom uintptr = 0x12c
	testDelAtom   uintptr = 0x12d
	testWinX11    uintptr = 0x777
)

func putUptrX11(e *xEvent, off uintptr, v uintptr) {
	*(*uintptr)(unsafe.Add(unsafe.Pointer(e), off)) = v
}

func putInt32X11(e *xEvent, off uintptr, v int32) {
	*(*int32)(unsafe.Add(unsafe.Pointer(e), off)) = v
}

// deleteEventX11 lays out a WM_DELETE_WINDOW ClientMessage
// the way Xlib delivers it on LP64: window at +32,
// message_type at +40, format at +48, data.l[0] at +56.
func deleteEventX11(win uintptr) xEvent {
	var ev xEvent
	putInt32X11(&ev, 0, clientMessageX11)
	putUptrX11(&ev, 32, win)
	putUptrX11(&ev, 40, testProtoAtom)
	putInt32X11(&ev, 48, 32)
	putUptrX11(&ev, 56, testDelAtom)
	return ev
}

// configureEventX11 lays out an LP64 ConfigureNotify:
// window at +40, width at +56, height at +60.
func configureEventX11(win uintptr, width, height int32) xEvent {
	var ev xEvent
	putInt32X11(&ev, 0, configureNotifyX11)
	putUptrX11(&ev, 40, win)
	putInt32X11(&ev, 56, width)
	putInt32X11(&ev, 60, height)
	return ev
}

// queueEventsX11 replaces the event wrappers so dispatchX11
// drains a canned queue instead of a live connection.
func queueEventsX11(t *testing.T, evs []xEvent) {
	prevPending, prevNext := xPending, xNextEvent
	prevProto, prevDel := protoAtomX11, delAtomX11
	t.Cleanup(func() {
		xPending, xNextEvent = prevPending, prevNext
		protoAtomX11, delAtomX11 = prevProto, prevDel
	})
	protoAtomX11, delAtomX11 = testProtoAtom, testDelAtom
	xPending = func(uintptr) int32 { return int32(len(evs)) }
	xNextEvent = func(_ uintptr, p unsafe.Pointer) int32 {
		*(*xEvent)(p) = evs[0]
		evs = evs[1:]
		return 0
	}
}

// registerWindowX11 places a window in the registry for the
// duration of a test.
func registerWindowX11(t *testing.T, win *windowX11) {
	for i := range createdWindows {
		if createdWindows[i] == nil {
			createdWindows[i] = win
			windowCount++
			t.Cleanup(func() {
				createdWindows[i] = nil
				windowCount--
				windowHandler = nil
			})
			return
		}
	}
	t.Fatal("registerWindowX11: registry full")
}

type recorderX11 struct {
	closes  *[]Window
	resizes *[][3]int
}

func (r recorderX11) WindowClose(win Window) {
	*r.closes = append(*r.closes, win)
}

func (r recorderX11) WindowResize(win Window, newWidth, newHeight int) {
	*r.resizes = append(*r.resizes, [3]int{int(win.(*windowX11).id), newWidth, newHeight})
}

func TestDispatchX11WindowClose(t *testing.T) {
	win := &windowX11{id: testWinX11, width: 480, height: 360}
	registerWindowX11(t, win)
	var closes []Window
	var resizes [][3]int
	SetWindowHandler(recorderX11{&closes, &resizes})
	// A ClientMessage for an unrelated protocol must be
	// ignored; the WM_PROTOCOLS delete must be delivered.
	other := deleteEventX11(testWinX11)
	putUptrX11(&other, 40, testProtoAtom+1)
	queueEventsX11(t, []xEvent{other, deleteEventX11(testWinX11)})
	dispatchX11()
	if len(closes) != 1 || closes[0] != Window(win) {
		t.Fatalf("WindowClose calls\nhave %d\nwant 1", len(closes))
	}
	if len(resizes) != 0 {
		t.Fatalf("WindowResize calls\nhave %d\nwant 0", len(resizes))
	}
}

func TestDispatchX11WindowCloseUnknownWindow(t *testing.T) {
	win := &windowX11{id: testWinX11, width: 480, height: 360}
	registerWindowX11(t, win)
	var closes []Window
	var resizes [][3]int
	SetWindowHandler(recorderX11{&closes, &resizes})
	queueEventsX11(t, []xEvent{deleteEventX11(testWinX11 + 1)})
	dispatchX11()
	if len(closes) != 0 {
		t.Fatalf("WindowClose calls\nhave %d\nwant 0", len(closes))
	}
}

func TestDispatchX11WindowResize(t *testing.T) {
	win := &windowX11{id: testWinX11, width: 480, height: 360}
	registerWindowX11(t, win)
	var closes []Window
	var resizes [][3]int
	SetWindowHandler(recorderX11{&closes, &resizes})
	queueEventsX11(t, []xEvent{
		configureEventX11(testWinX11, 600, 300),
		// Same size again is not reported.
		configureEventX11(testWinX11, 600, 300),
	})
	dispatchX11()
	if win.width != 600 || win.height != 300 {
		t.Fatalf("win.width, win.height\nhave %d, %d\nwant 600, 300", win.width, win.height)
	}
	want := [3]int{int(testWinX11), 600, 300}
	if len(resizes) != 1 || resizes[0] != want {
		t.Fatalf("WindowResize calls\nhave %v\nwant [%v]", resizes, want)
	}
}
