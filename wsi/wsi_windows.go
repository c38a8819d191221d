// Copyright 2026 The vkwsi Authors. All rights reserved.

package wsi

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32            = windows.NewLazySystemDLL("user32.dll")
	pRegisterClassExW = user32.NewProc("RegisterClassExW")
	pUnregisterClassW = user32.NewProc("UnregisterClassW")
	pCreateWindowExW  = user32.NewProc("CreateWindowExW")
	pDestroyWindow    = user32.NewProc("DestroyWindow")
	pDefWindowProcW   = user32.NewProc("DefWindowProcW")
	pShowWindow       = user32.NewProc("ShowWindow")
	pSetWindowTextW   = user32.NewProc("SetWindowTextW")
	pSetWindowPos     = user32.NewProc("SetWindowPos")
	pPeekMessageW     = user32.NewProc("PeekMessageW")
	pTranslateMessage = user32.NewProc("TranslateMessage")
	pDispatchMessageW = user32.NewProc("DispatchMessageW")
	pLoadCursorW      = user32.NewProc("LoadCursorW")
)

const (
	csHRedraw = 0x0002
	csVRedraw = 0x0001

	wsOverlappedWindow = 0x00cf0000

	cwUseDefault = 0x80000000

	swHide   = 0
	swNormal = 1

	pmRemove = 0x0001

	wmDestroy = 0x0002
	wmSize    = 0x0005
	wmClose   = 0x0010

	idcArrow = 32512

	swpNoMove     = 0x0002
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

type wndClassEx struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     windows.Handle
	hIcon         uintptr
	hCursor       uintptr
	hbrBackground uintptr
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       uintptr
}

type winMsg struct {
	hwnd    uintptr
	message uint32
	wparam  uintptr
	lparam  uintptr
	time    uint32
	pt      [2]int32
}

// Handle to self.
var hinst windows.Handle

// Class name.
var className *uint16

// moduleHandleWin32 obtains the handle of the calling
// process's executable image.
func moduleHandleWin32() (windows.Handle, error) {
	var h windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &h); err != nil {
		return 0, err
	}
	return h, nil
}

// initWin32 initializes the Win32 platform.
func initWin32() error {
	var err error
	if hinst, err = moduleHandleWin32(); err != nil {
		return errors.New("wsi: failed to obtain Win32 instance handle")
	}
	className, _ = windows.UTF16PtrFromString("wsi")
	cursor, _, _ := pLoadCursorW.Call(0, uintptr(idcArrow))
	wc := wndClassEx{
		cbSize:        uint32(unsafe.Sizeof(wndClassEx{})),
		style:         csHRedraw | csVRedraw,
		lpfnWndProc:   windows.NewCallback(wndProcWin32),
		hInstance:     hinst,
		hCursor:       cursor,
		lpszClassName: className,
	}
	atom, _, _ := pRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		className = nil
		hinst = 0
		return errors.New("wsi: failed to register Win32 class")
	}
	newWindow = newWindowWin32
	dispatch = dispatchWin32
	setAppName = setAppNameWin32
	platform = PlatformWin32
	return nil
}

// deinitWin32 deinitializes the Win32 platform.
func deinitWin32() {
	if windowCount > 0 {
		for _, w := range createdWindows {
			if w != nil {
				w.Close()
			}
		}
	}
	if hinst != 0 {
		if className != nil {
			pUnregisterClassW.Call(uintptr(unsafe.Pointer(className)), uintptr(hinst))
			className = nil
		}
		hinst = 0
	}
	initDummy()
}

// windowWin32 implements Window.
type windowWin32 struct {
	hwnd   uintptr
	width  int
	height int
	title  string
	mapped bool
}

// newWindowWin32 creates a new window.
func newWindowWin32(width, height int, title string) (Window, error) {
	ptitle, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return nil, errors.New("wsi: invalid window title")
	}
	hwnd, _, _ := pCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(ptitle)),
		uintptr(wsOverlappedWindow),
		uintptr(cwUseDefault), uintptr(cwUseDefault),
		uintptr(width), uintptr(height),
		0, 0, uintptr(hinst), 0)
	if hwnd == 0 {
		return nil, errors.New("wsi: failed to create Win32 window")
	}
	return &windowWin32{
		hwnd:   hwnd,
		width:  width,
		height: height,
		title:  title,
	}, nil
}

// Map makes the window visible.
func (w *windowWin32) Map() error {
	if w.mapped {
		return nil
	}
	pShowWindow.Call(w.hwnd, uintptr(swNormal))
	w.mapped = true
	return nil
}

// Unmap hides the window.
func (w *windowWin32) Unmap() error {
	if !w.mapped {
		return nil
	}
	pShowWindow.Call(w.hwnd, uintptr(swHide))
	w.mapped = false
	return nil
}

// Resize resizes the window.
func (w *windowWin32) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("wsi: invalid window size")
	}
	pSetWindowPos.Call(w.hwnd, 0, 0, 0, uintptr(width), uintptr(height),
		uintptr(swpNoMove|swpNoZOrder|swpNoActivate))
	w.width = width
	w.height = height
	return nil
}

// SetTitle sets the window's title.
func (w *windowWin32) SetTitle(title string) error {
	ptitle, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return errors.New("wsi: invalid window title")
	}
	pSetWindowTextW.Call(w.hwnd, uintptr(unsafe.Pointer(ptitle)))
	w.title = title
	return nil
}

// Close closes the window.
func (w *windowWin32) Close() {
	if w == nil {
		return
	}
	if w.hwnd != 0 {
		pDestroyWindow.Call(w.hwnd)
		closeWindow(w)
	}
	*w = windowWin32{}
}

// Width returns the window's width.
func (w *windowWin32) Width() int { return w.width }

// Height returns the window's height.
func (w *windowWin32) Height() int { return w.height }

// Title returns the window's title.
func (w *windowWin32) Title() string { return w.title }

// Descriptor classifies the window for surface creation.
func (w *windowWin32) Descriptor() Descriptor {
	return Win32Descriptor(w.hwnd)
}

// findWindowWin32 returns the created window whose HWND
// matches hwnd, or nil.
func findWindowWin32(hwnd uintptr) *windowWin32 {
	for _, w := range createdWindows {
		if w, ok := w.(*windowWin32); ok && w.hwnd == hwnd {
			return w
		}
	}
	return nil
}

// dispatchWin32 dispatches queued events.
func dispatchWin32() {
	var msg winMsg
	for {
		ret, _, _ := pPeekMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0, uintptr(pmRemove))
		if ret == 0 {
			break
		}
		pTranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
		pDispatchMessageW.Call(uintptr(unsafe.Pointer(&msg)))
	}
}

func wndProcWin32(hwnd uintptr, msg uint32, wprm, lprm uintptr) uintptr {
	switch msg {
	case wmClose:
		// The application decides whether to destroy
		// the window.
		if win := findWindowWin32(hwnd); win != nil && windowHandler != nil {
			windowHandler.WindowClose(win)
		}
		return 0
	case wmSize:
		win := findWindowWin32(hwnd)
		if win == nil {
			break
		}
		width := int(uint32(lprm) & 0xffff)
		height := int(uint32(lprm) >> 16)
		if width == win.width && height == win.height {
			break
		}
		win.width = width
		win.height = height
		if windowHandler != nil {
			windowHandler.WindowResize(win, width, height)
		}
		return 0
	}
	ret, _, _ := pDefWindowProcW.Call(hwnd, uintptr(msg), wprm, lprm)
	return ret
}

// setAppNameWin32 updates the string used to identify the
// application. Win32 derives identity from the executable,
// so there is nothing to apply here.
func setAppNameWin32(string) {}
