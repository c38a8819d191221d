// Copyright 2026 The vkwsi Authors. All rights reserved.

package cocoa

import (
	"errors"

	"github.com/ebitengine/purego"
)

// objcRuntime implements Runtime on libobjc. Each message
// shape is a separate re-typing of objc_msgSend, as the
// ABI demands.
type objcRuntime struct {
	getClass func(name string) uintptr
	selUid   func(name string) uintptr
	sendID   func(recv, sel uintptr) uintptr
	sendBool func(recv, sel uintptr, v bool)
	sendPtr  func(recv, sel, arg uintptr)
	sendF64  func(recv, sel uintptr, v float64)
	retF64   func(recv, sel uintptr) float64
}

var loadedRuntime *objcRuntime

// NewRuntime loads libobjc and returns the messaging
// facility. The library is loaded at most once.
func NewRuntime() (Runtime, error) {
	if loadedRuntime != nil {
		return loadedRuntime, nil
	}
	lib, err := purego.Dlopen("/usr/lib/libobjc.A.dylib", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, errors.New("cocoa: failed to open libobjc")
	}
	sym := func(name string) (uintptr, error) {
		addr, err := purego.Dlsym(lib, name)
		if err != nil || addr == 0 {
			return 0, errors.New("cocoa: failed to fetch symbol " + name)
		}
		return addr, nil
	}
	getClass, err := sym("objc_getClass")
	if err != nil {
		return nil, err
	}
	selUid, err := sym("sel_registerName")
	if err != nil {
		return nil, err
	}
	msgSend, err := sym("objc_msgSend")
	if err != nil {
		return nil, err
	}
	rt := &objcRuntime{}
	purego.RegisterFunc(&rt.getClass, getClass)
	purego.RegisterFunc(&rt.selUid, selUid)
	purego.RegisterFunc(&rt.sendID, msgSend)
	purego.RegisterFunc(&rt.sendBool, msgSend)
	purego.RegisterFunc(&rt.sendPtr, msgSend)
	purego.RegisterFunc(&rt.sendF64, msgSend)
	purego.RegisterFunc(&rt.retF64, msgSend)
	loadedRuntime = rt
	return rt, nil
}

// LookUpClass resolves a class by name.
func (rt *objcRuntime) LookUpClass(name string) (ID, bool) {
	cls := rt.getClass(name)
	return ID(cls), cls != 0
}

// Send sends a message with no arguments and an object result.
func (rt *objcRuntime) Send(recv ID, sel string) ID {
	return ID(rt.sendID(uintptr(recv), rt.selUid(sel)))
}

// SendBool sends a message with a single BOOL argument.
func (rt *objcRuntime) SendBool(recv ID, sel string, v bool) {
	rt.sendBool(uintptr(recv), rt.selUid(sel), v)
}

// SendID sends a message with a single object argument.
func (rt *objcRuntime) SendID(recv ID, sel string, arg ID) {
	rt.sendPtr(uintptr(recv), rt.selUid(sel), uintptr(arg))
}

// SendFloat sends a message with a single CGFloat argument.
func (rt *objcRuntime) SendFloat(recv ID, sel string, v float64) {
	rt.sendF64(uintptr(recv), rt.selUid(sel), v)
}

// Float sends a message with no arguments and a CGFloat result.
func (rt *objcRuntime) Float(recv ID, sel string) float64 {
	return rt.retF64(uintptr(recv), rt.selUid(sel))
}
