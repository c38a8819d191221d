// Copyright 2026 The vkwsi Authors. All rights reserved.

package vk

import (
	goerrors "errors"
	"log"

	"github.com/pkg/errors"

	"vkwsi/wsi"
)

// ErrSurfaceInit is the error under which every surface
// creation failure is reported. The specific cause is
// logged at the point of detection; callers test for this
// error with errors.Is and need not distinguish further.
var ErrSurfaceInit = goerrors.New("vk: surface initialization failed")

// surfaceCap describes one platform surface family compiled
// into this build. The per-target caps_*.go files define
// surfaceCaps as the set of families the build can face.
type surfaceCap struct {
	kind  wsi.Kind
	ext   int
	extS  string
	build func(*Instance, wsi.Descriptor) (SurfaceHandle, error)
}

// Surface is a VkSurfaceKHR owned by the Instance it was
// created from.
type Surface struct {
	n   *Instance
	h   SurfaceHandle
	des DestroySurfaceProc
}

// CreateSurface creates a presentable surface for the
// window described by win. The descriptor's kind selects
// the platform builder at run time; kinds outside the
// compiled set fail without touching the native layer.
//
// Failures of any sort report ErrSurfaceInit.
func CreateSurface(n *Instance, win wsi.Descriptor) (*Surface, error) {
	return createSurface(n, win, surfaceCaps)
}

func createSurface(n *Instance, win wsi.Descriptor, caps []surfaceCap) (*Surface, error) {
	// Resolve the destroyer up front so a created surface
	// can always be released later.
	destroy, ok := n.dld.SurfaceDestroyer()
	if !ok {
		log.Printf("vk: %s unavailable (%s missing?)", procDestroySurface, extSurfaceS)
		return nil, errors.Wrap(ErrSurfaceInit, extSurfaceS)
	}
	for i := range caps {
		if caps[i].kind != win.Kind {
			continue
		}
		sf, err := caps[i].build(n, win)
		if err != nil {
			log.Printf("vk: %v surface: %v", win.Kind, err)
			return nil, errors.Wrapf(ErrSurfaceInit, "%v window", win.Kind)
		}
		return &Surface{n: n, h: sf, des: destroy}, nil
	}
	log.Printf("vk: %v surface: %v", win.Kind, errCannotPresent)
	return nil, errors.Wrapf(ErrSurfaceInit, "%v window", win.Kind)
}

// Handle returns the VkSurfaceKHR handle.
func (s *Surface) Handle() SurfaceHandle { return s.h }

// Instance returns the instance that owns s.
func (s *Surface) Instance() *Instance { return s.n }

// Destroy destroys the surface. Destroying a Surface that
// was not created, or was destroyed already, has no effect.
func (s *Surface) Destroy() {
	if s.h != 0 && s.des != nil {
		s.des(s.n.h, s.h)
	}
	*s = Surface{}
}
