// Copyright 2026 The vkwsi Authors. All rights reserved.

//go:build android || (!windows && !darwin && !linux && !freebsd)

package vk

// No surface family is compiled for this target; every
// CreateSurface call fails with ErrSurfaceInit.
var surfaceCaps []surfaceCap
