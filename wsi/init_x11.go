// Copyright 2026 The vkwsi Authors. All rights reserved.

//go:build (linux && !android) || freebsd

package wsi

import (
	"os"
)

func init() {
	if os.Getenv("DISPLAY") != "" {
		if err := initX11(); err != nil {
			os.Stderr.WriteString(err.Error() + "\n")
		} else {
			return
		}
	}
	initDummy()
}
