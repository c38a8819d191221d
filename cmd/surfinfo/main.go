// Copyright 2026 The vkwsi Authors. All rights reserved.

// Surfinfo opens a window, creates a Vulkan surface for it
// and reports what the runtime selection decided.
package main

import (
	"flag"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"vkwsi/vk"
	"vkwsi/wsi"
)

type config struct {
	App    string `yaml:"app"`
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func defaultConfig() config {
	return config{
		App:    "surfinfo",
		Title:  "surfinfo",
		Width:  480,
		Height: 360,
	}
}

// loadConfig reads a yaml config file. Fields left unset
// keep their defaults; an empty path means all defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("surfinfo: ")
	cfgPath := flag.String("c", "", "yaml config file")
	flag.Parse()
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	wsi.SetAppName(cfg.App)
	win, err := wsi.NewWindow(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		log.Fatal(err)
	}
	defer win.Close()
	win.Map()
	wsi.Dispatch()

	if err := vk.Load(); err != nil {
		log.Fatal(err)
	}
	defer vk.Unload()
	inst, err := vk.NewInstance(cfg.App)
	if err != nil {
		log.Fatal(err)
	}
	defer inst.Close()

	des := win.Descriptor()
	log.Printf("window system: %v", des.Kind)
	log.Printf("instance extensions cover it: %t", inst.SurfaceSupport(des.Kind))

	sf, err := vk.CreateSurface(inst, des)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("surface: %#x", sf.Handle())
	sf.Destroy()
}
