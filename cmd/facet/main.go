// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command facet is a minimal glTF viewer: it loads a scene's mesh
// positions and materials onto the GPU and renders them flat-shaded
// into a window, with the pointer driving the clear color.
package main

import (
	_ "embed"
	"flag"
	"image"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/facet3d/facet/app"
	"github.com/facet3d/facet/base/errors"
	"github.com/facet3d/facet/config"
	"github.com/facet3d/facet/gpu"
	"github.com/facet3d/facet/scene"
)

//go:embed shader.wgsl
var materialShader string

//go:embed flat.wgsl
var flatShader string

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	cfgFile := flag.String("config", "facet.toml", "TOML configuration file")
	flag.Parse()

	cfg, err := config.Open(*cfgFile)
	if err != nil {
		slog.Error("facet: configuration", "err", err)
		os.Exit(1)
	}
	if flag.NArg() > 0 {
		cfg.Asset = flag.Arg(0)
	}
	gpu.Debug = cfg.Debug

	if err := run(cfg); err != nil {
		slog.Error("facet: fatal", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if cfg.Asset == "" {
		return errors.New("no asset: pass a glTF path or set asset in the configuration")
	}
	doc, err := scene.Load(cfg.Asset)
	if err != nil {
		return err
	}
	data, err := scene.Ingest(doc)
	if err != nil {
		return err
	}
	slog.Info("facet: scene loaded", "asset", cfg.Asset,
		"vertices", len(data.Vertices), "materials", len(data.Materials),
		"bounds", data.Bounds)

	size := image.Point{cfg.Window.Width, cfg.Window.Height}
	window, sp, err := gpu.GLFWCreateWindow(size, cfg.Window.Title)
	if err != nil {
		return err
	}
	defer gpu.Terminate()
	defer window.Destroy()

	gp, err := gpu.NewGPU("facet", sp)
	if err != nil {
		return err
	}
	sf, err := gpu.NewSurface(gp, sp, size)
	if err != nil {
		gp.Release()
		return err
	}
	sf.SetVsync(cfg.Vsync)
	slog.Info("facet: surface configured", "format", sf.Format.String())

	code := flatShader
	if len(data.Materials) > 0 {
		code = materialShader
	}
	st, err := app.NewState(gp, sf, data, code)
	if err != nil {
		sf.Release()
		gp.Release()
		return err
	}
	st.Frames.ClearColor.R = float64(cfg.ClearColor[0])
	st.Frames.ClearColor.G = float64(cfg.ClearColor[1])
	st.Frames.ClearColor.B = float64(cfg.ClearColor[2])
	st.Frames.ClearColor.A = float64(cfg.ClearColor[3])

	ap := &app.App{}
	ap.Start(st)
	defer ap.Release()

	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		ap.Resize(image.Point{width, height})
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		ap.Input(app.PointerMove{X: x, Y: y})
	})

	// drive redraws at display rate; glfw has no redraw-requested event
	fpsDelay := time.Second / 60
	fpsTicker := time.NewTicker(fpsDelay)
	defer fpsTicker.Stop()
	for range fpsTicker.C {
		glfw.PollEvents()
		if window.ShouldClose() {
			return nil
		}
		if err := ap.RedrawRequested(); err != nil {
			return err
		}
	}
	return nil
}
