package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"bank-interior/core"
	sceneio "bank-interior/io"
	"bank-interior/renderer"
	"bank-interior/scene"
	"bank-interior/viewer"
)

func buildScene(opts *options) (*scene.Scene, error) {
	s, err := opts.cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building branch: %w", err)
	}
	triangles := 0
	s.Root.Traverse(func(n *scene.Node) {
		if n.IsDrawable() {
			triangles += n.Geometry.Mesh().TriangleCount()
		}
	})
	opts.logger.Info("branch built",
		"nodes", s.Root.Count(),
		"triangles", triangles,
		"lights", len(s.Lights),
		"kinds", len(s.Census()),
	)
	return s, nil
}

func runView(opts *options, view string) error {
	s, err := buildScene(opts)
	if err != nil {
		return err
	}

	window, err := core.NewWindow(opts.cfg.Window.WindowConfig)
	if err != nil {
		return err
	}
	defer window.Destroy()

	engine, err := renderer.NewRenderEngine(opts.cfg.Renderer, opts.logger)
	if err != nil {
		return err
	}
	defer engine.Destroy()

	ratio := opts.cfg.Window.PixelRatio
	if ratio <= 0 {
		ratio = window.PixelRatio()
	}
	engine.SetPixelRatio(ratio)

	width, height := window.GetSize()
	sc, err := viewer.NewSceneContext(s, engine, width, height, opts.cfg.Camera, opts.cfg.Controls, opts.logger)
	if err != nil {
		return err
	}
	if view != "" {
		if err := sc.SetView(view); err != nil {
			return err
		}
	}

	loop := viewer.NewLoop(sc, opts.logger)
	loop.Input = viewer.NewInput(window)

	keys := viewer.DefaultKeyBindings()
	window.SetKeyCallback(func(key int) {
		if key == core.KeyEscape {
			window.SetShouldClose(true)
			return
		}
		keys.Handle(sc, key)
	})
	window.SetScrollCallback(func(_, yoff float64) {
		loop.Input.AddScroll(yoff)
	})
	window.SetResizeCallback(sc.Resize)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := loop.Run(ctx, window); err != nil && !errors.Is(err, context.Canceled) {
		opts.logger.Error("render failed", "frames", loop.Frames(), "err", err)
		return err
	}
	st := engine.Stats()
	opts.logger.Info("viewer closed", "frames", loop.Frames(), "objects", st.Objects, "triangles", st.Triangles)
	return nil
}

func runExport(opts *options, path string) error {
	s, err := buildScene(opts)
	if err != nil {
		return err
	}
	if err := sceneio.ExportGLTF(s, path); err != nil {
		return err
	}
	opts.logger.Info("exported", "path", path)
	return nil
}

func runCensus(opts *options) error {
	s, err := buildScene(opts)
	if err != nil {
		return err
	}
	printCensus(os.Stdout, s)
	return nil
}
