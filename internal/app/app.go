package app

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/philipparndt/goroof/internal/config"
	"github.com/philipparndt/goroof/internal/measurement"
	"github.com/philipparndt/goroof/pkg/watcher"
)

const windowTitle = "GoRoof - Roof Take-off"

// App is the desktop front end. It edits one image at a time; opening
// another image starts a fresh session.
type App struct {
	window   fyne.Window
	cfg      *config.Config
	settings ViewSettings
	session  *measurement.Session
	trace    *TraceCanvas
	panel    *sidePanel
	Image    ImageState
}

// Run opens the main window and blocks until it is closed. imagePath may
// be empty, in which case the user opens an image from the panel.
func Run(imagePath string, cfg *config.Config) error {
	settings, err := newViewSettings(cfg)
	if err != nil {
		return err
	}

	fa := fyneapp.NewWithID("com.github.philipparndt.goroof")
	w := fa.NewWindow(windowTitle)

	a := &App{
		window:   w,
		cfg:      cfg,
		settings: settings,
	}
	a.session = a.newSession()
	a.trace = NewTraceCanvas(a.session, settings)
	a.trace.SetOnResult(a.handleResult)

	fw, err := watcher.New(watcher.DefaultDebounce)
	if err != nil {
		log.Printf("File watching disabled: %v", err)
	} else {
		a.Image.watcher = fw
		defer fw.Close()
	}

	w.SetContent(container.NewBorder(nil, nil, nil, a.buildPanel(), a.trace))

	if imagePath != "" {
		if err := a.openImage(imagePath); err != nil {
			return err
		}
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
	return nil
}

func (a *App) newSession() *measurement.Session {
	opts := append(a.cfg.SessionOptions(), measurement.WithLogger(log.Default()))
	return measurement.NewSession(opts...)
}

// openImage loads an image and starts a fresh session on it
func (a *App) openImage(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	img, err := LoadImage(absPath)
	if err != nil {
		return err
	}

	if fw := a.Image.watcher; fw != nil && a.Image.path != "" {
		if err := fw.Unwatch(a.Image.path); err != nil {
			log.Printf("Failed to stop watching %s: %v", a.Image.path, err)
		}
	}
	a.Image.path = absPath
	a.Image.image = img

	a.session = a.newSession()
	a.trace.SetSession(a.session)
	a.trace.SetBackground(img)
	a.resetPanel()

	b := img.Bounds()
	a.window.SetTitle(fmt.Sprintf("%s - %s", windowTitle, filepath.Base(absPath)))
	a.setStatus(fmt.Sprintf("Loaded %s (%dx%d)", filepath.Base(absPath), b.Dx(), b.Dy()))

	if fw := a.Image.watcher; fw != nil {
		if err := fw.Watch(absPath, a.reloadImage); err != nil {
			log.Printf("Failed to watch %s: %v", absPath, err)
		}
	}
	return nil
}

// reloadImage runs on the watcher goroutine when the image file changes.
// The traced geometry is kept; only the background is replaced.
func (a *App) reloadImage(path string) {
	img, err := LoadImage(path)
	fyne.Do(func() {
		if path != a.Image.path {
			return
		}
		if err != nil {
			log.Printf("Reload failed: %v", err)
			a.setStatus(fmt.Sprintf("Reload failed: %v", err))
			return
		}
		a.Image.image = img
		a.trace.SetBackground(img)
		a.setStatus(fmt.Sprintf("Reloaded %s", filepath.Base(path)))
	})
}
