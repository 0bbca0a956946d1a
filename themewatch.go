package casement

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchTheme reloads the theme file whenever it changes on disk and hands
// the parsed Theme to apply from inside Update, on the GUI task. The apply
// callback is where the caller re-points its schemes and invalidates the
// affected windows.
//
// This is a development convenience: the watcher runs its own goroutine,
// but parsed themes only ever cross into GUI state through the Update
// drain, keeping the single-task contract intact. Parse errors are logged
// and the previous theme stays active.
func (g *GUI) WatchTheme(path string, apply func(*Theme)) error {
	if g.watchStop != nil {
		return fmt.Errorf("casement: theme watch already active")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch theme: %w", err)
	}
	// Watch the directory: editors replace files on save, which drops the
	// watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch theme: %w", err)
	}

	g.themeCh = make(chan *Theme, 1)
	g.themeApply = apply
	done := make(chan struct{})
	g.watchStop = func() {
		watcher.Close()
		<-done
	}

	target := filepath.Clean(path)
	go func() {
		defer close(done)
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				data, err := os.ReadFile(target)
				if err != nil {
					continue
				}
				theme, err := LoadTheme(data)
				if err != nil {
					fmt.Fprintf(os.Stderr, "[casement] theme reload failed: %v\n", err)
					continue
				}
				// Keep only the newest pending theme.
				select {
				case <-g.themeCh:
				default:
				}
				g.themeCh <- theme
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

// StopWatching tears down an active theme watch. No-op when none is active.
func (g *GUI) StopWatching() {
	if g.watchStop == nil {
		return
	}
	g.watchStop()
	g.watchStop = nil
	g.themeCh = nil
	g.themeApply = nil
}

// drainThemeReloads applies at most one pending theme per tick.
func (g *GUI) drainThemeReloads() {
	if g.themeCh == nil {
		return
	}
	select {
	case theme := <-g.themeCh:
		if g.themeApply != nil {
			g.themeApply(theme)
		}
	default:
	}
}
