package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch blocks watching the settings file and invokes apply with each
// successfully re-loaded config until stop closes. Editors that replace
// the file on save emit Create/Rename rather than Write, so any event
// naming the path triggers a re-read; unparseable intermediate states
// are skipped.
func Watch(path string, apply func(Config), stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("config watch %q: %w", path, err)
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if ev.Op&fsnotify.Rename != 0 {
				// Re-arm after atomic replace; ignore failure until the
				// new file exists.
				watcher.Add(path)
			}
			cfg, err := Load(path)
			if err != nil {
				continue
			}
			apply(cfg)

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

		case <-stop:
			return nil
		}
	}
}
