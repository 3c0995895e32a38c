package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it is written or replaced
// The parent directory is watched so editors that rename over the file are seen
type Watcher struct {
	path string
	w    *fsnotify.Watcher
	cfgC chan *Config
	erC  chan error
	done chan struct{}
}

// Watch starts watching path; close the Watcher to stop
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	cw := &Watcher{
		path: abs,
		w:    w,
		cfgC: make(chan *Config, 1),
		erC:  make(chan error, 1),
		done: make(chan struct{}),
	}
	go cw.loop()
	return cw, nil
}

func (cw *Watcher) loop() {
	defer close(cw.done)
	for {
		select {
		case ev, ok := <-cw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != cw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			cfg, err := Load(cw.path)
			if err != nil {
				cw.sendErr(err)
				continue
			}
			// Keep only the newest reload
			select {
			case <-cw.cfgC:
			default:
			}
			cw.cfgC <- cfg
		case err, ok := <-cw.w.Errors:
			if !ok {
				return
			}
			cw.sendErr(err)
		}
	}
}

func (cw *Watcher) sendErr(err error) {
	select {
	case cw.erC <- err:
	default:
	}
}

// Configs delivers successfully reloaded configurations
func (cw *Watcher) Configs() <-chan *Config { return cw.cfgC }

// Errors delivers load and watch failures; excess errors are dropped
func (cw *Watcher) Errors() <-chan error { return cw.erC }

// Close stops watching and waits for the loop to exit
func (cw *Watcher) Close() error {
	err := cw.w.Close()
	<-cw.done
	return err
}
