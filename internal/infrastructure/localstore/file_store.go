package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// FileStore es un Storage duradero sobre archivos: un archivo por clave dentro
// de un directorio. Los cambios hechos por otros procesos se detectan con
// fsnotify y se rebroadcast a los suscriptores locales, lo que da convergencia
// entre superficies incluso entre procesos (el análogo de los storage events
// del navegador).
type FileStore struct {
	dir     string
	bc      *broadcaster
	watcher *fsnotify.Watcher
}

// NewFileStore prepara el directorio, arranca el watcher y devuelve el almacén.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("localstore: crear watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("localstore: observar directorio: %w", err)
	}
	fs := &FileStore{dir: dir, bc: newBroadcaster(), watcher: watcher}
	go fs.watch()
	return fs, nil
}

// Close detiene el watcher; los canales de los suscriptores dejan de recibir señales.
func (f *FileStore) Close() error {
	return f.watcher.Close()
}

func (f *FileStore) watch() {
	for {
		select {
		case ev, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(ev.Name, ".json") {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) {
				f.bc.notify()
			}
		case _, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			// Errores del watcher no interrumpen el store: la próxima
			// escritura local notifica igualmente.
		}
	}
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get lee el valor bajo key; (vacío, false) si el archivo no existe.
func (f *FileStore) Get(key string) (string, bool) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		return "", false
	}
	return string(raw), true
}

// Set escribe el valor de forma atómica (tmp + rename) y notifica a los
// suscriptores locales; los procesos externos lo reciben vía fsnotify.
func (f *FileStore) Set(key, value string) error {
	dst := f.path(key)
	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", key, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		return fmt.Errorf("localstore: renombrar %s: %w", key, err)
	}
	f.bc.notify()
	return nil
}

// Subscribe registra un suscriptor a cambios del almacén.
func (f *FileStore) Subscribe() (<-chan struct{}, func()) {
	return f.bc.subscribe()
}
