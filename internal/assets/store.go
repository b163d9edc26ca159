// Package assets loads images, text boards and sounds from a directory once,
// before the frame loop starts, into tables owned by a single Store.
// Entities refer to assets through small Handle values and never own them.
package assets

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
)

var (
	// ErrMissingAsset is returned when a file or directory does not exist.
	ErrMissingAsset = errors.New("assets: missing asset")
	// ErrUnknownAsset is returned when a name or handle is not in the store.
	ErrUnknownAsset = errors.New("assets: unknown asset")
	// ErrWrongKind is returned when a handle is resolved as the wrong kind.
	ErrWrongKind = errors.New("assets: wrong asset kind")
)

// Handle refers to one asset in a Store. The zero Handle refers to nothing.
type Handle int

// Valid reports whether h refers to an asset.
func (h Handle) Valid() bool {
	return h > 0
}

// Kind is the type of an asset.
type Kind int

const (
	KindImage Kind = iota + 1
	KindBoard
	KindSound
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindBoard:
		return "board"
	case KindSound:
		return "sound"
	default:
		return "unknown"
	}
}

// KindOf returns the asset kind for a file name, or 0 if unsupported.
func KindOf(name string) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp":
		return KindImage
	case ".txt":
		return KindBoard
	case ".wav", ".ogg", ".mp3":
		return KindSound
	default:
		return 0
	}
}

type entry struct {
	name  string
	kind  Kind
	img   image.Image
	board []string
	sound []byte
}

// Store is the central asset table. It is filled by Load (or the Add
// methods) before the frame loop starts and only read afterwards, so one
// Store may be shared by concurrent game sessions.
type Store struct {
	names   map[string]Handle
	entries []entry
	logger  *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used while loading.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		names:  make(map[string]Handle),
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads every supported file in dir. Subdirectories and unsupported
// files are skipped. Any read or decode failure aborts the load.
func Load(dir string, opts ...Option) (*Store, error) {
	s := New(opts...)

	files, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory %s", ErrMissingAsset, dir)
		}
		return nil, fmt.Errorf("assets: cannot read %s: %w", dir, err)
	}

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := f.Name()
		kind := KindOf(name)
		if kind == 0 {
			s.logger.Debug("skipping unsupported file", "name", name)
			continue
		}
		if err := s.loadFile(filepath.Join(dir, name), name, kind); err != nil {
			return nil, err
		}
	}

	s.logger.Info("assets loaded", "dir", dir, "count", len(s.entries))
	return s, nil
}

func (s *Store) loadFile(path, name string, kind Kind) error {
	switch kind {
	case KindImage:
		img, err := imaging.Open(path)
		if err != nil {
			return fmt.Errorf("assets: cannot decode image %s: %w", path, err)
		}
		s.AddImage(name, img)
	case KindBoard:
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("assets: cannot read board %s: %w", path, err)
		}
		s.AddBoard(name, ParseBoard(data))
	case KindSound:
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("assets: cannot read sound %s: %w", path, err)
		}
		s.AddSound(name, data)
	}
	s.logger.Debug("loaded asset", "name", name, "kind", kind)
	return nil
}

func (s *Store) add(e entry) Handle {
	if h, ok := s.names[e.name]; ok {
		s.entries[h-1] = e
		return h
	}
	s.entries = append(s.entries, e)
	h := Handle(len(s.entries))
	s.names[e.name] = h
	return h
}

// AddImage registers an in-memory image under name, replacing any asset of
// the same name.
func (s *Store) AddImage(name string, img image.Image) Handle {
	return s.add(entry{name: name, kind: KindImage, img: img})
}

// AddBoard registers a text board under name.
func (s *Store) AddBoard(name string, rows []string) Handle {
	return s.add(entry{name: name, kind: KindBoard, board: rows})
}

// AddSound registers raw sound bytes under name.
func (s *Store) AddSound(name string, data []byte) Handle {
	return s.add(entry{name: name, kind: KindSound, sound: data})
}

// Lookup returns the handle registered under name.
func (s *Store) Lookup(name string) (Handle, error) {
	h, ok := s.names[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAsset, name)
	}
	return h, nil
}

// Require checks that every name is present.
func (s *Store) Require(names ...string) error {
	var missing []string
	for _, n := range names {
		if _, ok := s.names[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingAsset, strings.Join(missing, ", "))
	}
	return nil
}

func (s *Store) get(h Handle, kind Kind) (*entry, error) {
	if h <= 0 || int(h) > len(s.entries) {
		return nil, fmt.Errorf("%w: handle %d", ErrUnknownAsset, h)
	}
	e := &s.entries[h-1]
	if e.kind != kind {
		return nil, fmt.Errorf("%w: %q is a %s, not a %s", ErrWrongKind, e.name, e.kind, kind)
	}
	return e, nil
}

// Image resolves an image handle.
func (s *Store) Image(h Handle) (image.Image, error) {
	e, err := s.get(h, KindImage)
	if err != nil {
		return nil, err
	}
	return e.img, nil
}

// Board resolves a board handle. The rows must not be modified.
func (s *Store) Board(h Handle) ([]string, error) {
	e, err := s.get(h, KindBoard)
	if err != nil {
		return nil, err
	}
	return e.board, nil
}

// Sound resolves a sound handle.
func (s *Store) Sound(h Handle) ([]byte, error) {
	e, err := s.get(h, KindSound)
	if err != nil {
		return nil, err
	}
	return e.sound, nil
}

// Names returns all asset names, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.names))
	for n := range s.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of assets.
func (s *Store) Len() int {
	return len(s.entries)
}

// ParseBoard splits a text board into rows. Leading and trailing blank
// lines are dropped; inner blank lines and trailing spaces are kept.
func ParseBoard(data []byte) []string {
	var rows []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}

	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}
