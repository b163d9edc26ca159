package assets

import "sort"

// Sheet is a game's own table of text sprites, resolved once from a Store.
// Names the store lacks get the built-in rows. Building a sheet only reads
// the store, so any number of games may share one Store.
type Sheet struct {
	names map[string]Handle
	rows  [][]string
}

// NewSheet resolves every name in fallbacks against store. A nil store
// gives a sheet of fallbacks only. Store assets that are not boards are
// ignored in favor of the fallback.
func NewSheet(store *Store, fallbacks map[string][]string) *Sheet {
	names := make([]string, 0, len(fallbacks))
	for n := range fallbacks {
		names = append(names, n)
	}
	sort.Strings(names)

	sh := &Sheet{names: make(map[string]Handle, len(names))}
	for _, n := range names {
		rows := fallbacks[n]
		if store != nil {
			if h, err := store.Lookup(n); err == nil {
				if b, err := store.Board(h); err == nil {
					rows = b
				}
			}
		}
		sh.rows = append(sh.rows, rows)
		sh.names[n] = Handle(len(sh.rows))
	}
	return sh
}

// Handle returns the sheet handle for name, or the zero Handle.
func (sh *Sheet) Handle(name string) Handle {
	return sh.names[name]
}

// Rows returns the sprite rows for h, or nil for an unknown handle.
func (sh *Sheet) Rows(h Handle) []string {
	if h <= 0 || int(h) > len(sh.rows) {
		return nil
	}
	return sh.rows[h-1]
}

// Sprite returns the rows registered under name.
func (sh *Sheet) Sprite(name string) []string {
	return sh.Rows(sh.Handle(name))
}
