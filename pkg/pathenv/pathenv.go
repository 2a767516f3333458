// Package pathenv manages the user-scope PATH variable behind a narrow
// store interface so the append logic can be tested without touching the
// real environment store.
package pathenv

import "strings"

// ListSeparator delimits entries in the user PATH value.
const ListSeparator = ";"

// Store reads and writes the raw user-scope PATH string. The real store on
// Windows is the HKCU Environment registry key.
type Store interface {
	Get() (string, error)
	Set(value string) error
}

// Updater appends a directory to the user PATH when it is not already there.
type Updater struct {
	Store Store
}

// NewUpdater creates an Updater over the given store.
func NewUpdater(store Store) *Updater {
	return &Updater{Store: store}
}

// Ensure appends dir to the user PATH unless an entry already matches it
// verbatim. Existing entries keep their order and content; the only possible
// change is a single append. Returns whether the PATH was rewritten.
//
// This is a read-modify-write of shared external state with no locking;
// concurrent installer runs can race (accepted for a single-user tool).
func (u *Updater) Ensure(dir string) (bool, error) {
	raw, err := u.Store.Get()
	if err != nil {
		return false, err
	}

	for _, entry := range splitList(raw) {
		if entry == dir {
			return false, nil
		}
	}

	updated := raw
	if strings.TrimRight(updated, ListSeparator) != "" {
		updated = strings.TrimRight(updated, ListSeparator) + ListSeparator + dir
	} else {
		updated = dir
	}

	if err := u.Store.Set(updated); err != nil {
		return false, err
	}
	return true, nil
}

// splitList splits a PATH value on the list separator, discarding empty
// segments.
func splitList(raw string) []string {
	var entries []string
	for _, entry := range strings.Split(raw, ListSeparator) {
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}
