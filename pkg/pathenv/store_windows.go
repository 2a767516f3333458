//go:build windows

package pathenv

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows/registry"
)

// registryStore persists the user PATH in the HKCU Environment key, which is
// what Windows reads for per-user environment variables.
type registryStore struct{}

// NewUserStore returns the user-scope PATH store for this platform.
func NewUserStore() Store {
	return registryStore{}
}

func (registryStore) Get() (string, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, "Environment", registry.QUERY_VALUE)
	if err != nil {
		return "", errors.Wrap(err, "failed to open user environment key")
	}
	defer key.Close()

	value, _, err := key.GetStringValue("Path")
	if err == registry.ErrNotExist {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read user Path value")
	}
	return value, nil
}

func (registryStore) Set(value string) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, "Environment", registry.SET_VALUE)
	if err != nil {
		return errors.Wrap(err, "failed to open user environment key")
	}
	defer key.Close()

	// REG_EXPAND_SZ keeps %VAR% references in existing entries expandable.
	if err := key.SetExpandStringValue("Path", value); err != nil {
		return errors.Wrap(err, "failed to write user Path value")
	}
	return nil
}
