//go:build !windows

package pathenv

import "os"

// processEnvStore reads and writes the PATH of the current process. It
// exists so the package compiles and tests off Windows; it is not a
// persistent user-scope store.
type processEnvStore struct{}

// NewUserStore returns the user-scope PATH store for this platform.
func NewUserStore() Store {
	return processEnvStore{}
}

func (processEnvStore) Get() (string, error) {
	return os.Getenv("PATH"), nil
}

func (processEnvStore) Set(value string) error {
	return os.Setenv("PATH", value)
}
