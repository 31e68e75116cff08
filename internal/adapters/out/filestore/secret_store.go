package filestore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// Lookup files inside the secrets directory. Each line is
// <serial>:<value>.
const (
	secretKeyFile      = "SecretKEY.txt"
	activationCodeFile = "ActivationCodes.txt"
)

// SecretStore reads per-unit arming secrets from a directory holding the
// secret key and activation code lookup files.
type SecretStore struct {
	dir string
}

// NewSecretStore creates a store over the given secrets directory.
func NewSecretStore(dir string) (*SecretStore, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}

	return &SecretStore{dir: dir}, nil
}

// SecretKey returns the unit's secret key. Fails with a not-found error
// when the key file is missing or holds no entry for the unit.
func (s *SecretStore) SecretKey(serial kernel.Serial) (string, error) {
	return s.lookup(secretKeyFile, "secret key", serial)
}

// ActivationCode returns the unit's activation code. Fails with a not-found
// error when the code file is missing or holds no entry for the unit.
func (s *SecretStore) ActivationCode(serial kernel.Serial) (string, error) {
	return s.lookup(activationCodeFile, "activation code", serial)
}

func (s *SecretStore) lookup(fileName, secretName string, serial kernel.Serial) (string, error) {
	if err := serial.Validate(); err != nil {
		return "", err
	}

	file, err := os.Open(filepath.Join(s.dir, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", errs.NewObjectNotFoundErrorWithCause(secretName+" file", fileName, err)
		}
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), ":")
		if found && key == serial.String() {
			return value, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", errs.NewObjectNotFoundError(secretName, serial.String())
}
