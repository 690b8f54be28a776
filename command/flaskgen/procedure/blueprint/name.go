package blueprint

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidName = errors.New("invalid project name")

// ValidateName rejects names that cannot be used as a single path segment
// under the working directory.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q is a reserved path segment", ErrInvalidName, name)
	}
	return nil
}
