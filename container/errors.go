package container

import (
	"fmt"

	"github.com/ext-sakamoro/ALICE-Text/errs"
)

var (
	errHeaderCorrupt = fmt.Errorf("container: %w", errs.ErrHeaderCorrupt)
	errMagicMismatch = fmt.Errorf("container: %w", errs.ErrMagicMismatch)
)

func errUnsupportedVersion(v uint16) error {
	return fmt.Errorf("container: version %d: %w", v, errs.ErrUnsupportedVersion)
}

func errColumnMissing(id fmt.Stringer) error {
	return fmt.Errorf("container: column %s: %w", id, errs.ErrColumnMissing)
}

func errColumnCorrupt(id fmt.Stringer, reason string) error {
	return fmt.Errorf("container: column %s: %s: %w", id, reason, errs.ErrColumnCorrupt)
}
