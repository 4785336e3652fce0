package hierarchy

import (
	"fmt"

	"github.com/matzehuels/toolverse/pkg/errors"
)

// MalformedCatalogError reports a catalog tree that violates the fixed
// root/category/tool shape. It is fatal: no hierarchy is produced.
type MalformedCatalogError struct {
	// Path is the slash-separated chain of names leading to the bad node.
	Path   string
	Reason string
}

func (e *MalformedCatalogError) Error() string {
	return fmt.Sprintf("malformed catalog at %q: %s", e.Path, e.Reason)
}

// Unwrap exposes the INVALID_CATALOG code so errors.Is(err,
// errors.ErrCodeInvalidCatalog) matches.
func (e *MalformedCatalogError) Unwrap() error {
	return errors.New(errors.ErrCodeInvalidCatalog, "%s", e.Reason)
}

func malformed(path, format string, args ...any) error {
	return &MalformedCatalogError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
