package resource

import (
	"fmt"

	"github.com/ersonp/orgflow/internal/domain/entities"
)

// OptionsError reports caller-supplied options that cannot be turned into
// valid request parameters. It is always raised before any network call.
type OptionsError struct {
	Kind entities.Kind
	Msg  string
}

func (e *OptionsError) Error() string {
	if e.Kind == "" {
		return "invalid options: " + e.Msg
	}
	return fmt.Sprintf("invalid options for %s: %s", e.Kind, e.Msg)
}

func optionsErrorf(kind entities.Kind, format string, args ...any) error {
	return &OptionsError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
