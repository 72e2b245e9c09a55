package draft

import (
	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/errors"
)

// Preview renders the draft as indented JSON in schema field order, the form
// shown next to the inputs after every change.
func Preview(d character.Draft) (string, error) {
	data, err := character.EncodeJSON(d, "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to render draft preview")
	}
	return string(data), nil
}
