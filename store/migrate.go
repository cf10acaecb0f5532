package store

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/ayoisaiah/compass/internal/apperr"
)

var errLegacyValue = &apperr.Error{
	Message: "legacy value for %q is not valid JSON",
	Kind:    apperr.Validation,
}

// MigrateLegacy copies a dump of the browser edition's localStorage (key to
// raw string value) into db. Unknown keys are skipped. The credential was
// stored as a bare string and is re-encoded as JSON; every other value must
// already be JSON. Nothing is written unless every known value is valid.
func MigrateLegacy(db DB, dump map[string]string) ([]Key, error) {
	values := make(map[Key][]byte)

	for k, v := range dump {
		key := Key(k)
		if !slices.Contains(Keys, key) {
			continue
		}

		if key == KeyCredential {
			b, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}

			values[key] = b

			continue
		}

		if !json.Valid([]byte(v)) {
			return nil, errLegacyValue.Fmt(key)
		}

		values[key] = []byte(v)
	}

	migrated := make([]Key, 0, len(values))

	for _, key := range Keys {
		v, ok := values[key]
		if !ok {
			continue
		}

		if err := db.Put(key, v); err != nil {
			return migrated, fmt.Errorf("migrating %s: %w", key, err)
		}

		migrated = append(migrated, key)
	}

	return migrated, nil
}
