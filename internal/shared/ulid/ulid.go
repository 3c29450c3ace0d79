package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
var NewULID = func() string {
	return ulid.Make().String()
}

// IsValid reports whether id is a well-formed ULID.
// Ingestion run ids are ULIDs, so a valid id is also a safe report key.
func IsValid(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
