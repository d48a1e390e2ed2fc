package memstore

import "errors"

// unavailable joins a cancelled or expired context error with the
// repository's unavailable sentinel, matching the mongo driver.
func unavailable(sentinel, err error) error {
	return errors.Join(sentinel, err)
}
