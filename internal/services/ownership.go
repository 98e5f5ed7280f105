package services

import "fmt"

// requireOwner enforces the ownership policy: only the user recorded as
// owner at creation time may mutate or delete a record. Reads are public
// and never pass through here.
func requireOwner(ownerID, actingUserID uint) error {
	if ownerID != actingUserID {
		return fmt.Errorf("user %d does not own this record: %w", actingUserID, ErrUnauthorized)
	}
	return nil
}
