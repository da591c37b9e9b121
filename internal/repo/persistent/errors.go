package persistent

import (
	"fmt"

	"boostmarket/internal/entity"
)

// storeErr tags an unexpected database error as retryable store
// unavailability, keeping the domain sentinels (not-found, insufficient
// funds) distinct from infrastructure failures.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
}
