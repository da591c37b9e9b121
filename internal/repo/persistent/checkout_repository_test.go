package persistent

import (
	"sync"
	"testing"

	"boostmarket/internal/entity"

	"github.com/stretchr/testify/assert"
)

func testClaim(sessionID string, amount int) *entity.CheckoutClaim {
	return &entity.CheckoutClaim{
		SessionID: sessionID,
		AccountID: "acct-1",
		Amount:    amount,
	}
}

func TestCheckoutRepository_ClaimOnce(t *testing.T) {
	repo := NewCheckoutRepository(newTestDB(t))

	claimed, err := repo.Claim(testClaim("cs_test_1", 50))
	assert.NoError(t, err)
	assert.True(t, claimed)

	// Replaying the same session is a lost claim, not an error
	claimed, err = repo.Claim(testClaim("cs_test_1", 50))
	assert.NoError(t, err)
	assert.False(t, claimed)
}

func TestCheckoutRepository_DistinctSessions(t *testing.T) {
	repo := NewCheckoutRepository(newTestDB(t))

	claimed, err := repo.Claim(testClaim("cs_test_1", 50))
	assert.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = repo.Claim(testClaim("cs_test_2", 25))
	assert.NoError(t, err)
	assert.True(t, claimed)
}

func TestCheckoutRepository_ReleaseAllowsRetry(t *testing.T) {
	repo := NewCheckoutRepository(newTestDB(t))

	claimed, _ := repo.Claim(testClaim("cs_test_1", 50))
	assert.True(t, claimed)

	assert.NoError(t, repo.Release("cs_test_1"))

	claimed, err := repo.Claim(testClaim("cs_test_1", 50))
	assert.NoError(t, err)
	assert.True(t, claimed)
}

func TestCheckoutRepository_ConcurrentClaims_SingleWinner(t *testing.T) {
	repo := NewCheckoutRepository(newTestDB(t))

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := repo.Claim(testClaim("cs_test_1", 50))
			assert.NoError(t, err)
			if claimed {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
}
