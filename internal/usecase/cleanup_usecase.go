package usecase

import (
	"context"
	"log"
	"time"

	"plantcart/internal/usecase/interfaces"
)

// Completed orders older than this are purged by the retention sweep.
// pending_payment orders are intentionally outside the sweep (they never
// reach completed), matching the storefront's accepted behavior.
const orderRetention = 7 * 24 * time.Hour

// CleanupUseCase purges completed orders past the retention window.

type CleanupUseCase struct {
	repo interfaces.IOrderRepository
	now  func() time.Time
}

func NewCleanupUseCase(repo interfaces.IOrderRepository) *CleanupUseCase {
	return &CleanupUseCase{repo: repo, now: time.Now}
}

// Run performs one sweep. Errors are logged, not fatal: the next scheduled
// run retries.
func (u *CleanupUseCase) Run(ctx context.Context) {
	cutoff := u.now().UTC().Add(-orderRetention)
	deleted, err := u.repo.DeleteCompletedBefore(ctx, cutoff)
	if err != nil {
		log.Printf("[cleanup][usecase] sweep failed err=%v", err)
		return
	}
	if deleted > 0 {
		log.Printf("[cleanup][usecase] purged %d completed orders older than %s", deleted, cutoff.Format(time.RFC3339))
	}
}
