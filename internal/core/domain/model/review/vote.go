package review

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

const (
	VoteUp   = 1
	VoteDown = -1
)

type Vote struct {
	UserID    kernel.UUID
	Delta     int
	CreatedAt time.Time
}
