package storage

import "balancerScope/internal/model"

// Storage defines a sink for normalized pool records.
type Storage interface {
	PutPoolBatch(pools []model.NormalizedPool) error
}
