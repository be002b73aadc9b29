package storage

import (
	"context"
	"errors"

	"ytnotion/model"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("record rejected by store")
)

// The repositories perform no deduplication themselves. Callers keep the
// external-id invariant by finding before they create or update.

type VideoRecordRepository interface {
	FindByVideoID(ctx context.Context, id model.VideoID) (model.RecordID, error)
	Create(ctx context.Context, record model.VideoRecord) (model.RecordID, error)
	Update(ctx context.Context, id model.RecordID, record model.VideoRecord) error
}

type ChannelRecordRepository interface {
	FindByChannelID(ctx context.Context, id model.ChannelID) (model.RecordID, error)
	Create(ctx context.Context, record model.ChannelRecord) (model.RecordID, error)
}
