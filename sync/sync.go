package sync

import (
	"context"
	"errors"

	"golang.org/x/exp/slog"

	"ytnotion/model"
	"ytnotion/storage"
	"ytnotion/youtube"
)

// VideoSource reads video and channel metadata from the platform.
type VideoSource interface {
	Video(ctx context.Context, id model.VideoID) (model.VideoMeta, error)
	Channel(ctx context.Context, id model.ChannelID) (model.ChannelMeta, error)
}

// CategoryNamer resolves a category id to its display name.
type CategoryNamer interface {
	Resolve(ctx context.Context, id string) (string, error)
}

type Syncer struct {
	source     VideoSource
	categories CategoryNamer
	videos     storage.VideoRecordRepository
	channels   storage.ChannelRecordRepository
	logger     *slog.Logger
}

func NewSyncer(source VideoSource, categories CategoryNamer, videos storage.VideoRecordRepository, channels storage.ChannelRecordRepository, logger *slog.Logger) *Syncer {
	return &Syncer{
		source:     source,
		categories: categories,
		videos:     videos,
		channels:   channels,
		logger:     logger,
	}
}

// EnsureChannel makes sure a channel record exists for the given channel
// id and returns its record id. An existing record is returned unchanged:
// channel metadata is treated as immutable once recorded.
func (s *Syncer) EnsureChannel(ctx context.Context, id model.ChannelID) (model.RecordID, error) {
	recordID, err := s.channels.FindByChannelID(ctx, id)
	switch {
	case err == nil:
		return recordID, nil
	case !errors.Is(err, storage.ErrNotFound):
		return "", err
	}

	meta, err := s.source.Channel(ctx, id)
	if err != nil {
		return "", err
	}

	url := id.CanonicalURL()
	if meta.CustomURL != "" {
		url = "https://www.youtube.com/" + meta.CustomURL
	}

	recordID, err = s.channels.Create(ctx, model.ChannelRecord{
		Name:      meta.Name,
		ChannelID: id,
		URL:       url,
		LogoURL:   meta.LogoURL,
	})
	if err != nil {
		return "", err
	}
	s.logger.Info("created channel record", slog.String("channelid", string(id)))

	return recordID, nil
}

// EnsureVideo upserts the record for a single video, linked to its channel
// record, and returns the record id. An existing record is overwritten in
// full, so re-running with unchanged upstream data leaves identical stored
// fields.
func (s *Syncer) EnsureVideo(ctx context.Context, id model.VideoID) (model.RecordID, error) {
	meta, err := s.source.Video(ctx, id)
	if err != nil {
		return "", err
	}

	categoryName, err := s.categories.Resolve(ctx, meta.CategoryID)
	if err != nil {
		if !errors.Is(err, youtube.ErrUnknownCategory) {
			return "", err
		}
		s.logger.Warn("unknown category, substituting placeholder",
			slog.String("videoid", string(id)), slog.String("categoryid", meta.CategoryID))
		categoryName = "Unknown"
	}

	duration, err := youtube.FormatDuration(meta.ISODuration)
	if err != nil {
		s.logger.Warn("malformed duration, keeping raw value",
			slog.String("videoid", string(id)), slog.String("duration", meta.ISODuration))
		duration = meta.ISODuration
	}

	channelRecordID, err := s.EnsureChannel(ctx, meta.ChannelID)
	if err != nil {
		return "", err
	}

	record := model.VideoRecord{
		Name:         meta.Title,
		VideoID:      id,
		Date:         meta.PublishedAt,
		Duration:     duration,
		ThumbnailURL: meta.ThumbnailURL,
		URL:          id.WatchURL(),
		CategoryID:   meta.CategoryID,
		CategoryName: categoryName,
		Channel:      channelRecordID,
	}

	recordID, err := s.videos.FindByVideoID(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		recordID, err = s.videos.Create(ctx, record)
		if err != nil {
			return "", err
		}
		s.logger.Info("created video record", slog.String("videoid", string(id)))
	case err != nil:
		return "", err
	default:
		if err := s.videos.Update(ctx, recordID, record); err != nil {
			return "", err
		}
		s.logger.Info("updated video record", slog.String("videoid", string(id)))
	}

	return recordID, nil
}
