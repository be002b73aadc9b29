package youtube

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"ytnotion/model"
)

var (
	ErrVideoNotFound   = errors.New("video not found")
	ErrChannelNotFound = errors.New("channel not found")
)

// Client is a read-only wrapper around the YouTube Data API.
type Client struct {
	service *youtube.Service
	region  string
	timeout time.Duration
}

func NewClient(ctx context.Context, apiKey, region string, timeout time.Duration) (*Client, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{
		service: service,
		region:  region,
		timeout: timeout,
	}, nil
}

// Video fetches the metadata for a single video. A video that does not
// exist, or is private, comes back as ErrVideoNotFound.
func (c *Client) Video(ctx context.Context, id model.VideoID) (model.VideoMeta, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.service.Videos.
		List([]string{"snippet", "contentDetails"}).
		Id(string(id)).
		Context(ctx).
		Do()
	if err != nil {
		return model.VideoMeta{}, fmt.Errorf("fetch video %s: %w", id, err)
	}
	if len(response.Items) == 0 {
		return model.VideoMeta{}, fmt.Errorf("video %s: %w", id, ErrVideoNotFound)
	}

	item := response.Items[0]
	publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	if err != nil {
		return model.VideoMeta{}, fmt.Errorf("video %s: parse publish date: %w", id, err)
	}

	return model.VideoMeta{
		ID:           model.VideoID(item.Id),
		Title:        item.Snippet.Title,
		ISODuration:  item.ContentDetails.Duration,
		PublishedAt:  publishedAt,
		ThumbnailURL: bestThumbnail(item.Snippet.Thumbnails),
		CategoryID:   item.Snippet.CategoryId,
		ChannelID:    model.ChannelID(item.Snippet.ChannelId),
		ChannelTitle: item.Snippet.ChannelTitle,
	}, nil
}

// Channel fetches the metadata for a single channel.
func (c *Client) Channel(ctx context.Context, id model.ChannelID) (model.ChannelMeta, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.service.Channels.
		List([]string{"snippet"}).
		Id(string(id)).
		Context(ctx).
		Do()
	if err != nil {
		return model.ChannelMeta{}, fmt.Errorf("fetch channel %s: %w", id, err)
	}
	if len(response.Items) == 0 {
		return model.ChannelMeta{}, fmt.Errorf("channel %s: %w", id, ErrChannelNotFound)
	}

	item := response.Items[0]

	return model.ChannelMeta{
		ID:        model.ChannelID(item.Id),
		Name:      item.Snippet.Title,
		CustomURL: item.Snippet.CustomUrl,
		LogoURL:   bestLogo(item.Snippet.Thumbnails),
	}, nil
}

// ListCategories fetches the video categories for the configured region,
// keyed by category id.
func (c *Client) ListCategories(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.service.VideoCategories.
		List([]string{"snippet"}).
		RegionCode(c.region).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetch categories for region %s: %w", c.region, err)
	}

	names := make(map[string]string, len(response.Items))
	for _, item := range response.Items {
		names[item.Id] = item.Snippet.Title
	}

	return names, nil
}

func bestThumbnail(thumbnails *youtube.ThumbnailDetails) string {
	if thumbnails == nil {
		return ""
	}
	for _, t := range []*youtube.Thumbnail{
		thumbnails.Maxres,
		thumbnails.Standard,
		thumbnails.High,
		thumbnails.Medium,
		thumbnails.Default,
	} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}

	return ""
}

func bestLogo(thumbnails *youtube.ThumbnailDetails) string {
	if thumbnails == nil {
		return ""
	}
	for _, t := range []*youtube.Thumbnail{
		thumbnails.High,
		thumbnails.Medium,
		thumbnails.Default,
	} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}

	return ""
}
