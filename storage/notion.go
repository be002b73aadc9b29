package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jomei/notionapi"

	"ytnotion/model"
)

type NotionInfo struct {
	Token             string
	VideoDatabaseID   string
	ChannelDatabaseID string
	Timeout           time.Duration
}

// Notion holds the API client and the two database ids. The databases
// must be provisioned up front with the expected properties.
type Notion struct {
	client    *notionapi.Client
	videoDB   notionapi.DatabaseID
	channelDB notionapi.DatabaseID
	timeout   time.Duration
}

func NewNotion(info NotionInfo) *Notion {
	return &Notion{
		client:    notionapi.NewClient(notionapi.Token(info.Token)),
		videoDB:   notionapi.DatabaseID(info.VideoDatabaseID),
		channelDB: notionapi.DatabaseID(info.ChannelDatabaseID),
		timeout:   info.Timeout,
	}
}

func (n *Notion) findByExternalID(ctx context.Context, db notionapi.DatabaseID, property, externalID string) (model.RecordID, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	response, err := n.client.Database.Query(ctx, db, &notionapi.DatabaseQueryRequest{
		Filter: notionapi.PropertyFilter{
			Property: property,
			RichText: &notionapi.TextFilterCondition{Equals: externalID},
		},
	})
	if err != nil {
		return "", fmt.Errorf("query %s %q: %w", property, externalID, notionErr(err))
	}
	if len(response.Results) == 0 {
		return "", fmt.Errorf("%s %q: %w", property, externalID, ErrNotFound)
	}

	return model.RecordID(response.Results[0].ID), nil
}

type NotionVideoRepository struct {
	notion *Notion
}

func NewNotionVideoRepository(notion *Notion) *NotionVideoRepository {
	return &NotionVideoRepository{notion: notion}
}

func (r *NotionVideoRepository) FindByVideoID(ctx context.Context, id model.VideoID) (model.RecordID, error) {
	return r.notion.findByExternalID(ctx, r.notion.videoDB, "Video Id", string(id))
}

func (r *NotionVideoRepository) Create(ctx context.Context, record model.VideoRecord) (model.RecordID, error) {
	ctx, cancel := context.WithTimeout(ctx, r.notion.timeout)
	defer cancel()

	page, err := r.notion.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: r.notion.videoDB,
		},
		Properties: videoProperties(record),
		Cover:      externalImage(record.ThumbnailURL),
	})
	if err != nil {
		return "", fmt.Errorf("create video record %s: %w", record.VideoID, notionErr(err))
	}

	return model.RecordID(page.ID), nil
}

func (r *NotionVideoRepository) Update(ctx context.Context, id model.RecordID, record model.VideoRecord) error {
	ctx, cancel := context.WithTimeout(ctx, r.notion.timeout)
	defer cancel()

	_, err := r.notion.client.Page.Update(ctx, notionapi.PageID(id), &notionapi.PageUpdateRequest{
		Properties: videoProperties(record),
		Cover:      externalImage(record.ThumbnailURL),
	})
	if err != nil {
		return fmt.Errorf("update video record %s: %w", record.VideoID, notionErr(err))
	}

	return nil
}

type NotionChannelRepository struct {
	notion *Notion
}

func NewNotionChannelRepository(notion *Notion) *NotionChannelRepository {
	return &NotionChannelRepository{notion: notion}
}

func (r *NotionChannelRepository) FindByChannelID(ctx context.Context, id model.ChannelID) (model.RecordID, error) {
	return r.notion.findByExternalID(ctx, r.notion.channelDB, "Channel Id", string(id))
}

func (r *NotionChannelRepository) Create(ctx context.Context, record model.ChannelRecord) (model.RecordID, error) {
	ctx, cancel := context.WithTimeout(ctx, r.notion.timeout)
	defer cancel()

	page, err := r.notion.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: r.notion.channelDB,
		},
		Properties: channelProperties(record),
		Icon:       externalIcon(record.LogoURL),
	})
	if err != nil {
		return "", fmt.Errorf("create channel record %s: %w", record.ChannelID, notionErr(err))
	}

	return model.RecordID(page.ID), nil
}

// notionErr maps a rejected property payload to ErrValidation. Everything
// else passes through as-is.
func notionErr(err error) error {
	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == "validation_error" {
		return fmt.Errorf("%s: %w", apiErr.Message, ErrValidation)
	}

	return err
}
