package storage

import (
	"testing"
	"time"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"

	"ytnotion/model"
)

func TestVideoProperties(t *testing.T) {
	a := assert.New(t)

	record := model.VideoRecord{
		Name:         "T",
		VideoID:      "dQw4w9WgXcQ",
		Date:         time.Date(2009, 10, 25, 6, 57, 33, 0, time.UTC),
		Duration:     "3m33s",
		ThumbnailURL: "https://i.ytimg.com/thumb.jpg",
		URL:          "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		CategoryID:   "10",
		CategoryName: "Music",
		Channel:      "page-1",
	}

	props := videoProperties(record)

	title, ok := props["Name"].(notionapi.TitleProperty)
	a.True(ok)
	a.Equal("T", title.Title[0].Text.Content)

	videoID, ok := props["Video Id"].(notionapi.RichTextProperty)
	a.True(ok)
	a.Equal("dQw4w9WgXcQ", videoID.RichText[0].Text.Content)

	duration, ok := props["Duration"].(notionapi.RichTextProperty)
	a.True(ok)
	a.Equal("3m33s", duration.RichText[0].Text.Content)

	url, ok := props["URL"].(notionapi.URLProperty)
	a.True(ok)
	a.Equal(record.URL, url.URL)

	thumbnail, ok := props["Thumbnail"].(notionapi.URLProperty)
	a.True(ok)
	a.Equal(record.ThumbnailURL, thumbnail.URL)

	categoryID, ok := props["Category Id"].(notionapi.SelectProperty)
	a.True(ok)
	a.Equal("10", categoryID.Select.Name)

	categoryName, ok := props["Category Name"].(notionapi.SelectProperty)
	a.True(ok)
	a.Equal("Music", categoryName.Select.Name)

	relation, ok := props["Channel"].(notionapi.RelationProperty)
	a.True(ok)
	a.Len(relation.Relation, 1)
	a.Equal(notionapi.PageID("page-1"), relation.Relation[0].ID)
}

func TestVideoPropertiesEmptyThumbnail(t *testing.T) {
	a := assert.New(t)

	props := videoProperties(model.VideoRecord{VideoID: "abc"})

	a.NotContains(props, "Thumbnail")
}

func TestChannelProperties(t *testing.T) {
	a := assert.New(t)

	props := channelProperties(model.ChannelRecord{
		Name:      "Official X",
		ChannelID: "UCX",
		URL:       "https://www.youtube.com/@officialx",
		LogoURL:   "https://yt3.ggpht.com/logo.jpg",
	})

	title, ok := props["Name"].(notionapi.TitleProperty)
	a.True(ok)
	a.Equal("Official X", title.Title[0].Text.Content)

	channelID, ok := props["Channel Id"].(notionapi.RichTextProperty)
	a.True(ok)
	a.Equal("UCX", channelID.RichText[0].Text.Content)

	logo, ok := props["Logo"].(notionapi.URLProperty)
	a.True(ok)
	a.Equal("https://yt3.ggpht.com/logo.jpg", logo.URL)

	a.NotContains(channelProperties(model.ChannelRecord{ChannelID: "UCY"}), "Logo")
}

func TestExternalImage(t *testing.T) {
	a := assert.New(t)

	image := externalImage("https://i.ytimg.com/thumb.jpg")
	a.Equal(notionapi.FileTypeExternal, image.Type)
	a.Equal("https://i.ytimg.com/thumb.jpg", image.External.URL)

	a.Nil(externalImage(""))
	a.Nil(externalIcon(""))
}
