package storage

import (
	"github.com/jomei/notionapi"

	"ytnotion/model"
)

func videoProperties(record model.VideoRecord) notionapi.Properties {
	date := notionapi.Date(record.Date)
	props := notionapi.Properties{
		"Name":     notionapi.TitleProperty{Title: richText(record.Name)},
		"Video Id": notionapi.RichTextProperty{RichText: richText(string(record.VideoID))},
		"Date":     notionapi.DateProperty{Date: &notionapi.DateObject{Start: &date}},
		"Duration": notionapi.RichTextProperty{RichText: richText(record.Duration)},
		"URL":      notionapi.URLProperty{URL: record.URL},
		"Category Id": notionapi.SelectProperty{
			Select: notionapi.Option{Name: record.CategoryID},
		},
		"Category Name": notionapi.SelectProperty{
			Select: notionapi.Option{Name: record.CategoryName},
		},
		"Channel": notionapi.RelationProperty{
			Relation: []notionapi.Relation{{ID: notionapi.PageID(record.Channel)}},
		},
	}
	// The store rejects empty strings for url properties.
	if record.ThumbnailURL != "" {
		props["Thumbnail"] = notionapi.URLProperty{URL: record.ThumbnailURL}
	}

	return props
}

func channelProperties(record model.ChannelRecord) notionapi.Properties {
	props := notionapi.Properties{
		"Name":       notionapi.TitleProperty{Title: richText(record.Name)},
		"Channel Id": notionapi.RichTextProperty{RichText: richText(string(record.ChannelID))},
		"URL":        notionapi.URLProperty{URL: record.URL},
	}
	if record.LogoURL != "" {
		props["Logo"] = notionapi.URLProperty{URL: record.LogoURL}
	}

	return props
}

func richText(content string) []notionapi.RichText {
	return []notionapi.RichText{
		{Text: &notionapi.Text{Content: content}},
	}
}

func externalImage(url string) *notionapi.Image {
	if url == "" {
		return nil
	}

	return &notionapi.Image{
		Type:     notionapi.FileTypeExternal,
		External: &notionapi.FileObject{URL: url},
	}
}

func externalIcon(url string) *notionapi.Icon {
	if url == "" {
		return nil
	}

	return &notionapi.Icon{
		Type:     notionapi.FileTypeExternal,
		External: &notionapi.FileObject{URL: url},
	}
}
