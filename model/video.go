package model

import "time"

type VideoID string

// RecordID identifies a page in the record store.
type RecordID string

// VideoMeta is what the platform reports about a video.
type VideoMeta struct {
	ID           VideoID
	Title        string
	ISODuration  string
	PublishedAt  time.Time
	ThumbnailURL string
	CategoryID   string
	ChannelID    ChannelID
	ChannelTitle string
}

// VideoRecord is the field set stored for a video, linked to its channel.
type VideoRecord struct {
	Name         string
	VideoID      VideoID
	Date         time.Time
	Duration     string
	ThumbnailURL string
	URL          string
	CategoryID   string
	CategoryName string
	Channel      RecordID
}

func (v VideoID) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + string(v)
}
