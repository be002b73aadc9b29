package model

type ChannelID string

// ChannelMeta is what the platform reports about a channel.
type ChannelMeta struct {
	ID        ChannelID
	Name      string
	CustomURL string
	LogoURL   string
}

// ChannelRecord is the field set stored for a channel.
type ChannelRecord struct {
	Name      string
	ChannelID ChannelID
	URL       string
	LogoURL   string
}

func (c ChannelID) CanonicalURL() string {
	return "https://www.youtube.com/channel/" + string(c)
}
