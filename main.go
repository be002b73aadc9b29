package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/slog"

	"ytnotion/input"
	"ytnotion/model"
	"ytnotion/storage"
	"ytnotion/sync"
	"ytnotion/youtube"
)

func main() {
	csvPath := flag.String("csv", "", "path to a csv file with video ids")
	idList := flag.String("ids", "", "comma-separated video ids")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr))

	var ids []model.VideoID
	switch {
	case *csvPath != "" && *idList != "":
		fmt.Fprintln(os.Stderr, "use either -csv or -ids, not both")
		os.Exit(1)
	case *csvPath != "":
		var err error
		ids, err = input.FromFile(*csvPath)
		if err != nil {
			logger.Error("unable to read video ids", err)
			os.Exit(1)
		}
	case *idList != "":
		ids = input.FromList(*idList)
	default:
		fmt.Fprintln(os.Stderr, "usage: ytnotion -csv <file> | -ids <id,id,...>")
		os.Exit(1)
	}
	if len(ids) == 0 {
		fmt.Fprintln(os.Stderr, "no video ids to sync")
		os.Exit(1)
	}

	timeout, err := time.ParseDuration(getParam("API_TIMEOUT", "15s"))
	if err != nil {
		logger.Error("unable to parse api timeout", err)
		os.Exit(1)
	}

	ctx := context.Background()
	yt, err := youtube.NewClient(ctx, getParam("YOUTUBE_API_KEY", ""), getParam("YOUTUBE_REGION", "US"), timeout)
	if err != nil {
		logger.Error("unable to create youtube client", err)
		os.Exit(1)
	}

	notion := storage.NewNotion(storage.NotionInfo{
		Token:             getParam("NOTION_TOKEN", ""),
		VideoDatabaseID:   getParam("NOTION_VIDEO_DB", ""),
		ChannelDatabaseID: getParam("NOTION_CHANNEL_DB", ""),
		Timeout:           timeout,
	})
	videoRepo := storage.NewNotionVideoRepository(notion)
	channelRepo := storage.NewNotionChannelRepository(notion)

	syncer := sync.NewSyncer(yt, youtube.NewCategoryResolver(yt), videoRepo, channelRepo, logger)
	report := syncer.Run(ctx, ids)

	for _, id := range ids {
		if reason, ok := report.Failed[id]; ok {
			fmt.Printf("fail %s: %s\n", id, reason)
			continue
		}
		fmt.Printf("ok   %s\n", id)
	}
	fmt.Printf("synced %d of %d videos\n", len(report.Succeeded), len(ids))

	if !report.OK() {
		os.Exit(1)
	}
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}
	return def
}
