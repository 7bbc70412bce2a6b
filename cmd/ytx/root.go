package main

import (
	"github.com/spf13/cobra"

	"github.com/SsandrockK/youtube-transcript-extractor/internal/config"
	"github.com/SsandrockK/youtube-transcript-extractor/internal/service"
	"github.com/SsandrockK/youtube-transcript-extractor/internal/youtube"
)

var rootCmd = &cobra.Command{
	Use:   "ytx",
	Short: "Extract timestamped YouTube transcripts for RAG pipelines",
	Long: `ytx fetches the transcript and metadata of a YouTube video and
reshapes them for retrieval-augmented generation: per-entry timestamps,
contiguous full text, and time-bucketed chunks with deep links back to the
exact moment in the video.`,
	SilenceUsage: true,
}

// newExtractService wires a service from the environment-driven config,
// the same way the HTTP server does.
func newExtractService() *service.ExtractService {
	cfg := config.Load()
	return service.NewExtractService(youtube.NewClient(cfg.UpstreamTimeout))
}

func extractOptions(languages []string, preserveFormatting bool) service.Options {
	if len(languages) == 0 {
		languages = config.Load().DefaultLanguages
	}
	return service.Options{
		Languages:          languages,
		PreserveFormatting: preserveFormatting,
	}
}
