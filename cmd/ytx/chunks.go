package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SsandrockK/youtube-transcript-extractor/internal/model"
)

// chunksCmd represents the chunks command
var chunksCmd = &cobra.Command{
	Use:   "chunks [URL or video ID]",
	Short: "Extract a transcript as time-bucketed chunks for RAG indexing",
	Example: `  # ~30-second chunks with deep links, as a JSON array
  ytx chunks dQw4w9WgXcQ

  # 60-second chunks saved to a file
  ytx chunks dQw4w9WgXcQ --target 60 -o chunks.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		languages, _ := cmd.Flags().GetStringSlice("languages")
		target, _ := cmd.Flags().GetFloat64("target")
		outputFile, _ := cmd.Flags().GetString("output")

		svc := newExtractService()
		result, err := svc.Extract(cmd.Context(), args[0], extractOptions(languages, false))
		if err != nil {
			return err
		}

		chunks := result.AllChunks(target)
		b, err := json.MarshalIndent(chunks, "", "  ")
		if err != nil {
			return err
		}

		if outputFile != "" {
			return os.WriteFile(outputFile, append(b, '\n'), 0644)
		}
		fmt.Println(string(b))
		return nil
	},
}

func init() {
	chunksCmd.Flags().StringSliceP("languages", "l", nil, "Preferred language codes, in order (default: en)")
	chunksCmd.Flags().Float64("target", model.DefaultChunkSeconds, "Target chunk span in seconds")
	chunksCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	rootCmd.AddCommand(chunksCmd)
}
