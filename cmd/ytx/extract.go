package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [URL or video ID]",
	Short: "Extract a video's transcript",
	Example: `  # Timestamped transcript to stdout
  ytx extract "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
  ytx extract dQw4w9WgXcQ

  # Plain text in Spanish, falling back to English
  ytx extract dQw4w9WgXcQ --plain -l es,en

  # Canonical JSON, saved next to the working directory
  ytx extract dQw4w9WgXcQ --json -o dQw4w9WgXcQ_transcript.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		languages, _ := cmd.Flags().GetStringSlice("languages")
		preserve, _ := cmd.Flags().GetBool("preserve-formatting")
		plain, _ := cmd.Flags().GetBool("plain")
		asJSON, _ := cmd.Flags().GetBool("json")
		outputFile, _ := cmd.Flags().GetString("output")

		svc := newExtractService()
		result, err := svc.Extract(cmd.Context(), args[0], extractOptions(languages, preserve))
		if err != nil {
			return err
		}

		var out string
		switch {
		case asJSON:
			b, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			out = string(b)
		case plain:
			out = result.FullText()
		default:
			out = result.TimestampedText()
		}

		if outputFile != "" {
			return os.WriteFile(outputFile, []byte(out+"\n"), 0644)
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringSliceP("languages", "l", nil, "Preferred language codes, in order (default: en)")
	extractCmd.Flags().Bool("preserve-formatting", false, "Keep raw caption text (newlines, spacing)")
	extractCmd.Flags().Bool("plain", false, "Print contiguous full text without timestamps")
	extractCmd.Flags().Bool("json", false, "Print the canonical JSON result")
	extractCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	rootCmd.AddCommand(extractCmd)
}
