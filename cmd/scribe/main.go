package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/internal/finder"
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/internal/processor"
	"github.com/nguyentantai21042004/scribe/pkg/executor"
)

type flags struct {
	configPath        string
	transcriptionOnly bool
	force             bool
	prompt            string
	settle            time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "scribe [input_file]",
		Short: "Transcribe and summarize audio from an FFmpeg-compatible file",
		Long: `scribe prints a dated transcript or summary of one input to stdout.

The input may be plain text, a transcription JSON file, or any media file
ffmpeg can read. Media transcriptions are cached next to the input as
.<name>.json and reused until the input changes.`,
		Example: `  # Summarize the newest .mp4 in the current directory
  scribe

  # Transcript only, ignoring the cache
  scribe 2024-01-01_standup.mp4 -t -f

  # Steer the summary
  scribe meeting.mkv -p "List action items with owners."`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to YAML config (default ./"+config.DefaultFile+" when present)")
	cmd.Flags().BoolVarP(&f.transcriptionOnly, "transcription-only", "t", false, "Only output the transcription text.")
	cmd.Flags().BoolVarP(&f.force, "force", "f", false, "Force re-caching transcription")
	cmd.Flags().StringVarP(&f.prompt, "prompt", "p", "", "Extra prompt to add to the summary directive.")
	cmd.Flags().DurationVar(&f.settle, "settle", 0, "Wait until the input has not changed for this long before starting")

	return cmd
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	cfg, err := config.Load(config.ResolvePath(f.configPath))
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("settle") {
		cfg.Input.Settle = f.settle
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.New(cfg.Logging.Level)

	inputPath := ""
	if len(args) > 0 {
		inputPath = args[0]
	} else {
		inputPath, err = finder.Newest(cfg.Input.Dir, cfg.Input.Pattern)
		if err != nil {
			return err
		}
		log.Info(ctx, "No input_file specified. Using the latest %s file: %s", cfg.Input.Pattern, inputPath)
	}

	proc := processor.New(cfg, executor.New(), log)
	out, err := proc.Process(ctx, inputPath, processor.Options{
		TranscriptionOnly: f.transcriptionOnly,
		Force:             f.force,
		Prompt:            f.prompt,
	})
	if err != nil {
		return err
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
