package media

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/scribe/pkg/executor"
	"github.com/nguyentantai21042004/scribe/pkg/fileutil"
)

// AudioPath returns where the audio extracted from inputPath is written
func AudioPath(audioDir, inputPath string) string {
	base := fileutil.Stem(inputPath)
	out := filepath.Join(audioDir, base+".mp3")

	// Never let the overwrite step delete an .mp3 input.
	if sameFile(out, inputPath) {
		out = filepath.Join(audioDir, base+".extracted.mp3")
	}
	return out
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// Extract encodes the audio track of inputPath as mono MP3.
// Any previous output of the same name is removed first.
func (e *implExtractor) Extract(ctx context.Context, inputPath string) (string, error) {
	audioPath := AudioPath(e.audioDir, inputPath)

	if err := os.Remove(audioPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("remove stale audio %s: %w", audioPath, err)
	}

	// -vn: drop video
	// -ac 1 -ar: mono at a low sample rate, enough for speech
	// -b:a: fixed low bitrate keeps the upload small
	args := []string{
		"-hide_banner",
		"-nostdin",
		"-i", inputPath,
		"-vn",
		"-codec:a", "libmp3lame",
		"-b:a", e.cfg.Bitrate,
		"-ac", "1",
		"-ar", strconv.Itoa(e.cfg.SampleRate),
		audioPath,
	}

	e.logger.Info(ctx, "Extracting audio: %s", executor.CommandLine(e.cfg.BinaryPath, args...))
	if _, err := e.executor.Execute(ctx, e.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	duration, err := e.Duration(ctx, audioPath)
	if err != nil {
		return "", err
	}

	e.logger.Info(ctx, "Audio extracted: %s (%s)", audioPath, duration)
	return audioPath, nil
}

// Duration asks ffprobe for the length of audioPath.
// It fails on anything that is not well-formed media.
func (e *implExtractor) Duration(ctx context.Context, audioPath string) (time.Duration, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	}

	out, err := e.executor.Execute(ctx, e.cfg.ProbePath, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: unexpected output %q from '%s': %w",
			out, executor.CommandLine(e.cfg.ProbePath, args...), err)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}
