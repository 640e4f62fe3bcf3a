// Package assembler renders a transcription or plain text into the dated
// document that is printed or summarized.
package assembler

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/scribe/internal/transcript"
)

const dateLayout = "2006-01-02"

// Document is the input of Render. Exactly one of Transcription or Text is used;
// Transcription wins when both are set.
type Document struct {
	Filename      string
	Date          string
	Transcription *transcript.Transcription
	Text          string
}

// NewDocument names and dates a document after the file at inputPath
func NewDocument(inputPath string, t *transcript.Transcription, text string) (Document, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return Document{}, fmt.Errorf("stat input: %w", err)
	}

	name := filepath.Base(inputPath)
	return Document{
		Filename:      name,
		Date:          InferDate(name, info.ModTime()),
		Transcription: t,
		Text:          text,
	}, nil
}

// InferDate takes the date from a name like 2024-01-01_meeting.mp4, falling
// back to modTime. The name is checked for shape only, not calendar validity.
func InferDate(name string, modTime time.Time) string {
	if len(name) > len(dateLayout) && isDateShaped(name[:len(dateLayout)]) {
		return name[:len(dateLayout)]
	}
	return modTime.Format(dateLayout)
}

func isDateShaped(s string) bool {
	for i := 0; i < len(s); i++ {
		switch i {
		case 4, 7:
			if s[i] != '-' {
				return false
			}
		default:
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
	}
	return true
}

// FormatOffset renders elapsed seconds as H:MM:SS. Fractions are dropped and
// hours are not wrapped at a day.
func FormatOffset(seconds float64) string {
	total := math.Floor(seconds)
	rem := int64(math.Mod(total, 3600))
	hours := (total - float64(rem)) / 3600
	return fmt.Sprintf("%.0f:%02d:%02d", hours, rem/60, rem%60)
}

// Render produces the header block followed by one line per segment or the literal text
func Render(doc Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Filename: %s\n", doc.Filename)
	fmt.Fprintf(&b, "Date: %s\n\n", doc.Date)

	if doc.Transcription == nil {
		b.WriteString(doc.Text)
		return b.String()
	}

	for _, s := range doc.Transcription.Segments {
		fmt.Fprintf(&b, "[%s] %s\n", FormatOffset(s.Start), strings.TrimSpace(s.Text))
	}
	return b.String()
}
