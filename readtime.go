// Package readtime estimates how long a human takes to read a block of
// Markdown, producing a word count, a total duration, and a display label
// such as "3 min". Content is classified in a single pass into prose, image,
// and code-block units, a configurable speed model turns the counts into
// seconds, and the total is rounded up so readers are never under-promised.
//
// The package-level functions cover the common cases:
//
//	rt := readtime.Estimate(markdown)
//	fmt.Println(rt.Formatted, rt.WordCount)
//
// Custom speeds are built with copy-on-write setters:
//
//	speed := readtime.DefaultSpeed().WPM(180).ImageTime(15).Chinese(false)
//	rt := readtime.EstimateWithSpeed(markdown, speed)
//
// Every call is a pure function of its inputs: no state is retained between
// invocations and all entry points are safe for concurrent use.
package readtime

import (
	"math"

	"github.com/goliatone/go-readtime/internal/scanner"
	"github.com/goliatone/go-readtime/internal/textcount"
	"github.com/goliatone/go-readtime/pkg/interfaces"
)

// defaultScanner is shared by every estimation call; the goldmark scanner is
// stateless so no locking is required.
var defaultScanner interfaces.Scanner = scanner.NewGoldmark()

// Estimate computes the read time of markdown using DefaultSpeed.
func Estimate(markdown []byte) ReadTime {
	return EstimateWithSpeed(markdown, DefaultSpeed())
}

// EstimateWithSpeed computes the read time of markdown under the supplied
// speed configuration. Leading YAML/TOML front matter is ignored. The call
// is total over its inputs: malformed Markdown degrades to best-effort
// classification and a non-positive words-per-minute value is clamped to
// DefaultWordsPerMinute.
func EstimateWithSpeed(markdown []byte, speed ReadSpeed) ReadTime {
	return estimate(defaultScanner, markdown, speed)
}

// Minutes reports the whole-minute estimate for markdown under the default
// speed, rounded up.
func Minutes(markdown []byte) int {
	return Estimate(markdown).Minutes()
}

// Words reports the word count for markdown under the default speed.
func Words(markdown []byte) int {
	return Estimate(markdown).WordCount
}

// Formatted reports the duration label for markdown under the default speed.
func Formatted(markdown []byte) string {
	return Estimate(markdown).Formatted
}

// estimate reduces the scanned unit stream into a ReadTime. It backs both
// the package-level functions and the filesystem service, which may swap in
// its own scanner.
func estimate(sc interfaces.Scanner, markdown []byte, speed ReadSpeed) ReadTime {
	body := scanner.StripFrontMatter(markdown)

	opts := textcount.Options{
		Chinese: speed.ChineseMode,
		Emoji:   speed.CountEmoji,
	}

	var words, images, codeBlocks int
	// The scanner only fails when the callback does, and this one never does.
	_ = sc.Scan(body, func(unit interfaces.Unit) error {
		switch unit.Kind {
		case interfaces.UnitImage:
			images++
		case interfaces.UnitCodeBlock:
			codeBlocks++
		default:
			words += textcount.Count(unit.Text, opts)
		}
		return nil
	})

	reading := float64(words) / speed.wordsPerMinute() * 60.0
	extra := float64(images)*speed.secondsPerImage() + float64(codeBlocks)*speed.secondsPerCodeBlock()

	total := int(math.Ceil(reading + extra))
	if total < 0 {
		total = 0
	}

	return ReadTime{
		TotalSeconds:   total,
		Formatted:      FormatSeconds(total),
		WordCount:      words,
		ImageCount:     images,
		CodeBlockCount: codeBlocks,
	}
}
