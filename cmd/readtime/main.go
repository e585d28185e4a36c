package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	readtime "github.com/goliatone/go-readtime"
	"github.com/goliatone/go-readtime/internal/logging"
)

func main() {
	var (
		file      = flag.String("file", "", "Markdown file to estimate (stdin when -file and -dir are empty)")
		dir       = flag.String("dir", "", "Estimate every matching file under this directory")
		pattern   = flag.String("pattern", "*.md", "Glob pattern applied when discovering files with -dir")
		recursive = flag.Bool("recursive", true, "Traverse sub-directories when -dir is used")
		wpm       = flag.Float64("wpm", readtime.DefaultWordsPerMinute, "Reading speed in words per minute")
		imageTime = flag.Float64("image-time", readtime.DefaultSecondsPerImage, "Seconds added per image")
		codeTime  = flag.Float64("code-time", readtime.DefaultSecondsPerCodeBlock, "Seconds added per code block")
		emoji     = flag.Bool("emoji", true, "Count emoji as words")
		chinese   = flag.Bool("chinese", true, "Count CJK codepoints as individual words")
		asJSON    = flag.Bool("json", false, "Emit results as JSON")
		logLevel  = flag.String("log-level", "warn", "Log level (trace|debug|info|warn|error)")
	)

	flag.Parse()

	speed := readtime.DefaultSpeed().
		WPM(*wpm).
		ImageTime(*imageTime).
		CodeBlockTime(*codeTime).
		Emoji(*emoji).
		Chinese(*chinese)

	if err := speed.Validate(); err != nil {
		log.Fatalf("invalid speed configuration: %v", err)
	}

	switch {
	case *dir != "":
		runDirectory(*dir, *pattern, *recursive, speed, *asJSON, *logLevel)
	case *file != "":
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("read %s: %v", *file, err)
		}
		printOne(readtime.EstimateWithSpeed(data, speed), *asJSON)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("read stdin: %v", err)
		}
		printOne(readtime.EstimateWithSpeed(data, speed), *asJSON)
	}
}

func runDirectory(dir, pattern string, recursive bool, speed readtime.ReadSpeed, asJSON bool, logLevel string) {
	logger, err := logging.New("readtime", logLevel, "console")
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}

	svc, err := readtime.NewService(readtime.ServiceConfig{
		BasePath:  dir,
		Pattern:   pattern,
		Recursive: recursive,
		Speed:     speed,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("configure service: %v", err)
	}

	results, err := svc.EstimateDirectory(context.Background(), ".")
	if err != nil {
		log.Fatalf("estimate directory %s: %v", dir, err)
	}

	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			log.Fatalf("encode results: %v", err)
		}
		return
	}

	printTable(results)
}

func printOne(rt readtime.ReadTime, asJSON bool) {
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(rt); err != nil {
			log.Fatalf("encode result: %v", err)
		}
		return
	}
	fmt.Printf("%s (%d words, %d images, %d code blocks)\n",
		rt.Formatted, rt.WordCount, rt.ImageCount, rt.CodeBlockCount)
}

// printTable aligns the path column with display widths rather than byte or
// rune lengths so CJK file names keep the columns straight.
func printTable(results []*readtime.FileReadTime) {
	width := 0
	for _, result := range results {
		if w := runewidth.StringWidth(result.Path); w > width {
			width = w
		}
	}

	for _, result := range results {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(result.Path))
		fmt.Printf("%s%s  %-8s %6d words %4d images %4d code blocks\n",
			result.Path, pad, result.Formatted,
			result.WordCount, result.ImageCount, result.CodeBlockCount)
	}
}
