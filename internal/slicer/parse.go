package slicer

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// weightLineMarker is the label the engine prints ahead of the filament mass
// figure in its G-code comments.
const weightLineMarker = "total filament used [g]"

var numberPattern = regexp.MustCompile(`([\d.]+)`)

// ParseFilamentWeight scans engine output for the labeled filament mass
// figure. All text-scraping fragility of the engine's output format lives
// here; callers only see a number or ErrWeightNotFound.
func ParseFilamentWeight(r io.Reader) (float64, error) {
	scanner := bufio.NewScanner(r)
	// G-code lines are short, but the default buffer is raised in case the
	// engine emits long comment lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, weightLineMarker) {
			continue
		}
		match := numberPattern.FindString(line[strings.Index(line, weightLineMarker)+len(weightLineMarker):])
		if match == "" {
			continue
		}
		grams, err := strconv.ParseFloat(match, 64)
		if err != nil {
			continue
		}
		return grams, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, ErrWeightNotFound
}
