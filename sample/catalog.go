package sample

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ErrEmptyCatalog is returned when a catalog file holds no usable items
var ErrEmptyCatalog = errors.New("catalog has no items")

// Pattern matches "## Title"
var headingPattern = regexp.MustCompile(`^##\s+(.+?)\s*$`)

// Pattern matches "![alt](image-ref)"
var imagePattern = regexp.MustCompile(`^!\[[^\]]*\]\(([^)\s]+)\)\s*$`)

// ParseFile reads a markdown catalog:
//
//	## Title
//	![](image-ref)
//	Description text, possibly over
//	several lines.
//
// Headings without a description are skipped. Items with no image get a
// handle derived from the title.
func ParseFile(path string) ([]Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open catalog")
	}
	defer file.Close()

	var items []Item
	var current *Item
	var desc []string

	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.Join(desc, " ")
		if current.Description != "" {
			if current.Image == "" {
				current.Image = ImageRef(strings.ToLower(current.Title))
			}
			items = append(items, *current)
		}
		current = nil
		desc = nil
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			current = &Item{Title: m[1]}
			continue
		}
		if current == nil || line == "" {
			continue
		}
		if m := imagePattern.FindStringSubmatch(line); m != nil && len(desc) == 0 {
			current.Image = ImageRef(m[1])
			continue
		}
		desc = append(desc, line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading catalog")
	}
	if len(items) == 0 {
		return nil, errors.Wrap(ErrEmptyCatalog, path)
	}

	return items, nil
}
