package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parsePages parses a page list such as "1,3-5,9". An empty list selects
// every page and yields nil.
func parsePages(list string) ([]int, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil, nil
	}

	var pages []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid page %q", part)
		}
		end := start
		if isRange {
			end, err = strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
		}
		if start < 1 || end < start {
			return nil, fmt.Errorf("invalid page range %q", part)
		}
		for p := start; p <= end; p++ {
			pages = append(pages, p)
		}
	}
	return pages, nil
}
