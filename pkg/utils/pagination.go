package utils

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePaginationParams reads page and pageSize from the query string.
// Missing or unusable values fall back to the defaults, and pageSize is
// capped at MaxPageSize, so the derived skip offset can never go negative.
func ParsePaginationParams(values url.Values) (page int, pageSize int) {
	page = DefaultPage
	pageSize = DefaultPageSize

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	if sizeStr := values.Get("pageSize"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 {
			if s > MaxPageSize {
				pageSize = MaxPageSize
			} else {
				pageSize = s
			}
		}
	}

	return page, pageSize
}
