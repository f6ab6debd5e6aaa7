package requests

import "strings"

// ListFilesRequest represents a file listing request. Ascending is
// optional; when absent the listing keeps the store's natural order.
// Types is a comma-separated extension filter.
type ListFilesRequest struct {
	Ascending *bool  `query:"ascending"`
	Types     string `query:"types"`
}

// TypeFilter returns the requested type set, empty when no filter applies
func (r *ListFilesRequest) TypeFilter() []string {
	if r.Types == "" {
		return nil
	}

	var types []string
	for _, t := range strings.Split(r.Types, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}
