// Package cursor implements the opaque paging cursors of list endpoints
package cursor

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
)

type Cursor struct {
	Start    int
	PageSize int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 500
)

// DecodeFromRequest reads the cursor from the "c" query parameter. A page
// size given with "p" takes precedence over the one in the cursor.
func DecodeFromRequest(r *http.Request) Cursor {
	cursor := DecodeFromString(r.URL.Query().Get("c"), DefaultPageSize)
	if pageSizeStr := r.URL.Query().Get("p"); pageSizeStr != "" {
		if pageSize, err := strconv.Atoi(pageSizeStr); err == nil && pageSize > 0 {
			cursor.PageSize = pageSize
		}
	}
	if cursor.PageSize > MaxPageSize {
		cursor.PageSize = MaxPageSize
	}
	return cursor
}

func DecodeFromString(encoded string, defaultPageSize int) Cursor {
	cursor := Cursor{PageSize: defaultPageSize}
	if encoded == "" {
		return cursor
	}
	asJSON, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return cursor
	}
	if err := json.Unmarshal(asJSON, &cursor); err != nil {
		return Cursor{PageSize: defaultPageSize}
	}
	if cursor.Start < 0 {
		cursor.Start = 0
	}
	if cursor.PageSize <= 0 {
		cursor.PageSize = defaultPageSize
	}
	return cursor
}

func (c Cursor) Encode() string {
	asJSON, err := json.Marshal(&c)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(asJSON)
}

func (c Cursor) Previous() (Cursor, bool) {
	if c.Start > 0 {
		start := c.Start - c.PageSize
		if start < 0 {
			start = 0
		}
		return Cursor{Start: start, PageSize: c.PageSize}, true
	}
	return Cursor{}, false
}

func (c Cursor) Next() (Cursor, bool) {
	return Cursor{Start: c.Start + c.PageSize, PageSize: c.PageSize}, true
}
