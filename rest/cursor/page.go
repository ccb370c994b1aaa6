package cursor

import (
	"net/url"
)

type Link struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type Page struct {
	Data  interface{} `json:"data"`
	Links []Link      `json:"links,omitempty"`
}

// PageFor wraps data with links to the previous and next pages of the
// resource at base, other query parameters of base are kept
func PageFor(data interface{}, base *url.URL, cursor Cursor, hasMore bool) (page Page) {
	page.Data = data
	if previous, exists := cursor.Previous(); exists {
		page.Links = append(page.Links, Link{"previous", linkTo(base, previous)})
	}
	if next, exists := cursor.Next(); exists && hasMore {
		page.Links = append(page.Links, Link{"next", linkTo(base, next)})
	}
	return
}

func linkTo(base *url.URL, c Cursor) string {
	q := base.Query()
	q.Set("c", c.Encode())
	q.Del("p")
	link := url.URL{Path: base.Path, RawQuery: q.Encode()}
	return link.String()
}

func Unpaged(data interface{}) (page Page) {
	return Page{Data: data}
}
