package views

import (
	"fmt"
)

type Links map[string]string

func (l Links) Add(name, link string) Links {
	l[name] = link
	return l
}

func (l Links) AddAll(links Links) Links {
	for k, v := range links {
		l[k] = v
	}
	return l
}

type LinkProvider struct {
	patterns map[string]string
}

func (p LinkProvider) LinksFor(id interface{}) Links {
	links := make(Links)
	for name, pattern := range p.patterns {
		links[name] = fmt.Sprintf(pattern, id)
	}
	return links
}
