package crmapi

import (
	"context"
	"encoding/json"
)

// Page is one page of a DRF-paginated collection.
type Page struct {
	Count   int               `json:"count"`
	Next    *string           `json:"next"`
	Results []json.RawMessage `json:"results"`
}

// Pager walks a paginated collection by following `next` links. Each call
// to Paginate starts from the first page; nothing is fetched until Next is
// called.
type Pager struct {
	c    *Client
	next string
	done bool
}

func (c *Client) Paginate(path string) *Pager {
	return &Pager{c: c, next: path}
}

// Next fetches the next page. more is false once the collection is
// exhausted; after that every call returns (nil, false, nil).
func (p *Pager) Next(ctx context.Context) (results []json.RawMessage, more bool, err error) {
	if p.done {
		return nil, false, nil
	}

	var page Page
	if err := p.c.get(ctx, p.next, &page); err != nil {
		p.done = true
		return nil, false, err
	}

	if page.Next == nil || *page.Next == "" {
		p.done = true
	} else {
		p.next = *page.Next
	}
	return page.Results, !p.done, nil
}

// FetchAll drains a pager and decodes every result into T. Collections
// here are small (apartments and clients of one office), so eager
// collection is fine.
func FetchAll[T any](ctx context.Context, p *Pager) ([]T, error) {
	var out []T
	for {
		results, more, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range results {
			var item T
			if err := json.Unmarshal(raw, &item); err != nil {
				return nil, err
			}
			out = append(out, item)
		}
		if !more {
			return out, nil
		}
	}
}
