package apiclient

import (
	"context"
	"errors"
	"net/http"
)

func (c *Client) Sliders(ctx context.Context) ([]SliderImage, error) {
	out := []SliderImage{}
	if err := c.do(ctx, http.MethodGet, "sliders/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Videos(ctx context.Context) ([]HomeVideo, error) {
	out := []HomeVideo{}
	if err := c.do(ctx, http.MethodGet, "videos/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// About returns the current about page. When the dedicated endpoint fails the
// first entry of the list endpoint is used instead; an empty list yields
// ErrNotFound.
func (c *Client) About(ctx context.Context) (AboutPage, error) {
	var page AboutPage
	err := c.do(ctx, http.MethodGet, "about/current/", nil, nil, &page)
	if err == nil {
		return page, nil
	}

	var pages []AboutPage
	if listErr := c.do(ctx, http.MethodGet, "about/", nil, nil, &pages); listErr != nil {
		return AboutPage{}, errors.Join(err, listErr)
	}
	if len(pages) == 0 {
		return AboutPage{}, ErrNotFound
	}
	return pages[0], nil
}

// SendMessage submits a contact form message.
func (c *Client) SendMessage(ctx context.Context, msg ContactMessage) (MessageCreated, error) {
	var out MessageCreated
	if err := c.do(ctx, http.MethodPost, "messages/", nil, msg, &out); err != nil {
		return MessageCreated{}, err
	}
	return out, nil
}
