package health

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// HTTPChecker is up when GET on the URL answers below 500.
type HTTPChecker struct {
	name   string
	url    string
	client *resty.Client
}

func NewHTTPChecker(name, url string) *HTTPChecker {
	return &HTTPChecker{
		name:   name,
		url:    url,
		client: resty.New().SetTimeout(DefaultTimeout),
	}
}

func (c *HTTPChecker) Name() string {
	return c.name
}

func (c *HTTPChecker) Check(ctx context.Context) Result {
	resp, err := c.client.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return Down(err.Error())
	}
	if resp.StatusCode() >= 500 {
		return Down(fmt.Sprintf("status %d", resp.StatusCode()))
	}
	return Up()
}
