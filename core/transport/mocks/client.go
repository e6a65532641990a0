package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of transport.Client
type Client struct {
	mock.Mock
}

func (m *Client) GetJSON(ctx context.Context, url string, out any) error {
	args := m.Called(ctx, url, out)
	return args.Error(0)
}

func (m *Client) PostJSON(ctx context.Context, url string, body any, out any) error {
	args := m.Called(ctx, url, body, out)
	return args.Error(0)
}

func (m *Client) PutJSON(ctx context.Context, url string, body any, out any) error {
	args := m.Called(ctx, url, body, out)
	return args.Error(0)
}
