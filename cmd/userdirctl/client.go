package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type Client struct {
	baseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

func (c *Client) Get(path string, out interface{}) error {
	resp, err := http.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return parseResponse(resp, out)
}

func parseResponse(resp *http.Response, out interface{}) error {
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		// Error bodies are a bare JSON string.
		var msg string
		if err := json.Unmarshal(b, &msg); err != nil || msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("server error: %s", msg)
	}
	if out != nil {
		return json.Unmarshal(b, out)
	}
	return nil
}
