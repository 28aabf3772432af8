package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokProbeAttempts = 10
	ngrokProbeInterval = 3 * time.Second
)

type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL queries the ngrok local API for a public tunnel URL,
// preferring HTTPS. It retries while ngrok is still starting up.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	for attempt := 1; ; attempt++ {
		url, err := probeNgrok(ctx, client, ngrokAPIBase)
		if err == nil {
			return url, nil
		}
		if attempt >= ngrokProbeAttempts {
			return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokProbeAttempts, err)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(ngrokProbeInterval):
		}
	}
}

func probeNgrok(ctx context.Context, client *http.Client, apiBase string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"/api/tunnels", nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", err
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", fmt.Errorf("no active tunnels")
}
