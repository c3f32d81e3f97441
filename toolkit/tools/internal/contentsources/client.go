// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package contentsources talks to the content-sources service that stores the custom
// repositories of an organization.
package contentsources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/logger"
)

const (
	bulkImportPath = "/repositories/bulk_import/"

	defaultTimeout = 30 * time.Second

	// Longest part of an error response kept in the returned error.
	maxErrorBodyLength = 1024
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the content-sources API rooted at baseURL
// (e.g. https://console.redhat.com/api/content-sources/v1). httpClient may be nil.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
		}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BulkImportRepositories creates the repositories in one request. Repositories the service
// already knows are returned by the service as they are.
func (c *Client) BulkImportRepositories(ctx context.Context, repositories []blueprintapi.ContentSource) error {
	if len(repositories) == 0 {
		return nil
	}

	for i, repository := range repositories {
		err := repository.IsValid()
		if err != nil {
			return fmt.Errorf("invalid repository at index %d:\n%w", i, err)
		}
	}

	body, err := json.Marshal(repositories)
	if err != nil {
		return fmt.Errorf("failed to encode repositories:\n%w", err)
	}

	url := c.baseURL + bulkImportPath
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create bulk import request:\n%w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	logger.Log.Debugf("Importing (%d) repositories to (%s)", len(repositories), url)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("failed to send bulk import request:\n%w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		responseBody, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyLength))
		return fmt.Errorf("bulk import failed with status (%s): %s", response.Status,
			strings.TrimSpace(string(responseBody)))
	}

	var imported []ImportedRepository
	err = json.NewDecoder(response.Body).Decode(&imported)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to decode bulk import response:\n%w", err)
	}

	for _, repository := range imported {
		for _, warning := range repository.Warnings {
			logger.Log.Warnf("Repository (%s): %s", repository.URL, warning.Description())
		}
	}

	return nil
}
