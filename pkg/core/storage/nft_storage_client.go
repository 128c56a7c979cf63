package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/go-resty/resty/v2"
)

// DefaultEndpoint is the public NFT.Storage API.
const DefaultEndpoint = "https://api.nft.storage"

type nftStorageResponse struct {
	OK    bool `json:"ok"`
	Value struct {
		CID   string `json:"cid"`
		IPNFT string `json:"ipnft"`
		URL   string `json:"url"`
	} `json:"value"`
	Error *struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}

// NFTStorageClient talks to an NFT.Storage compatible API. Every call is a single
// attempt authenticated with the caller's API key.
type NFTStorageClient struct {
	client   *resty.Client
	endpoint string
}

// Store uploads a metadata object and returns the URI of its metadata.json document.
func (c *NFTStorageClient) Store(ctx context.Context, apiKey string, metadata any) (gateway.ContentURI, error) {
	meta, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}

	var body nftStorageResponse
	res, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(apiKey).
		SetMultipartFormData(map[string]string{"meta": string(meta)}).
		SetResult(&body).
		SetError(&body).
		Post(c.endpoint + "/store")
	if err != nil {
		return "", err
	}
	if err := checkResponse(res, &body); err != nil {
		return "", err
	}

	if body.Value.URL != "" {
		return gateway.ContentURI(body.Value.URL), nil
	}
	return gateway.ContentURI(gateway.Scheme + body.Value.IPNFT + "/metadata.json"), nil
}

// StoreBlob uploads raw bytes and returns the URI of the stored content.
func (c *NFTStorageClient) StoreBlob(ctx context.Context, apiKey string, data []byte, contentType string) (gateway.ContentURI, error) {
	var body nftStorageResponse
	res, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		SetResult(&body).
		SetError(&body).
		Post(c.endpoint + "/upload")
	if err != nil {
		return "", err
	}
	if err := checkResponse(res, &body); err != nil {
		return "", err
	}
	return gateway.ContentURI(gateway.Scheme + body.Value.CID), nil
}

// Delete removes the content identified by cid from the caller's account.
func (c *NFTStorageClient) Delete(ctx context.Context, apiKey, cid string) error {
	var body nftStorageResponse
	res, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(apiKey).
		SetPathParam("cid", cid).
		SetError(&body).
		Delete(c.endpoint + "/{cid}")
	if err != nil {
		return err
	}
	return checkResponse(res, &body)
}

func checkResponse(res *resty.Response, body *nftStorageResponse) error {
	if res.IsSuccess() && (body.OK || body.Error == nil) {
		return nil
	}

	apiErr := &APIError{StatusCode: res.StatusCode(), Name: "HTTPError", Message: res.Status()}
	if body.Error != nil {
		apiErr.Name = body.Error.Name
		apiErr.Message = body.Error.Message
	}
	return apiErr
}

// NewNFTStorageClient creates a client for the API at endpoint over the given resty client.
// Panics if the client is nil.
func NewNFTStorageClient(client *resty.Client, endpoint string) *NFTStorageClient {
	if client == nil {
		panic("http client is nil")
	}
	return &NFTStorageClient{client: client, endpoint: strings.TrimSuffix(endpoint, "/")}
}
