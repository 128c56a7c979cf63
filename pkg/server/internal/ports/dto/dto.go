// Package dto holds the request and response bodies of the HTTP API.
package dto

// Error is the body of every non-2xx response produced by the server itself.
type Error struct {
	Message string `json:"message"`
}

// ResolveGatewayURLResponse carries the gateway URL a content URI resolved to.
type ResolveGatewayURLResponse struct {
	URI string `json:"uri"`
	URL string `json:"url"`
}

// IDsRequest is the body of batch read requests. Identifiers are decimal strings.
type IDsRequest struct {
	IDs []string `json:"ids"`
}

// UploadResponse carries the content URI of a stored document.
type UploadResponse struct {
	URI string `json:"uri"`
}

// UploadBatchRequest is the body of batch upload requests.
type UploadBatchRequest struct {
	Documents []map[string]any `json:"documents"`
}

// UploadBatchResponse carries the content URIs of stored documents in request order.
type UploadBatchResponse struct {
	URIs []string `json:"uris"`
}

// NetworkResponse describes the chain the server reads from.
type NetworkResponse struct {
	RPCURL    string `json:"rpcUrl"`
	ChainID   string `json:"chainId"`
	TokenName string `json:"tokenName"`
	Label     string `json:"label"`
}
