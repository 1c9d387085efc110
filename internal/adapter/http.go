package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/utils"
	"github.com/MKhiriev/go-shop-sync/models"
)

const filesRoute = "/api/files"

type httpRemoteStore struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs the REST implementation of [RemoteStore].
// The base URL is taken from cfg.HTTPAddress; a missing scheme defaults to
// http. cfg.Token, if set, is installed as the initial bearer token.
func NewHTTPRemoteStore(cfg config.ClientAdapter, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	store := &httpRemoteStore{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	store.SetToken(cfg.Token)

	return store, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// fileURL maps a document path to its route, escaping every segment.
func fileURL(path string) (string, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty file path", ErrBadRequest)
	}

	segments := strings.Split(trimmed, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return filesRoute + "/" + strings.Join(segments, "/"), nil
}

func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

// GetFile implements [RemoteStore] with GET /api/files/{path}.
func (h *httpRemoteStore) GetFile(ctx context.Context, path string) (models.RemoteFile, error) {
	route, err := fileURL(path)
	if err != nil {
		return models.RemoteFile{}, err
	}
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.RemoteFile{}, err
	}

	resp, err := req.Get(route)
	if err != nil {
		h.logger.Debug().Err(err).Str("path", path).Msg("get file request failed")
		return models.RemoteFile{}, fmt.Errorf("%w: get %s: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteFile{}, fmt.Errorf("get %s: %w", path, err)
	}

	var file models.RemoteFile
	if err = json.Unmarshal(resp.Body(), &file); err != nil {
		return models.RemoteFile{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	if file.Path == "" {
		file.Path = path
	}

	return file, nil
}

// PutFile implements [RemoteStore] with PUT /api/files/{path}. The request
// body is the raw document.
func (h *httpRemoteStore) PutFile(ctx context.Context, path string, data []byte) (models.RemoteFile, error) {
	if !json.Valid(data) {
		return models.RemoteFile{}, fmt.Errorf("%w: document at %s is not valid JSON", ErrBadRequest, path)
	}

	route, err := fileURL(path)
	if err != nil {
		return models.RemoteFile{}, err
	}
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.RemoteFile{}, err
	}

	resp, err := req.SetBody(data).Put(route)
	if err != nil {
		h.logger.Debug().Err(err).Str("path", path).Msg("put file request failed")
		return models.RemoteFile{}, fmt.Errorf("%w: put %s: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteFile{}, fmt.Errorf("put %s: %w", path, err)
	}

	var stored models.RemoteFile
	if len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), &stored); err != nil {
			return models.RemoteFile{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
		}
	}
	stored.Path = path
	stored.Data = append(json.RawMessage(nil), data...)

	return stored, nil
}

// DeleteFile implements [RemoteStore] with DELETE /api/files/{path}.
func (h *httpRemoteStore) DeleteFile(ctx context.Context, path string) error {
	route, err := fileURL(path)
	if err != nil {
		return err
	}
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete(route)
	if err != nil {
		return fmt.Errorf("%w: delete %s: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}

	return nil
}
