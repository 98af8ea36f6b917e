package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmatushkin/shoppingmaniac-sync/internal/logger"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/utils"
	"github.com/dmatushkin/shoppingmaniac-sync/models"
	"github.com/go-resty/resty/v2"
)

const requestTokenTTL = 2 * time.Minute

// HTTPRemoteConfig holds the settings of the HTTP remote store client.
type HTTPRemoteConfig struct {
	// BaseURL is the record store endpoint, e.g. "https://store.example.com".
	BaseURL string
	// Container is the application container the records live in.
	Container string
	// APIKeyID and APIKeySecret sign the per-request auth token.
	APIKeyID     string
	APIKeySecret string
	// Timeout bounds each outbound request.
	Timeout time.Duration
}

type httpRemoteStore struct {
	client    *resty.Client
	container string
	keyID     string
	keySecret string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs the HTTP/JSON implementation of [RemoteStore].
// It normalises and validates the base URL and configures the underlying
// client with the container-scoped path prefix and request timeout.
func NewHTTPRemoteStore(cfg HTTPRemoteConfig, log *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote store address: %w", err)
	}
	if cfg.Container == "" {
		return nil, fmt.Errorf("remote store container is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL + "/database/v1/" + url.PathEscape(cfg.Container)).
		SetTimeout(cfg.Timeout)

	return &httpRemoteStore{
		client:    cli,
		container: cfg.Container,
		keyID:     cfg.APIKeyID,
		keySecret: cfg.APIKeySecret,
		logger:    log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// Wire types. The store speaks plain JSON; failures arrive as errorEnvelope
// at call level, per zone and per record.

type lookupRequest struct {
	Records []models.RecordID `json:"records"`
}

type recordFailure struct {
	RecordName string         `json:"recordName"`
	Error      *errorEnvelope `json:"error"`
}

type recordsResponse struct {
	Records  []models.Record `json:"records"`
	Failures []recordFailure `json:"failures,omitempty"`
}

type modifyRequest struct {
	Records []models.Record `json:"records"`
}

type databaseChangesRequest struct {
	Token models.ChangeToken `json:"token,omitempty"`
}

type databaseChangesResponse struct {
	ChangedZones []models.ZoneID    `json:"changedZones"`
	Token        models.ChangeToken `json:"token,omitempty"`
	MoreComing   bool               `json:"moreComing"`
	Error        *errorEnvelope     `json:"error,omitempty"`
}

type zoneChangesRequest struct {
	Zones []ZoneFetchConfig `json:"zones"`
}

type zoneResult struct {
	Zone       models.ZoneID      `json:"zone"`
	Token      models.ChangeToken `json:"token,omitempty"`
	MoreComing bool               `json:"moreComing"`
	Error      *errorEnvelope     `json:"error,omitempty"`
}

type zoneChangesResponse struct {
	Records []models.Record `json:"records"`
	Zones   []zoneResult    `json:"zones"`
	Error   *errorEnvelope  `json:"error,omitempty"`
}

type zoneModifyRequest struct {
	Zone models.ZoneID `json:"zone"`
}

type zoneModifyResponse struct {
	Zone models.ZoneID `json:"zone"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type subscriptionsRequest struct {
	Subscriptions []Subscription `json:"subscriptions"`
}

// FetchRecords implements [RemoteStore]. Per-record failures are logged at
// warn and skipped; only call-level failures are returned.
func (h *httpRemoteStore) FetchRecords(ctx context.Context, ids []models.RecordID, scope models.Scope) ([]models.Record, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	resp, err := h.authedRequest(ctx).
		SetBody(lookupRequest{Records: ids}).
		Post(h.scopePath(scope, "/records/lookup"))
	if err != nil {
		return nil, fmt.Errorf("lookup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rr recordsResponse
	if err = json.Unmarshal(resp.Body(), &rr); err != nil {
		return nil, fmt.Errorf("decode lookup response: %w", err)
	}

	h.logRecordFailures("lookup", rr.Failures)
	return rr.Records, nil
}

// ModifyRecords implements [RemoteStore].
func (h *httpRemoteStore) ModifyRecords(ctx context.Context, records []models.Record, scope models.Scope) ([]models.Record, error) {
	if len(records) == 0 {
		return nil, nil
	}

	resp, err := h.authedRequest(ctx).
		SetBody(modifyRequest{Records: records}).
		Post(h.scopePath(scope, "/records/modify"))
	if err != nil {
		return nil, fmt.Errorf("modify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rr recordsResponse
	if err = json.Unmarshal(resp.Body(), &rr); err != nil {
		return nil, fmt.Errorf("decode modify response: %w", err)
	}

	h.logRecordFailures("modify", rr.Failures)
	return rr.Records, nil
}

// FetchDatabaseChanges implements [RemoteStore]. The returned page carries
// whatever zones were reported before a mid-call failure, so the caller can
// keep accumulating across retries.
func (h *httpRemoteStore) FetchDatabaseChanges(ctx context.Context, scope models.Scope, token models.ChangeToken) (DatabaseChangePage, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(databaseChangesRequest{Token: token}).
		Post(h.scopePath(scope, "/changes/database"))
	if err != nil {
		return DatabaseChangePage{}, fmt.Errorf("database changes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return DatabaseChangePage{}, err
	}

	var dr databaseChangesResponse
	if err = json.Unmarshal(resp.Body(), &dr); err != nil {
		return DatabaseChangePage{}, fmt.Errorf("decode database changes response: %w", err)
	}

	page := DatabaseChangePage{
		ChangedZones: dr.ChangedZones,
		Token:        dr.Token,
		MoreComing:   dr.MoreComing,
	}
	if remoteErr := dr.Error.toRemoteError(); remoteErr != nil {
		return page, remoteErr
	}
	return page, nil
}

// FetchZoneChanges implements [RemoteStore]. Per-zone errors travel inside
// the page as ZoneFetchResult.Err; a body-level error envelope fails the
// whole call while still returning the observed records.
func (h *httpRemoteStore) FetchZoneChanges(ctx context.Context, scope models.Scope, configs []ZoneFetchConfig) (ZoneChangePage, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(zoneChangesRequest{Zones: configs}).
		Post(h.scopePath(scope, "/changes/zone"))
	if err != nil {
		return ZoneChangePage{}, fmt.Errorf("zone changes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return ZoneChangePage{}, err
	}

	var zr zoneChangesResponse
	if err = json.Unmarshal(resp.Body(), &zr); err != nil {
		return ZoneChangePage{}, fmt.Errorf("decode zone changes response: %w", err)
	}

	page := ZoneChangePage{Records: zr.Records}
	for _, zone := range zr.Zones {
		result := ZoneFetchResult{
			Zone:       zone.Zone,
			Token:      zone.Token,
			MoreComing: zone.MoreComing,
		}
		if remoteErr := zone.Error.toRemoteError(); remoteErr != nil {
			result.Err = remoteErr
		}
		page.Zones = append(page.Zones, result)
	}

	if remoteErr := zr.Error.toRemoteError(); remoteErr != nil {
		return page, remoteErr
	}
	return page, nil
}

// AcceptShare implements [RemoteStore].
func (h *httpRemoteStore) AcceptShare(ctx context.Context, meta models.ShareMetadata) (models.ShareMetadata, error) {
	var accepted models.ShareMetadata

	resp, err := h.authedRequest(ctx).
		SetBody(meta).
		SetResult(&accepted).
		Post("/shares/accept")
	if err != nil {
		return models.ShareMetadata{}, fmt.Errorf("accept share request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShareMetadata{}, err
	}

	return accepted, nil
}

// AccountStatus implements [RemoteStore].
func (h *httpRemoteStore) AccountStatus(ctx context.Context) (models.AccountStatus, error) {
	var sr statusResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&sr).
		Get("/account/status")
	if err != nil {
		return models.AccountStatusCouldNotDetermine, fmt.Errorf("account status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountStatusCouldNotDetermine, err
	}

	return models.AccountStatus(sr.Status), nil
}

// PermissionStatus implements [RemoteStore].
func (h *httpRemoteStore) PermissionStatus(ctx context.Context, kind models.PermissionKind) (models.PermissionStatus, error) {
	var sr statusResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&sr).
		Get("/account/permissions/" + url.PathEscape(string(kind)))
	if err != nil {
		return models.PermissionStatusCouldNotComplete, fmt.Errorf("permission status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PermissionStatusCouldNotComplete, err
	}

	return models.PermissionStatus(sr.Status), nil
}

// RequestPermission implements [RemoteStore].
func (h *httpRemoteStore) RequestPermission(ctx context.Context, kind models.PermissionKind) (models.PermissionStatus, error) {
	var sr statusResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&sr).
		Post("/account/permissions/" + url.PathEscape(string(kind)) + "/request")
	if err != nil {
		return models.PermissionStatusCouldNotComplete, fmt.Errorf("request permission request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PermissionStatusCouldNotComplete, err
	}

	return models.PermissionStatus(sr.Status), nil
}

// SaveZone implements [RemoteStore].
func (h *httpRemoteStore) SaveZone(ctx context.Context, zone models.ZoneID, scope models.Scope) (models.ZoneID, error) {
	var zr zoneModifyResponse

	resp, err := h.authedRequest(ctx).
		SetBody(zoneModifyRequest{Zone: zone}).
		SetResult(&zr).
		Post(h.scopePath(scope, "/zones/modify"))
	if err != nil {
		return models.ZoneID{}, fmt.Errorf("save zone request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ZoneID{}, err
	}

	return zr.Zone, nil
}

// UpdateSubscriptions implements [RemoteStore].
func (h *httpRemoteStore) UpdateSubscriptions(ctx context.Context, subs []Subscription, scope models.Scope) error {
	resp, err := h.authedRequest(ctx).
		SetBody(subscriptionsRequest{Subscriptions: subs}).
		Post(h.scopePath(scope, "/subscriptions/modify"))
	if err != nil {
		return fmt.Errorf("update subscriptions request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) scopePath(scope models.Scope, suffix string) string {
	return "/" + url.PathEscape(string(scope)) + suffix
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	token, err := utils.GenerateRequestToken(h.keyID, h.keySecret, requestTokenTTL)
	if err != nil {
		h.logger.Warn().Err(err).Msg("could not sign request token, sending unauthenticated request")
		return req
	}

	return req.SetHeader("Authorization", "Bearer "+token)
}

func (h *httpRemoteStore) logRecordFailures(op string, failures []recordFailure) {
	for _, failure := range failures {
		if failure.Error == nil {
			continue
		}
		h.logger.Warn().
			Str("op", op).
			Str("record", failure.RecordName).
			Str("code", string(failure.Error.Code)).
			Str("message", failure.Error.Message).
			Msg("record skipped by remote store")
	}
}
