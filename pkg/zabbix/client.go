package zabbix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Anitha-Arun/Zabbix-Inventory-Manager/pkg/config"
)

const apiPath = "/api_jsonrpc.php"

// ErrNotFound reports that a lookup succeeded but matched nothing. It is
// distinct from transport or API failures so callers can tell absence apart
// from a broken call.
var ErrNotFound = errors.New("zabbix: not found")

// Client interacts with the Zabbix JSON-RPC API.
type Client struct {
	cfg        config.ZabbixConfig
	apiURL     string
	httpClient *http.Client
	token      string
}

// NewClient builds a Zabbix client. Login must be called before any other
// operation.
func NewClient(cfg config.ZabbixConfig) *Client {
	return &Client{cfg: cfg, apiURL: sanitizeBaseURL(cfg.URL) + apiPath, httpClient: &http.Client{}}
}

// Host is the payload submitted to host.create.
type Host struct {
	Name       string
	GroupID    string
	Model      string
	Serial     string
	MAC        string
	AssignedTo string
	Condition  string
	Team       string
	Owner      string
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	Auth    string      `json:"auth,omitempty"`
	ID      string      `json:"id"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("zabbix api error %d: %s %s", e.Code, e.Message, e.Data)
}

// Login authenticates with user.login and stores the session token.
func (c *Client) Login(ctx context.Context) error {
	params := map[string]string{
		"username": c.cfg.Username,
		"password": c.cfg.Password,
	}
	var token string
	if err := c.call(ctx, "user.login", params, &token); err != nil {
		return errors.Wrap(err, "login")
	}
	if token == "" {
		return errors.New("login: empty auth token")
	}
	c.token = token
	return nil
}

// GroupID resolves a host group by exact name, creating it when absent.
func (c *Client) GroupID(ctx context.Context, name string) (string, error) {
	params := map[string]interface{}{
		"filter": map[string]string{"name": name},
	}
	var groups []struct {
		GroupID string `json:"groupid"`
	}
	if err := c.call(ctx, "hostgroup.get", params, &groups); err != nil {
		return "", errors.Wrapf(err, "get group %q", name)
	}
	if len(groups) > 0 {
		return groups[0].GroupID, nil
	}
	return c.createGroup(ctx, name)
}

func (c *Client) createGroup(ctx context.Context, name string) (string, error) {
	params := map[string]string{"name": name}
	var result struct {
		GroupIDs []string `json:"groupids"`
	}
	if err := c.call(ctx, "hostgroup.create", params, &result); err != nil {
		return "", errors.Wrapf(err, "create group %q", name)
	}
	if len(result.GroupIDs) == 0 {
		return "", errors.Errorf("create group %q: no group id returned", name)
	}
	return result.GroupIDs[0], nil
}

// CreateHost submits a new host record. It never checks whether a host with
// the same name already exists.
func (c *Client) CreateHost(ctx context.Context, h Host) error {
	params := map[string]interface{}{
		"host":           h.Name,
		"groups":         []map[string]string{{"groupid": h.GroupID}},
		"inventory_mode": 1,
		"inventory": map[string]string{
			"type":         h.Model,
			"serialno_a":   h.Serial,
			"macaddress_a": h.MAC,
			"location":     h.AssignedTo,
			"notes":        h.Condition,
			"site_notes":   h.Team,
			"contact":      h.Owner,
		},
	}
	var result struct {
		HostIDs []string `json:"hostids"`
	}
	if err := c.call(ctx, "host.create", params, &result); err != nil {
		return errors.Wrapf(err, "create host %q", h.Name)
	}
	if len(result.HostIDs) == 0 {
		return errors.Errorf("create host %q: no host id returned", h.Name)
	}
	return nil
}

// HostID looks up an existing host by name. It returns ErrNotFound when no
// host matches. The sync flow does not call this; host creation is
// deliberately at-least-once.
func (c *Client) HostID(ctx context.Context, hostname string) (string, error) {
	params := map[string]interface{}{
		"filter": map[string]string{"host": hostname},
	}
	var hosts []struct {
		HostID string `json:"hostid"`
	}
	if err := c.call(ctx, "host.get", params, &hosts); err != nil {
		return "", errors.Wrapf(err, "get host %q", hostname)
	}
	if len(hosts) == 0 {
		return "", ErrNotFound
	}
	return hosts[0].HostID, nil
}

func (c *Client) call(ctx context.Context, method string, params, result interface{}) error {
	if c.token == "" && method != "user.login" {
		return errors.New("not authenticated")
	}
	payload := rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      uuid.NewString(),
	}
	if method != "user.login" {
		payload.Auth = c.token
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json-rpc")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("%s failed: %s", method, resp.Status)
	}
	var decoded rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return errors.Wrapf(err, "decode %s response", method)
	}
	if decoded.Error != nil {
		return decoded.Error
	}
	if decoded.Result == nil {
		return errors.Errorf("%s response missing result", method)
	}
	if result != nil {
		if err := json.Unmarshal(decoded.Result, result); err != nil {
			return errors.Wrapf(err, "unmarshal %s result", method)
		}
	}
	return nil
}

func sanitizeBaseURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	return strings.TrimRight(trimmed, "/")
}
