package mirror

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"smartlandlord/internal/domain"
)

// Action 镜像写操作类型
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Envelope 写路径信封：POST {action, data}
type Envelope struct {
	Action Action         `json:"action"`
	Data   map[string]any `json:"data"`
}

// Client 远端镜像（试算表脚本端点）客户端。
// 写路径 best-effort：响应体不做解析，调用方只关心传输层错误。
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{httpClient: client, logger: logger}
}

// Push 向集合端点发送一条写信封
func (c *Client) Push(ctx context.Context, collection string, action Action, data map[string]any) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(Envelope{Action: action, Data: data}).
		Post("/" + collection)
	if err != nil {
		return fmt.Errorf("failed to push %s to mirror %q: %w", action, collection, err)
	}
	if resp.IsError() {
		return fmt.Errorf("mirror %q rejected %s: status %d", collection, action, resp.StatusCode())
	}
	return nil
}

// FetchTenants 读路径：GET 租客集合，宽松映射（缺字段给默认值）。
// 只在启动时调用一次；非空结果会整体覆盖本地租客集合。
func (c *Client) FetchTenants(ctx context.Context) ([]domain.Tenant, error) {
	var rows []map[string]any
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&rows).
		Get("/tenants")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tenants from mirror: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("mirror tenants fetch failed: status %d", resp.StatusCode())
	}

	out := make([]domain.Tenant, 0, len(rows))
	for _, row := range rows {
		t := domain.Tenant{
			ID:           stringField(row, "id"),
			Name:         stringField(row, "name"),
			RoomNumber:   stringField(row, "roomNumber"),
			Phone:        stringField(row, "phone"),
			Email:        stringField(row, "email"),
			MoveInDate:   stringField(row, "moveInDate"),
			LeaseEndDate: stringField(row, "leaseEndDate"),
			RentAmount:   intField(row, "rentAmount"),
			Deposit:      intField(row, "deposit"),
			IDNumber:     stringField(row, "idNumber"),
		}
		if t.ID == "" {
			t.ID = domain.NewID("t")
		}
		out = append(out, t)
	}
	return out, nil
}

func stringField(row map[string]any, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

// intField 镜像返回的数字可能是 float64 或字符串形式
func intField(row map[string]any, key string) int {
	switch v := row[key].(type) {
	case float64:
		return int(v)
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n
		}
	}
	return 0
}
