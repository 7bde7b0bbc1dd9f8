package push

import (
	"StudyHub/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client 推送网关客户端，负责向用户设备下发提醒
type Client struct {
	httpClient *resty.Client
}

// Payload 推送网关请求体
type Payload struct {
	Endpoint string `json:"endpoint"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Tag      string `json:"tag,omitempty"`
}

func NewClient() *Client {
	pushCfg := config.Cfg.Push

	timeout := time.Duration(pushCfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(pushCfg.GatewayURL).
		SetTimeout(timeout).
		SetHeader("Authorization", "Bearer "+pushCfg.ApiKey)

	return &Client{httpClient: client}
}

// Send 下发一条推送，网关返回非 2xx 视为失败
func (s *Client) Send(ctx context.Context, payload *Payload) error {
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/v1/push")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("push gateway returned %s", resp.Status())
	}

	log.InfoContext(ctx, "Push delivered", "tag", payload.Tag, "status", resp.StatusCode())
	return nil
}
