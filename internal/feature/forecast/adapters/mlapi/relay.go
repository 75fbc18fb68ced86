package mlapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"pharma_backend/internal/feature/forecast/usecase"
)

// Relay は外部予測APIのレスポンスをそのまま中継するMLRelay実装です。
// ペイロードは型付きでデコードせず、生のJSONとして返します。
type Relay struct {
	cfg    Config
	client *http.Client
}

// RelayがMLRelayを実装していることをコンパイル時に検証します。
var _ usecase.MLRelay = (*Relay)(nil)

// NewRelay は指定された設定とHTTPクライアントでRelayの新しいインスタンスを生成します。
func NewRelay(cfg Config, client *http.Client) *Relay {
	return &Relay{cfg: cfg, client: client}
}

// Fetch は外部APIの /predict を呼び出し、レスポンスボディを検証せずに返します。
// HTTPエラー、タイムアウト、JSONとして不正なボディはエラーとして報告します。
func (r *Relay) Fetch(ctx context.Context, drug string, days int) ([]byte, error) {
	q := url.Values{}
	if drug != "" {
		q.Set("drug", drug)
	}
	q.Set("days", strconv.Itoa(days))

	u := fmt.Sprintf("%s/predict?%s", r.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("ml api http %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("ml api returned invalid json")
	}
	return body, nil
}
