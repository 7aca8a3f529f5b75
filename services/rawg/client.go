package rawg

import (
	"backend/config"
	"backend/utils"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound 上游返回404，属于预期内的终态，调用方跳过该资源而不算作故障
var ErrNotFound = errors.New("RAWG资源不存在")

// Client RAWG接口客户端，负责凭证注入、重试退避和状态码分类
type Client struct {
	baseURL       string
	apiKey        string
	httpClient    *http.Client
	maxRetries    int
	retryBackoff  time.Duration
	retryAfter429 time.Duration
}

// NewClient 从显式配置构建客户端
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:       cfg.APIBase,
		apiKey:        cfg.APIKey,
		httpClient:    &http.Client{Timeout: cfg.RequestTimeout},
		maxRetries:    cfg.MaxRetries,
		retryBackoff:  cfg.RetryBackoff,
		retryAfter429: cfg.RetryAfter429,
	}
}

// Get 请求 baseURL+path 并把JSON响应解码进out
// 状态码分类：200解码返回；404返回ErrNotFound且不重试；
// 429等待固定长间隔后重试；5xx按尝试次数递增短退避后重试；
// 其余状态码立即作为硬失败返回，调用方视为"这次抓取没有发生"
func (c *Client) Get(path string, query url.Values, out interface{}) error {
	q := url.Values{}
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("key", c.apiKey)
	fullURL := c.baseURL + path + "?" + q.Encode()

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		resp, err := c.httpClient.Get(fullURL)
		if err != nil {
			// 网络层错误按可重试处理
			utils.LogError(fmt.Sprintf("RAWG请求出错(第%d次): %s", attempt, path), err)
			time.Sleep(c.retryBackoff * time.Duration(attempt))
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("读取RAWG响应失败: %s: %v", path, err)
			}
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("解析RAWG响应失败: %s: %v", path, err)
			}
			return nil

		case resp.StatusCode == http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound

		case resp.StatusCode == http.StatusTooManyRequests:
			resp.Body.Close()
			utils.LogInfo(fmt.Sprintf("RAWG限流，等待%s后重试: %s", c.retryAfter429, path))
			time.Sleep(c.retryAfter429)

		case resp.StatusCode >= 500 && resp.StatusCode <= 504:
			resp.Body.Close()
			time.Sleep(c.retryBackoff * time.Duration(attempt))

		default:
			resp.Body.Close()
			return fmt.Errorf("RAWG请求失败: %s 状态码%d", path, resp.StatusCode)
		}
	}
	return fmt.Errorf("RAWG请求重试耗尽: %s", path)
}
