// Package apiはストアフロントのバックエンドREST APIクライアント。
// Bearerトークンの付与と、401時のrefresh→1回だけ再試行をここで行う。
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"storefront/internal/storage"
)

type Client struct {
	baseURL string
	http    *http.Client
	tokens  *Tokens

	//refresh不能で認証切れ確定したときに呼ばれる（ログイン画面への誘導相当）
	onAuthExpired func()
}

type ClientOption func(*Client)

func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

func WithAuthExpiredHook(fn func()) ClientOption {
	return func(c *Client) { c.onAuthExpired = fn }
}

func NewClient(baseURL string, store storage.Store, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  NewTokens(store),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Tokens() *Tokens { return c.tokens }

// ---- HTTP helpers ----

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	p := path
	if len(query) > 0 {
		p += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, p, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = b
	}
	return c.roundTrip(ctx, method, path, payload, "", out)
}

// roundTripはリクエスト送信の本体。
// 401を受けたら（まだ再試行していない場合のみ）refreshして1回だけやり直す。
func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, contentType string, out any) error {
	access := c.tokens.Access(ctx)

	//期限切れが分かっているトークンで送っても無駄なので先にrefreshする
	if access != "" && tokenExpired(access) && c.tokens.Refresh(ctx) != "" {
		if err := c.refreshAccess(ctx); err != nil {
			c.expireAuth(ctx)
			return err
		}
		access = c.tokens.Access(ctx)
	}

	status, respBody, err := c.send(ctx, method, path, payload, access, contentType)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		refresh := c.tokens.Refresh(ctx)
		if refresh == "" {
			return &Error{Status: status, Kind: KindUnauthorized, Body: respBody}
		}

		if err := c.refreshAccess(ctx); err != nil {
			c.expireAuth(ctx)
			return err
		}

		//新しいaccessトークンで1回だけ再試行
		status, respBody, err = c.send(ctx, method, path, payload, c.tokens.Access(ctx), contentType)
		if err != nil {
			return err
		}
		if status == http.StatusUnauthorized {
			c.expireAuth(ctx)
			return &Error{Status: status, Kind: KindUnauthorized, Body: respBody}
		}
	}

	if status >= 400 {
		return &Error{Status: status, Kind: kindFromStatus(status), Body: respBody}
	}

	return decodeInto(respBody, out)
}

// sendは1回ぶんの送受信。4xx/5xxもエラーにせずstatusとbodyを返す。
func (c *Client) send(ctx context.Context, method, path string, payload []byte, access, contentType string) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}

	if payload != nil {
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &Error{Status: 0, Kind: KindNetwork}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &Error{Status: 0, Kind: KindNetwork}
	}

	return resp.StatusCode, respBody, nil
}

// refreshAccessは/auth/token/refresh/を同期で呼んで新しいaccessを保存する。
// このリクエスト自体にはBearerを付けない。
func (c *Client) refreshAccess(ctx context.Context) error {
	refresh := c.tokens.Refresh(ctx)
	if refresh == "" {
		return &Error{Status: http.StatusUnauthorized, Kind: KindUnauthorized}
	}

	payload, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return err
	}

	status, body, err := c.send(ctx, http.MethodPost, "/auth/token/refresh/", payload, "", "")
	if err != nil {
		return err
	}
	if status >= 400 {
		return &Error{Status: status, Kind: kindFromStatus(status), Body: body}
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return err
	}
	return c.tokens.SetAccess(ctx, out.Access)
}

// expireAuthはトークンを全部消して認証切れフックを呼ぶ。
func (c *Client) expireAuth(ctx context.Context) {
	c.tokens.Clear(ctx)
	if c.onAuthExpired != nil {
		c.onAuthExpired()
	}
}

func decodeInto(body []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], body...)
		return nil
	}
	return json.Unmarshal(body, out)
}

// tokenExpiredはaccessトークンのexpクレームを検証なしで読む。
// 読めないトークンは期限不明としてそのまま送る。
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Now().Unix() >= int64(exp)
}

// doMultipartはプロフィール画像付き更新など、multipart/form-dataで送る。
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	if file != nil {
		fw, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(fw, file); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	return c.roundTrip(ctx, method, path, buf.Bytes(), w.FormDataContentType(), out)
}
