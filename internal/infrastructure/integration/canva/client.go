// Package canva 对接 Canva Connect API：
// OAuth 2.0 PKCE 授权、设计创建、模板自动填充与导出。
// 文档: https://www.canva.dev/docs/connect/
package canva

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coursecraft-api/internal/infrastructure/integration/rest"
	apperrors "coursecraft-api/pkg/errors"
)

var oauthScopes = []string{
	"design:content:write",
	"design:content:read",
	"asset:write",
	"asset:read",
	"brandtemplate:content:read",
	"folder:read",
}

// Tokens OAuth 令牌对
type Tokens struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int       `json:"expires_in"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Design 创建出的设计
type Design struct {
	ID      string `json:"id"`
	EditURL string `json:"edit_url"`
	ViewURL string `json:"view_url"`
	Title   string `json:"title,omitempty"`
}

// Template 品牌模板
type Template struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	BrandID      string `json:"brand_id,omitempty"`
}

// SlideData 自动填充用的幻灯片数据
type SlideData struct {
	Title           string   `json:"title"`
	Body            string   `json:"body,omitempty"`
	BulletPoints    []string `json:"bullet_points,omitempty"`
	ImageURL        string   `json:"image_url,omitempty"`
	BackgroundColor string   `json:"background_color,omitempty"`
}

// ExportJob 导出任务状态
type ExportJob struct {
	ID     string   `json:"id"`
	Status string   `json:"status"`
	URLs   []string `json:"urls,omitempty"`
}

// Client Canva Connect API 客户端
type Client struct {
	rest         *rest.Client
	clientID     string
	clientSecret string
	redirectURI  string
	authBaseURL  string
}

// NewClient 创建 Canva 客户端
func NewClient(authBaseURL, apiBaseURL, clientID, clientSecret, redirectURI string, timeout time.Duration) *Client {
	return &Client{
		rest:         rest.New("canva", apiBaseURL, timeout),
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		authBaseURL:  strings.TrimRight(authBaseURL, "/"),
	}
}

// AuthorizationURL 生成带 PKCE 的授权链接。
// 返回链接、state 与 code verifier，后两者需在回调前暂存。
func (c *Client) AuthorizationURL() (authURL, state, codeVerifier string, err error) {
	if c.clientID == "" {
		return "", "", "", apperrors.New(apperrors.CodeKeyNotProvided, "Canva client credentials not configured")
	}
	state, err = GenerateState()
	if err != nil {
		return "", "", "", err
	}
	codeVerifier, err = GenerateCodeVerifier()
	if err != nil {
		return "", "", "", err
	}

	params := url.Values{
		"client_id":             {c.clientID},
		"redirect_uri":          {c.redirectURI},
		"response_type":         {"code"},
		"scope":                 {strings.Join(oauthScopes, " ")},
		"state":                 {state},
		"code_challenge":        {CodeChallenge(codeVerifier)},
		"code_challenge_method": {"S256"},
	}
	return c.authBaseURL + "/oauth/authorize?" + params.Encode(), state, codeVerifier, nil
}

// ExchangeCode 用授权码换取访问令牌
func (c *Client) ExchangeCode(ctx context.Context, code, codeVerifier string) (*Tokens, error) {
	return c.tokenRequest(ctx, "exchange_code", url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {c.redirectURI},
		"code_verifier": {codeVerifier},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	})
}

// RefreshTokens 刷新过期的访问令牌
func (c *Client) RefreshTokens(ctx context.Context, refreshToken string) (*Tokens, error) {
	return c.tokenRequest(ctx, "refresh_token", url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	})
}

func (c *Client) tokenRequest(ctx context.Context, operation string, form url.Values) (*Tokens, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, apperrors.New(apperrors.CodeKeyNotProvided, "Canva client credentials not configured")
	}

	tokens := &Tokens{}
	raw, err := c.rest.DoBytes(ctx, operation, rest.Request{
		Method:  http.MethodPost,
		Path:    "/v1/oauth/token",
		Header:  map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
		RawBody: []byte(form.Encode()),
	})
	if err != nil {
		if appErr := apperrors.AsAppError(err); appErr != nil && appErr.Code == apperrors.CodeVendorError {
			return nil, apperrors.New(apperrors.CodeOAuthFailed, "Canva token request failed").WithDetail(appErr.Detail)
		}
		return nil, err
	}
	if err := decodeJSON(raw, tokens); err != nil {
		return nil, err
	}
	tokens.ExpiresAt = time.Now().Add(time.Duration(tokens.ExpiresIn) * time.Second)
	if tokens.TokenType == "" {
		tokens.TokenType = "Bearer"
	}
	return tokens, nil
}

// CreateDesign 创建新设计
func (c *Client) CreateDesign(ctx context.Context, accessToken, title, designType, templateID string) (*Design, error) {
	if designType == "" {
		designType = "Presentation"
	}
	payload := map[string]any{
		"design_type": designType,
		"title":       title,
	}
	if templateID != "" {
		payload["asset_id"] = templateID
	}

	var raw designEnvelope
	err := c.rest.Do(ctx, "create_design", rest.Request{
		Method: http.MethodPost,
		Path:   "/v1/designs",
		Header: c.bearer(accessToken),
		Body:   payload,
		Out:    &raw,
	})
	if err != nil {
		return nil, err
	}
	return raw.toDesign(title), nil
}

// AutofillTemplate 用结构化幻灯片数据填充品牌模板
func (c *Client) AutofillTemplate(ctx context.Context, accessToken, templateID, title string, slides []SlideData) (*Design, error) {
	if templateID == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "template_id is required")
	}

	slidePayloads := make([]map[string]any, 0, len(slides))
	for _, slide := range slides {
		data := map[string]any{"title": slide.Title}
		if len(slide.BulletPoints) > 0 {
			bullets := make([]string, 0, len(slide.BulletPoints))
			for _, point := range slide.BulletPoints {
				bullets = append(bullets, "• "+point)
			}
			data["body"] = strings.Join(bullets, "\n")
		} else if slide.Body != "" {
			data["body"] = slide.Body
		}
		if slide.ImageURL != "" {
			data["image"] = map[string]string{"url": slide.ImageURL}
		}
		if slide.BackgroundColor != "" {
			data["background_color"] = slide.BackgroundColor
		}
		slidePayloads = append(slidePayloads, data)
	}

	var raw designEnvelope
	err := c.rest.Do(ctx, "autofill", rest.Request{
		Method: http.MethodPost,
		Path:   "/v1/autofills",
		Header: c.bearer(accessToken),
		Body: map[string]any{
			"brand_template_id": templateID,
			"title":             title,
			"data": map[string]any{
				"type":   "presentation",
				"title":  title,
				"slides": slidePayloads,
			},
		},
		Out: &raw,
	})
	if err != nil {
		return nil, err
	}
	return raw.toDesign(title), nil
}

// ListBrandTemplates 拉取用户的品牌模板
func (c *Client) ListBrandTemplates(ctx context.Context, accessToken string, limit int) ([]Template, error) {
	if limit <= 0 {
		limit = 20
	}

	var raw struct {
		Items []struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			BrandID   string `json:"brand_id"`
			Thumbnail struct {
				URL string `json:"url"`
			} `json:"thumbnail"`
		} `json:"items"`
	}
	err := c.rest.Do(ctx, "list_templates", rest.Request{
		Method: http.MethodGet,
		Path:   "/v1/brand-templates",
		Query:  url.Values{"limit": {strconv.Itoa(limit)}},
		Header: c.bearer(accessToken),
		Out:    &raw,
	})
	if err != nil {
		return nil, err
	}

	templates := make([]Template, 0, len(raw.Items))
	for _, item := range raw.Items {
		name := item.Name
		if name == "" {
			name = "Untitled Template"
		}
		templates = append(templates, Template{
			ID:           item.ID,
			Name:         name,
			ThumbnailURL: item.Thumbnail.URL,
			BrandID:      item.BrandID,
		})
	}
	return templates, nil
}

// ExportDesign 发起设计导出，返回任务 ID 供轮询
func (c *Client) ExportDesign(ctx context.Context, accessToken, designID, format string) (string, error) {
	if format == "" {
		format = "pptx"
	}

	var raw struct {
		Job struct {
			ID string `json:"id"`
		} `json:"job"`
	}
	err := c.rest.Do(ctx, "export", rest.Request{
		Method: http.MethodPost,
		Path:   "/v1/exports",
		Header: c.bearer(accessToken),
		Body: map[string]any{
			"design_id": designID,
			"format":    map[string]string{"type": format},
		},
		Out: &raw,
	})
	if err != nil {
		return "", err
	}
	return raw.Job.ID, nil
}

// ExportStatus 查询导出任务状态
func (c *Client) ExportStatus(ctx context.Context, accessToken, jobID string) (*ExportJob, error) {
	var raw struct {
		Job ExportJob `json:"job"`
	}
	err := c.rest.Do(ctx, "export_status", rest.Request{
		Method: http.MethodGet,
		Path:   "/v1/exports/" + jobID,
		Header: c.bearer(accessToken),
		Out:    &raw,
	})
	if err != nil {
		return nil, err
	}
	return &raw.Job, nil
}

func (c *Client) bearer(accessToken string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + accessToken}
}

type designEnvelope struct {
	Design struct {
		ID   string `json:"id"`
		URLs struct {
			EditURL string `json:"edit_url"`
			ViewURL string `json:"view_url"`
		} `json:"urls"`
	} `json:"design"`
}

func (e designEnvelope) toDesign(title string) *Design {
	return &Design{
		ID:      e.Design.ID,
		EditURL: e.Design.URLs.EditURL,
		ViewURL: e.Design.URLs.ViewURL,
		Title:   title,
	}
}

func decodeJSON(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.Wrap(err, apperrors.CodeVendorError, "invalid canva response")
	}
	return nil
}
