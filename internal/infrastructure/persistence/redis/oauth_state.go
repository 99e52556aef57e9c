// Package redis 提供 OAuth 授权状态的持久化
package redis

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	apperrors "coursecraft-api/pkg/errors"
)

// OAuthStateStore 保存 OAuth 授权中的 state -> PKCE verifier 映射。
// 落在 Redis 里，多实例部署下任意节点都能完成回调。
type OAuthStateStore struct {
	client *Client
	ttl    time.Duration
}

// NewOAuthStateStore 创建状态存储，ttl 为授权流程的最长时限
func NewOAuthStateStore(client *Client, ttl time.Duration) *OAuthStateStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &OAuthStateStore{client: client, ttl: ttl}
}

func stateKey(state string) string {
	return "oauth:state:" + state
}

// Save 记录授权状态，授权发起时调用
func (s *OAuthStateStore) Save(ctx context.Context, state, codeVerifier string) error {
	ctx, span := tracer.Start(ctx, "oauth_state.Save")
	defer span.End()

	if err := s.client.Set(ctx, stateKey(state), codeVerifier, s.ttl); err != nil {
		span.RecordError(err)
		return apperrors.Wrap(err, apperrors.CodeCacheError, "failed to save oauth state")
	}
	return nil
}

// Consume 取出并删除授权状态，回调时调用。
// 状态未知或已过期返回 OAuthFailed，防止 CSRF 与重放。
func (s *OAuthStateStore) Consume(ctx context.Context, state string) (string, error) {
	ctx, span := tracer.Start(ctx, "oauth_state.Consume")
	defer span.End()

	key := stateKey(state)
	verifier, err := s.client.Get(ctx, key)
	if err != nil {
		if IsNil(err) {
			return "", apperrors.New(apperrors.CodeOAuthFailed, "unknown or expired oauth state")
		}
		span.RecordError(err)
		return "", apperrors.Wrap(err, apperrors.CodeCacheError, "failed to load oauth state")
	}
	if err := s.client.Del(ctx, key); err != nil {
		span.RecordError(err)
	}
	span.SetAttributes(attribute.Bool("oauth_state.found", true))
	return verifier, nil
}
