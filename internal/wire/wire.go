//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"github.com/google/wire"

	"coursecraft-api/internal/config"
)

// InitializeApp 组装完整应用
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		provideRedis,
		provideRateLimiter,
		provideCache,
		provideOAuthStateStore,
		provideChatInvoker,
		providePromptRegistry,
		provideGenerationService,
		provideEnhancementService,
		provideResearchService,
		provideDocumentParser,
		providePresentonClient,
		providePexelsClient,
		provideUnsplashClient,
		providePixabayClient,
		provideElevenLabsClient,
		provideHeyGenClient,
		provideBunnyClient,
		provideCanvaClient,
		provideHandlers,
		provideRouter,
		newApp,
	)
	return nil, nil, nil
}
