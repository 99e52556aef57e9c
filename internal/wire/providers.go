// Package wire 提供依赖注入配置
package wire

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursecraft-api/internal/application/document"
	"coursecraft-api/internal/application/enhancement"
	"coursecraft-api/internal/application/generation"
	"coursecraft-api/internal/application/research"
	"coursecraft-api/internal/config"
	"coursecraft-api/internal/infrastructure/integration/bunny"
	"coursecraft-api/internal/infrastructure/integration/canva"
	"coursecraft-api/internal/infrastructure/integration/elevenlabs"
	"coursecraft-api/internal/infrastructure/integration/heygen"
	"coursecraft-api/internal/infrastructure/integration/presenton"
	"coursecraft-api/internal/infrastructure/integration/stockmedia"
	"coursecraft-api/internal/infrastructure/llm"
	"coursecraft-api/internal/infrastructure/persistence/redis"
	"coursecraft-api/internal/interfaces/http/handler"
	"coursecraft-api/internal/interfaces/http/router"
	"coursecraft-api/internal/workflow/prompt"
)

// 图库服务的固定接入点
const (
	pexelsBaseURL   = "https://api.pexels.com"
	unsplashBaseURL = "https://api.unsplash.com"
	pixabayBaseURL  = "https://pixabay.com"
)

// App 应用根对象
type App struct {
	router *router.Router
}

// Engine 返回 HTTP 引擎
func (a *App) Engine() *gin.Engine {
	return a.router.Engine()
}

func newApp(r *router.Router) *App {
	return &App{router: r}
}

func provideRedis(cfg *config.Config) (*redis.Client, func(), error) {
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

func provideRateLimiter(client *redis.Client) *redis.RateLimiter {
	return redis.NewRateLimiter(client)
}

func provideCache(client *redis.Client) *redis.Cache {
	return redis.NewCache(client)
}

func provideOAuthStateStore(cfg *config.Config, client *redis.Client) *redis.OAuthStateStore {
	return redis.NewOAuthStateStore(client, cfg.Vendors.Canva.StateTTL)
}

func provideChatInvoker(cfg *config.Config) *llm.ChatInvoker {
	return llm.NewChatInvoker(llm.NewEinoFactory(cfg))
}

func providePromptRegistry() *prompt.Registry {
	return prompt.NewRegistry()
}

func provideGenerationService(invoker *llm.ChatInvoker, prompts *prompt.Registry) *generation.Service {
	return generation.NewService(invoker, prompts)
}

func provideEnhancementService(invoker *llm.ChatInvoker, prompts *prompt.Registry) *enhancement.Service {
	return enhancement.NewService(invoker, prompts)
}

func provideResearchService(cfg *config.Config, invoker *llm.ChatInvoker, prompts *prompt.Registry) *research.Service {
	opts := []research.Option{}
	if cfg.Generation.MaxScrapeURLs > 0 {
		opts = append(opts, research.WithMaxURLs(cfg.Generation.MaxScrapeURLs))
	}
	if cfg.Generation.ScrapeTimeout > 0 {
		opts = append(opts, research.WithHTTPClient(&http.Client{Timeout: cfg.Generation.ScrapeTimeout}))
	}
	return research.NewService(invoker, prompts, opts...)
}

func provideDocumentParser(cfg *config.Config) *document.Parser {
	return document.NewParser(cfg.Generation.MaxUploadBytes)
}

func providePresentonClient(cfg *config.Config) *presenton.Client {
	v := cfg.Vendors.Presenton
	return presenton.NewClient(v.BaseURL, v.APIKey, v.Timeout)
}

func providePexelsClient(cfg *config.Config) *stockmedia.PexelsClient {
	v := cfg.Vendors.Pexels
	return stockmedia.NewPexelsClient(pexelsBaseURL, v.APIKey, v.Timeout)
}

func provideUnsplashClient(cfg *config.Config) *stockmedia.UnsplashClient {
	v := cfg.Vendors.Unsplash
	return stockmedia.NewUnsplashClient(unsplashBaseURL, v.APIKey, v.Timeout)
}

func providePixabayClient(cfg *config.Config) *stockmedia.PixabayClient {
	v := cfg.Vendors.Pixabay
	return stockmedia.NewPixabayClient(pixabayBaseURL, v.APIKey, v.Timeout)
}

func provideElevenLabsClient(cfg *config.Config) *elevenlabs.Client {
	v := cfg.Vendors.ElevenLabs
	return elevenlabs.NewClient(v.BaseURL, v.APIKey, v.ModelID, v.Timeout)
}

func provideHeyGenClient(cfg *config.Config) *heygen.Client {
	v := cfg.Vendors.HeyGen
	return heygen.NewClient(v.BaseURL, v.APIKey, v.Timeout)
}

func provideBunnyClient(cfg *config.Config) *bunny.Client {
	v := cfg.Vendors.Bunny
	return bunny.NewClient(v.BaseURL, v.APIKey, v.LibraryID, v.CDNHost, v.Timeout)
}

func provideCanvaClient(cfg *config.Config) *canva.Client {
	v := cfg.Vendors.Canva
	return canva.NewClient(v.AuthBaseURL, v.APIBaseURL, v.ClientID, v.ClientSecret, v.RedirectURI, v.Timeout)
}

func provideHandlers(
	redisClient *redis.Client,
	generationSvc *generation.Service,
	enhancementSvc *enhancement.Service,
	researchSvc *research.Service,
	parser *document.Parser,
	presentonClient *presenton.Client,
	pexelsClient *stockmedia.PexelsClient,
	unsplashClient *stockmedia.UnsplashClient,
	pixabayClient *stockmedia.PixabayClient,
	elevenlabsClient *elevenlabs.Client,
	heygenClient *heygen.Client,
	bunnyClient *bunny.Client,
	canvaClient *canva.Client,
	states *redis.OAuthStateStore,
	cache *redis.Cache,
) router.Handlers {
	return router.Handlers{
		Redis:      redisClient,
		Course:     handler.NewCourseHandler(generationSvc),
		Slides:     handler.NewSlidesHandler(generationSvc, enhancementSvc),
		Assessment: handler.NewAssessmentHandler(generationSvc),
		AI:         handler.NewAIHandler(enhancementSvc),
		Research:   handler.NewResearchHandler(researchSvc),
		Document:   handler.NewDocumentHandler(parser),
		Presenton:  handler.NewPresentonHandler(presentonClient),
		Media:      handler.NewMediaHandler(pexelsClient, unsplashClient, pixabayClient, cache),
		Video:      handler.NewVideoHandler(heygenClient, bunnyClient),
		Voice:      handler.NewVoiceHandler(elevenlabsClient),
		Canva:      handler.NewCanvaHandler(canvaClient, states),
		Export:     handler.NewExportHandler(),
	}
}

func provideRouter(cfg *config.Config, limiter *redis.RateLimiter, handlers router.Handlers) *router.Router {
	return router.New(cfg, limiter, handlers)
}
