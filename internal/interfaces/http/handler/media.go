package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"coursecraft-api/internal/infrastructure/integration/stockmedia"
	"coursecraft-api/internal/infrastructure/persistence/redis"
	"coursecraft-api/internal/interfaces/http/dto"
	apperrors "coursecraft-api/pkg/errors"
)

// mediaCacheTTL 素材搜索结果的缓存时长
const mediaCacheTTL = time.Hour

// MediaHandler 图库素材搜索处理器
type MediaHandler struct {
	pexels   *stockmedia.PexelsClient
	unsplash *stockmedia.UnsplashClient
	pixabay  *stockmedia.PixabayClient
	cache    *redis.Cache
}

// NewMediaHandler 创建素材处理器，cache 可为 nil
func NewMediaHandler(pexels *stockmedia.PexelsClient, unsplash *stockmedia.UnsplashClient, pixabay *stockmedia.PixabayClient, cache *redis.Cache) *MediaHandler {
	return &MediaHandler{
		pexels:   pexels,
		unsplash: unsplash,
		pixabay:  pixabay,
		cache:    cache,
	}
}

// Photos 搜索图片素材
// @Summary 搜索图片
// @Tags Media
// @Produce json
// @Param query query string true "搜索词"
// @Param provider query string false "pexels|unsplash"
// @Router /api/media/photos [get]
func (h *MediaHandler) Photos(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		respondError(c, apperrors.New(apperrors.CodeInvalidParam, "query is required"))
		return
	}
	provider := c.DefaultQuery("provider", "pexels")
	perPage := queryInt(c, "per_page", 10)

	var search func(context.Context) ([]stockmedia.StockPhoto, error)
	switch provider {
	case "pexels":
		search = func(ctx context.Context) ([]stockmedia.StockPhoto, error) {
			return h.pexels.SearchPhotos(ctx, query, perPage)
		}
	case "unsplash":
		search = func(ctx context.Context) ([]stockmedia.StockPhoto, error) {
			return h.unsplash.SearchPhotos(ctx, query, perPage)
		}
	default:
		respondError(c, apperrors.New(apperrors.CodeInvalidParam, "unsupported photo provider: "+provider))
		return
	}

	key := fmt.Sprintf("media:photos:%s:%s:%d", provider, query, perPage)
	photos, err := searchCached(c.Request.Context(), h.cache, key, search)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, dto.PhotoSearchResponse{Provider: provider, Photos: photos})
}

// Videos 搜索视频素材
// @Summary 搜索视频
// @Tags Media
// @Produce json
// @Param query query string true "搜索词"
// @Param provider query string false "pexels|pixabay"
// @Router /api/media/videos [get]
func (h *MediaHandler) Videos(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		respondError(c, apperrors.New(apperrors.CodeInvalidParam, "query is required"))
		return
	}
	provider := c.DefaultQuery("provider", "pexels")
	perPage := queryInt(c, "per_page", 10)

	var search func(context.Context) ([]stockmedia.StockVideo, error)
	switch provider {
	case "pexels":
		search = func(ctx context.Context) ([]stockmedia.StockVideo, error) {
			return h.pexels.SearchVideos(ctx, query, perPage)
		}
	case "pixabay":
		search = func(ctx context.Context) ([]stockmedia.StockVideo, error) {
			return h.pixabay.SearchVideos(ctx, query, perPage)
		}
	default:
		respondError(c, apperrors.New(apperrors.CodeInvalidParam, "unsupported video provider: "+provider))
		return
	}

	key := fmt.Sprintf("media:videos:%s:%s:%d", provider, query, perPage)
	videos, err := searchCached(c.Request.Context(), h.cache, key, search)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, dto.VideoSearchResponse{Provider: provider, Videos: videos})
}

// searchCached 走缓存执行素材搜索。
// 供应商错误直接透传；缓存层故障时降级为直连搜索。
func searchCached[T any](ctx context.Context, cache *redis.Cache, key string, search func(context.Context) ([]T, error)) ([]T, error) {
	if cache == nil {
		return search(ctx)
	}

	raw, err := cache.GetOrLoadSafe(ctx, key, mediaCacheTTL, func() (interface{}, error) {
		return search(ctx)
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return search(ctx)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return search(ctx)
	}
	return items, nil
}

// queryInt 解析整型查询参数，非法值回退默认
func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
