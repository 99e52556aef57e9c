// Package router 提供 HTTP 路由配置
package router

import (
	"coursecraft-api/internal/infrastructure/persistence/redis"
	"coursecraft-api/internal/interfaces/http/handler"

	"github.com/gin-gonic/gin"
)

// Handlers 路由依赖的处理器集合
type Handlers struct {
	Redis      *redis.Client
	Course     *handler.CourseHandler
	Slides     *handler.SlidesHandler
	Assessment *handler.AssessmentHandler
	AI         *handler.AIHandler
	Research   *handler.ResearchHandler
	Document   *handler.DocumentHandler
	Presenton  *handler.PresentonHandler
	Media      *handler.MediaHandler
	Video      *handler.VideoHandler
	Voice      *handler.VoiceHandler
	Canva      *handler.CanvaHandler
	Export     *handler.ExportHandler
}

// RegisterAPIRoutes 注册 /api 下的业务路由
func RegisterAPIRoutes(api *gin.RouterGroup, h Handlers) {
	// 课程内容生成
	course := api.Group("/course")
	{
		course.POST("/generate-titles", h.Course.GenerateTitles)
		course.POST("/generate-outline", h.Course.GenerateOutline)
		course.POST("/generate-script", h.Course.GenerateScript)
	}

	// 幻灯片
	slides := api.Group("/slides")
	{
		slides.POST("/generate", h.Slides.Generate)
		slides.POST("/enhance", h.Slides.Enhance)
	}

	// 考核
	assessment := api.Group("/assessment")
	{
		assessment.POST("/generate-quiz", h.Assessment.GenerateQuiz)
		assessment.POST("/generate-exercises", h.Assessment.GenerateExercises)
	}

	// AI 辅助
	ai := api.Group("/ai")
	{
		ai.POST("/review", h.AI.Review)
		ai.POST("/translate", h.AI.Translate)
		ai.POST("/analyze-structure", h.AI.AnalyzeStructure)
		ai.POST("/analyze-manuscript", h.AI.AnalyzeManuscript)
		ai.POST("/recommend-model", h.AI.RecommendModel)
		ai.POST("/recommend-research-mode", h.AI.RecommendResearchMode)
	}

	// 主题研究
	research := api.Group("/research")
	{
		research.POST("/topic", h.Research.Topic)
		research.POST("/scrape", h.Research.Scrape)
	}

	// 文档解析
	documents := api.Group("/documents")
	{
		documents.POST("/parse", h.Document.Parse)
		documents.POST("/parse-text", h.Document.ParseText)
	}

	// Presenton 幻灯片引擎
	presenton := api.Group("/presenton")
	{
		presenton.POST("/generate", h.Presenton.Generate)
		presenton.GET("/status/:task_id", h.Presenton.Status)
	}

	// 素材搜索
	media := api.Group("/media")
	{
		media.GET("/photos", h.Media.Photos)
		media.GET("/videos", h.Media.Videos)
	}

	// 数字人视频
	video := api.Group("/video")
	{
		video.GET("/avatars", h.Video.Avatars)
		video.POST("/generate", h.Video.Generate)
		video.GET("/status/:video_id", h.Video.Status)
		video.GET("/library", h.Video.Library)
		video.POST("/library/upload", h.Video.LibraryUpload)
	}

	// 语音合成
	voice := api.Group("/voice")
	{
		voice.GET("/voices", h.Voice.Voices)
		voice.POST("/generate", h.Voice.Generate)
		voice.POST("/estimate-duration", h.Voice.EstimateDuration)
	}

	// Canva Connect
	canva := api.Group("/canva")
	{
		canva.GET("/authorize", h.Canva.Authorize)
		canva.GET("/callback", h.Canva.Callback)
		canva.POST("/refresh", h.Canva.Refresh)
		canva.GET("/templates", h.Canva.Templates)
		canva.POST("/designs", h.Canva.CreateDesign)
		canva.POST("/autofill", h.Canva.Autofill)
		canva.POST("/export", h.Canva.Export)
		canva.GET("/export/:job_id", h.Canva.ExportStatus)
	}

	// 文档导出
	export := api.Group("/export")
	{
		export.POST("/slides", h.Export.Slides)
		export.POST("/word", h.Export.Word)
	}
}
