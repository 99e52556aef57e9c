package enhancement

// 模型与研究模式推荐走纯规则，不消耗 AI 配额。

// ModelRecommendationRequest 生成引擎推荐请求
type ModelRecommendationRequest struct {
	CourseType        string `json:"course_type"`
	ContentComplexity string `json:"content_complexity"`
	TargetQuality     string `json:"target_quality"`
}

// ModelRecommendation 生成引擎推荐结果
type ModelRecommendation struct {
	RecommendedModel string   `json:"recommended_model"`
	Reason           string   `json:"reason"`
	Alternatives     []string `json:"alternatives"`
}

// ResearchModeRecommendation 研究模式推荐结果
type ResearchModeRecommendation struct {
	RecommendedMode string   `json:"recommended_mode"`
	Depth           string   `json:"depth"`
	Sources         []string `json:"sources"`
	Reason          string   `json:"reason"`
}

// RecommendModel 按目标质量推荐幻灯片生成引擎
func (s *Service) RecommendModel(req ModelRecommendationRequest) *ModelRecommendation {
	switch req.TargetQuality {
	case "high":
		return &ModelRecommendation{
			RecommendedModel: "presenton",
			Reason:           "Best quality for professional presentations",
			Alternatives:     []string{"presenton", "internal"},
		}
	case "low":
		return &ModelRecommendation{
			RecommendedModel: "internal",
			Reason:           "Fast generation for drafts",
			Alternatives:     []string{"presenton", "internal"},
		}
	default:
		return &ModelRecommendation{
			RecommendedModel: "internal",
			Reason:           "Good balance of quality and speed",
			Alternatives:     []string{"presenton", "internal"},
		}
	}
}

// RecommendResearchMode 推荐主题研究方式
func (s *Service) RecommendResearchMode(topic, context string) *ResearchModeRecommendation {
	return &ResearchModeRecommendation{
		RecommendedMode: "ai_research",
		Depth:           "standard",
		Sources:         []string{"web", "ai"},
		Reason:          "AI research provides comprehensive coverage for educational content",
	}
}
