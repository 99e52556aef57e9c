// Package styleguide 提供主题分类与风格指导文案的静态查表
package styleguide

import "strings"

// StyleParameters 从自由文本推导出的分类标签，全部来自封闭词表
type StyleParameters struct {
	ContentType           string `json:"content_type"`
	Industry              string `json:"industry"`
	ImageStyle            string `json:"image_style"`
	ColorScheme           string `json:"color_scheme"`
	Mood                  string `json:"mood"`
	PresentationStructure string `json:"presentation_structure"`
	AudienceLevel         string `json:"audience_level"`
}

type keywordGroup struct {
	label string
	words []string
}

// 组的声明顺序即优先级：词表重叠时先声明者胜出
var contentTypeGroups = []keywordGroup{
	{"tutorial", []string{"tutorial", "guide", "how to", "step by step", "walkthrough", "instructions"}},
	{"comparison", []string{"compare", "versus", "vs.", "differences", "advantages", "disadvantages", "contrast"}},
	{"pitch", []string{"pitch", "proposal", "investment", "funding", "venture", "startup"}},
	{"report", []string{"report", "research", "findings", "data", "study", "analysis", "results"}},
	{"training", []string{"training", "course", "lesson", "workshop", "seminar", "education"}},
	{"timeline", []string{"timeline", "history", "evolution", "roadmap", "milestones"}},
	{"case-study", []string{"case study", "success story", "customer story", "testimonial"}},
}

var industryGroups = []keywordGroup{
	{"healthcare", []string{"health", "medical", "hospital", "pharma", "patient", "doctor", "clinic", "treatment"}},
	{"finance", []string{"financ", "bank", "invest", "money", "stock", "crypto", "trading", "budget"}},
	{"technology", []string{"tech", "software", "digital", "ai", "machine learning", "data", "cloud", "app"}},
	{"education", []string{"education", "school", "learn", "student", "teach", "course", "training"}},
	{"marketing", []string{"market", "brand", "customer", "sales", "advertis", "campaign", "promotion"}},
	{"environment", []string{"nature", "environment", "sustain", "green", "eco", "climate", "conservation"}},
}

var moodGroups = []keywordGroup{
	{"inspiring", []string{"inspire", "motivat", "empower", "success", "achievement"}},
	{"serious", []string{"serious", "important", "critical", "urgent"}},
	{"energetic", []string{"fun", "creative", "innovate", "exciting", "dynamic"}},
}

var structureGroups = []keywordGroup{
	{"comparison", []string{"compare", "versus", "vs.", "advantages", "alternative"}},
	{"process", []string{"step", "guide", "tutorial", "how to", "process", "workflow"}},
	{"research", []string{"research", "study", "finding", "analysis", "data", "report"}},
	{"pitch", []string{"pitch", "proposal", "business plan", "investment"}},
	{"narrative", []string{"story", "journey", "case study", "experience"}},
}

var audienceGroups = []keywordGroup{
	{"executive", []string{"executive", "c-level", "board", "leadership", "strategic"}},
	{"technical", []string{"technical", "engineer", "developer", "architect"}},
	{"beginner", []string{"beginner", "introduction", "basics", "fundamentals", "101"}},
	{"advanced", []string{"advanced", "expert", "deep dive", "comprehensive"}},
}

func matchGroup(groups []keywordGroup, text, fallback string) string {
	for _, g := range groups {
		for _, w := range g.words {
			if strings.Contains(text, w) {
				return g.label
			}
		}
	}
	return fallback
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// Classify 对任意输入总是返回完整参数集，未命中词表时落到各维度默认值。
// 空输入合法，结果为全默认。
func Classify(topic, context string) StyleParameters {
	combined := strings.ToLower(topic + " " + context)

	industry := matchGroup(industryGroups, combined, "general")

	return StyleParameters{
		ContentType:           matchGroup(contentTypeGroups, combined, "general"),
		Industry:              industry,
		ImageStyle:            imageStyleFor(industry, combined),
		ColorScheme:           colorSchemeFor(industry),
		Mood:                  matchGroup(moodGroups, combined, "confident"),
		PresentationStructure: matchGroup(structureGroups, combined, "standard"),
		AudienceLevel:         matchGroup(audienceGroups, combined, "general"),
	}
}

func imageStyleFor(industry, combined string) string {
	if industry == "technology" || containsAny(combined, "diagram", "process", "workflow", "system", "architecture") {
		return "illustrations"
	}
	if industry == "education" || industry == "marketing" {
		return "mixed"
	}
	return "photography"
}

func colorSchemeFor(industry string) string {
	switch industry {
	case "healthcare", "environment":
		return "mint-blue"
	case "finance", "legal":
		return "professional-dark"
	case "marketing":
		return "edge-yellow"
	case "education":
		return "light-rose"
	default:
		return "professional-blue"
	}
}
