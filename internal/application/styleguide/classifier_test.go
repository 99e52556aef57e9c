package styleguide

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		context string
		want    StyleParameters
	}{
		{
			name:  "empty input falls back to defaults",
			topic: "",
			want: StyleParameters{
				ContentType:           "general",
				Industry:              "general",
				ImageStyle:            "photography",
				ColorScheme:           "professional-blue",
				Mood:                  "confident",
				PresentationStructure: "standard",
				AudienceLevel:         "general",
			},
		},
		{
			name:  "healthcare report",
			topic: "Patient outcomes research report",
			want: StyleParameters{
				ContentType:           "report",
				Industry:              "healthcare",
				ImageStyle:            "photography",
				ColorScheme:           "mint-blue",
				Mood:                  "confident",
				PresentationStructure: "research",
				AudienceLevel:         "general",
			},
		},
		{
			name:  "technology tutorial for beginners",
			topic: "Step by step cloud deployment tutorial",
			context: "introduction for beginner developers",
			want: StyleParameters{
				ContentType:           "tutorial",
				Industry:              "technology",
				ImageStyle:            "illustrations",
				ColorScheme:           "professional-blue",
				Mood:                  "confident",
				PresentationStructure: "process",
				AudienceLevel:         "technical",
			},
		},
		{
			name:  "startup pitch",
			topic: "Seed funding pitch for our startup",
			want: StyleParameters{
				ContentType:           "pitch",
				Industry:              "general",
				ImageStyle:            "photography",
				ColorScheme:           "professional-blue",
				Mood:                  "confident",
				PresentationStructure: "pitch",
				AudienceLevel:         "general",
			},
		},
		{
			name:  "marketing campaign uses mixed imagery",
			topic: "Brand campaign overview",
			want: StyleParameters{
				ContentType:           "general",
				Industry:              "marketing",
				ImageStyle:            "mixed",
				ColorScheme:           "edge-yellow",
				Mood:                  "confident",
				PresentationStructure: "standard",
				AudienceLevel:         "general",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.topic, tt.context))
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	got := Classify("FINANCE TRADING STRATEGIES", "")
	assert.Equal(t, "finance", got.Industry)
	assert.Equal(t, "professional-dark", got.ColorScheme)
}

func TestClassifyGroupPriority(t *testing.T) {
	// "tutorial" 与 "compare" 同时命中时，先声明的组胜出
	got := Classify("tutorial that compares two tools", "")
	assert.Equal(t, "tutorial", got.ContentType)
}

func TestVerbosityGuidance(t *testing.T) {
	assert.Contains(t, VerbosityGuidance("concise"), "Maximum 15 words")
	assert.Contains(t, VerbosityGuidance("text-heavy"), "Maximum 60 words")
	assert.Contains(t, VerbosityGuidance("standard"), "30-35 words")
	// 未识别档位落到标准块
	assert.Equal(t, VerbosityGuidance("standard"), VerbosityGuidance("whatever"))
}

func TestToneGuidance(t *testing.T) {
	assert.Contains(t, ToneGuidance("professional"), "Formal")
	assert.Contains(t, ToneGuidance("casual"), "conversational")
	assert.Equal(t, "Professional and clear", ToneGuidance("unknown"))
}

func TestLayoutGuidanceFallsBackToGeneral(t *testing.T) {
	assert.Equal(t, LayoutGuidance("general"), LayoutGuidance("nonexistent"))
	assert.Contains(t, LayoutGuidance("pitch"), "pitch deck structure")
}

func TestIndustryDesignGuide(t *testing.T) {
	assert.Contains(t, IndustryDesignGuide("healthcare"), "HEALTHCARE DESIGN")
	assert.Empty(t, IndustryDesignGuide("general"))
	assert.Empty(t, IndustryDesignGuide(""))
}

func TestBuildEnhancedInstructions(t *testing.T) {
	got := BuildEnhancedInstructions(InstructionParams{
		ContentType:   "training",
		Verbosity:     "concise",
		Industry:      "education",
		ImageStyle:    "mixed",
		Mood:          "inspiring",
		AudienceLevel: "beginner",
	})

	assert.Contains(t, got, "Learning Objectives")
	assert.Contains(t, got, "CRITICAL TEXT DENSITY RULES")
	assert.Contains(t, got, "EDUCATION DESIGN")
	assert.Contains(t, got, "SWEDISH LANGUAGE REQUIREMENTS")

	// 词表外的行业不追加行业块
	noIndustry := BuildEnhancedInstructions(InstructionParams{Industry: "general"})
	assert.NotContains(t, noIndustry, "DESIGN:")
}
