package enhancement

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursecraft-api/internal/workflow/prompt"
	apperrors "coursecraft-api/pkg/errors"
)

type fakeInvoker struct {
	reply string
	err   error
	calls int
}

func (f *fakeInvoker) Invoke(ctx context.Context, messages []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func newTestService(reply string, err error) (*Service, *fakeInvoker) {
	inv := &fakeInvoker{reply: reply, err: err}
	return NewService(inv, prompt.NewRegistry()), inv
}

func TestReviewContent(t *testing.T) {
	reply := `{"improved_content": "Bättre text.", "changes_made": ["Fixade grammatik"], "suggestions": ["Lägg till exempel"]}`
	svc, _ := newTestService(reply, nil)

	resp, err := svc.ReviewContent(context.Background(), ReviewRequest{
		Content: "Dålig text.",
		Action:  "fix_grammar",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bättre text.", resp.ImprovedContent)
	assert.Equal(t, []string{"Fixade grammatik"}, resp.ChangesMade)
}

func TestReviewContentFallsBackToRawReply(t *testing.T) {
	// 模型没按 JSON 回复时，整段回复就是改进后内容
	svc, _ := newTestService("Här är en bättre version av din text.", nil)

	resp, err := svc.ReviewContent(context.Background(), ReviewRequest{Content: "text", Action: "improve"})
	require.NoError(t, err)
	assert.Equal(t, "Här är en bättre version av din text.", resp.ImprovedContent)
	assert.Equal(t, []string{"Content improved"}, resp.ChangesMade)
	assert.Empty(t, resp.Suggestions)
}

func TestReviewContentEmptyContent(t *testing.T) {
	svc, inv := newTestService("{}", nil)

	_, err := svc.ReviewContent(context.Background(), ReviewRequest{Content: "  "})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))
	assert.Equal(t, 0, inv.calls)
}

func TestTranslateContent(t *testing.T) {
	svc, _ := newTestService("Hello world", nil)

	resp, err := svc.TranslateContent(context.Background(), TranslateRequest{
		Content:        "Hej världen",
		TargetLanguage: "en",
		SourceLanguage: "sv",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello world", resp.TranslatedContent)
	assert.Equal(t, "sv", resp.DetectedLanguage)
}

func TestTranslateContentAutoSource(t *testing.T) {
	svc, _ := newTestService("Hello", nil)

	resp, err := svc.TranslateContent(context.Background(), TranslateRequest{
		Content:        "Hej",
		TargetLanguage: "en",
		SourceLanguage: "auto",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.DetectedLanguage)
}

func TestTranslateContentMissingTarget(t *testing.T) {
	svc, _ := newTestService("x", nil)

	_, err := svc.TranslateContent(context.Background(), TranslateRequest{Content: "Hej"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))
}

func TestEnhanceSlide(t *testing.T) {
	reply := "```json\n" + `{"enhanced_content": "Tydligare innehåll", "suggestions": ["Kortare rubrik"], "improved_title": "Ny rubrik"}` + "\n```"
	svc, _ := newTestService(reply, nil)

	resp, err := svc.EnhanceSlide(context.Background(), SlideEnhanceRequest{
		SlideTitle:      "Rubrik",
		SlideContent:    "Innehåll",
		EnhancementType: "improve_clarity",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tydligare innehåll", resp.EnhancedContent)
	assert.Equal(t, "Ny rubrik", resp.ImprovedTitle)
}

func TestEnhanceSlideRequiresStructuredReply(t *testing.T) {
	// 幻灯片增强不走兜底，解析失败必须报错
	svc, _ := newTestService("Jag kan tyvärr inte svara i JSON.", nil)

	_, err := svc.EnhanceSlide(context.Background(), SlideEnhanceRequest{SlideContent: "Innehåll"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeParseFailed))
}

func TestEnhanceSlideKeepsOriginalOnEmptyResult(t *testing.T) {
	svc, _ := newTestService(`{"suggestions": []}`, nil)

	resp, err := svc.EnhanceSlide(context.Background(), SlideEnhanceRequest{SlideContent: "Originaltext"})
	require.NoError(t, err)
	assert.Equal(t, "Originaltext", resp.EnhancedContent)
}

func TestAnalyzeStructure(t *testing.T) {
	reply := `{
		"recommended_modules": 6,
		"recommended_duration": 90,
		"complexity": "advanced",
		"key_topics": ["goroutiner", "kanaler"],
		"learning_objectives": ["Förstå concurrency"],
		"suggestions": []
	}`
	svc, _ := newTestService(reply, nil)

	resp, err := svc.AnalyzeStructure(context.Background(), StructureAnalysisRequest{Title: "Concurrency i Go"})
	require.NoError(t, err)
	assert.Equal(t, 6, resp.RecommendedModules)
	assert.Equal(t, "advanced", resp.Complexity)
	assert.Len(t, resp.KeyTopics, 2)
}

func TestAnalyzeStructureFallback(t *testing.T) {
	svc, _ := newTestService("not json at all", nil)

	resp, err := svc.AnalyzeStructure(context.Background(), StructureAnalysisRequest{Title: "Go"})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.RecommendedModules)
	assert.Equal(t, 60, resp.RecommendedDuration)
	assert.Equal(t, "intermediate", resp.Complexity)
	assert.Equal(t, []string{"Could not analyze structure"}, resp.Suggestions)
}

func TestAnalyzeManuscript(t *testing.T) {
	reply := `{
		"title": "Go för alla",
		"summary": "En bok om Go.",
		"key_topics": ["syntax"],
		"suggested_modules": ["Introduktion", "Typer"],
		"estimated_duration": 120
	}`
	svc, _ := newTestService(reply, nil)

	resp, err := svc.AnalyzeManuscript(context.Background(), "Kapitel 1: Go är ett språk...", "sv")
	require.NoError(t, err)
	assert.Equal(t, "Go för alla", resp.Title)
	assert.Equal(t, 120, resp.EstimatedDuration)
	assert.Len(t, resp.SuggestedModules, 2)
}

func TestAnalyzeManuscriptFallback(t *testing.T) {
	svc, _ := newTestService("???", nil)

	resp, err := svc.AnalyzeManuscript(context.Background(), "något innehåll", "")
	require.NoError(t, err)
	assert.Equal(t, "Untitled Course", resp.Title)
	assert.NotNil(t, resp.KeyTopics)
}

func TestAnalyzeManuscriptEmptyContent(t *testing.T) {
	svc, inv := newTestService("{}", nil)

	_, err := svc.AnalyzeManuscript(context.Background(), "   ", "sv")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))
	assert.Equal(t, 0, inv.calls)
}

func TestRecommendModel(t *testing.T) {
	svc, _ := newTestService("", nil)

	high := svc.RecommendModel(ModelRecommendationRequest{TargetQuality: "high"})
	assert.Equal(t, "presenton", high.RecommendedModel)

	low := svc.RecommendModel(ModelRecommendationRequest{TargetQuality: "low"})
	assert.Equal(t, "internal", low.RecommendedModel)

	def := svc.RecommendModel(ModelRecommendationRequest{})
	assert.Equal(t, "internal", def.RecommendedModel)
	assert.Equal(t, []string{"presenton", "internal"}, def.Alternatives)
}

func TestRecommendResearchMode(t *testing.T) {
	svc, _ := newTestService("", nil)

	got := svc.RecommendResearchMode("Go", "")
	assert.Equal(t, "ai_research", got.RecommendedMode)
	assert.Equal(t, "standard", got.Depth)
	assert.Equal(t, []string{"web", "ai"}, got.Sources)
}
