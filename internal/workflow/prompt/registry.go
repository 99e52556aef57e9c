package prompt

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed templates/*.txt
var templatesFS embed.FS

type PromptID string

const (
	PromptCourseTitlesSv  PromptID = "course_titles_sv"
	PromptCourseTitlesEn  PromptID = "course_titles_en"
	PromptCourseOutlineSv PromptID = "course_outline_sv"
	PromptCourseOutlineEn PromptID = "course_outline_en"
	PromptModuleScriptSv  PromptID = "module_script_sv"
	PromptModuleScriptEn  PromptID = "module_script_en"
	PromptSlideDeckSv     PromptID = "slide_deck_sv"
	PromptSlideDeckEn     PromptID = "slide_deck_en"
	PromptQuizSv          PromptID = "quiz_sv"
	PromptQuizEn          PromptID = "quiz_en"
	PromptExercisesSv     PromptID = "exercises_sv"
	PromptExercisesEn     PromptID = "exercises_en"

	PromptContentReview      PromptID = "content_review"
	PromptTranslate          PromptID = "translate"
	PromptStructureAnalysis  PromptID = "structure_analysis"
	PromptManuscriptAnalysis PromptID = "manuscript_analysis"
	PromptTopicResearch      PromptID = "topic_research"
	PromptSlideEnhance       PromptID = "slide_enhance"
)

// knownPrompts 模板文件按 "<id>.system.txt" / "<id>.user.txt" 命名。
var knownPrompts = map[PromptID]struct{}{
	PromptCourseTitlesSv:     {},
	PromptCourseTitlesEn:     {},
	PromptCourseOutlineSv:    {},
	PromptCourseOutlineEn:    {},
	PromptModuleScriptSv:     {},
	PromptModuleScriptEn:     {},
	PromptSlideDeckSv:        {},
	PromptSlideDeckEn:        {},
	PromptQuizSv:             {},
	PromptQuizEn:             {},
	PromptExercisesSv:        {},
	PromptExercisesEn:        {},
	PromptContentReview:      {},
	PromptTranslate:          {},
	PromptStructureAnalysis:  {},
	PromptManuscriptAnalysis: {},
	PromptTopicResearch:      {},
	PromptSlideEnhance:       {},
}

type Registry struct {
	mu    sync.RWMutex
	cache map[PromptID]einoprompt.ChatTemplate
}

func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[PromptID]einoprompt.ChatTemplate),
	}
}

func (r *Registry) ChatTemplate(id PromptID) (einoprompt.ChatTemplate, error) {
	if r == nil {
		return nil, fmt.Errorf("prompt registry is nil")
	}

	r.mu.RLock()
	if tpl, ok := r.cache[id]; ok {
		r.mu.RUnlock()
		return tpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl, ok := r.cache[id]; ok {
		return tpl, nil
	}

	systemPath, userPath, err := resolvePromptFiles(id)
	if err != nil {
		return nil, err
	}
	system, err := readEmbeddedText(systemPath)
	if err != nil {
		return nil, err
	}
	user, err := readEmbeddedText(userPath)
	if err != nil {
		return nil, err
	}

	// 模板内嵌 JSON 示例结构，GoTemplate 的 {{ }} 占位符不会与 JSON 花括号冲突。
	tpl := einoprompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(system),
		schema.UserMessage(user),
	)
	r.cache[id] = tpl
	return tpl, nil
}

func resolvePromptFiles(id PromptID) (systemFile string, userFile string, err error) {
	if _, ok := knownPrompts[id]; !ok {
		return "", "", fmt.Errorf("unknown prompt id: %s", id)
	}
	return fmt.Sprintf("templates/%s.system.txt", id), fmt.Sprintf("templates/%s.user.txt", id), nil
}

func readEmbeddedText(path string) (string, error) {
	b, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
