package styleguide

import "strings"

// InstructionParams 组装增强指令所需的参数集
type InstructionParams struct {
	ContentType           string
	Verbosity             string
	Industry              string
	ImageStyle            string
	Mood                  string
	AudienceLevel         string
	PresentationStructure string
}

const typographyRules = "TYPOGRAPHY HIERARCHY: Use clear size progression - 44-48pt for main titles, 32-36pt for subtitles, 24-28pt for section headers, 20-24pt for body text. Bold key terms and numbers. Use consistent font family throughout (prefer sans-serif for modern look, serif for traditional/academic). Maintain 1.4-1.6 line spacing for readability. Use font weight (light, regular, bold) to create hierarchy without size changes."

const spacingRules = "SPACING & LAYOUT: Generous margins minimum 8-10% on all sides. Maintain consistent padding between elements (24-32px). Group related items visually with proximity. Use grid alignment - no arbitrary positioning. Create clear visual paths for eye movement (Z-pattern for text-heavy, F-pattern for scan-friendly). Balance text and white space at 50-50 or 40-60 ratio. Use the rule of thirds for optimal element placement."

const hierarchyRules = "VISUAL HIERARCHY: Most critical information in top-left or center (F-pattern reading). Use size, color, position, and weight to establish importance. Headlines should communicate key message even if body text is ignored. Bullet points should be scannable in 3 seconds. Numbers and statistics should stand out visually with larger size or contrasting color. Use color sparingly for emphasis - maximum 3 colors plus neutrals."

const qualityStandards = `UNIVERSAL QUALITY STANDARDS:
(1) 5-Second Rule: Can viewer understand the key message in 5 seconds without reading everything?
(2) One Idea Per Slide: Each slide should communicate ONE main concept - split complex topics across multiple slides
(3) Narrative Flow: Does each slide advance the story logically? Include clear transitions and connections
(4) Image Relevance: Are all images directly supporting the message? No decorative filler images
(5) Legibility Test: Is text readable from 10 feet away? Test minimum font sizes
(6) Color Contrast: Do colors have sufficient contrast (WCAG AA minimum 4.5:1)? Avoid low-contrast combinations
(7) Consistency: Are fonts, colors, spacing, and alignment consistent throughout? Create visual unity
(8) Data Integrity: Are all statistics accurate and properly sourced? Include citations for claims
(9) Accessibility: Consider colorblind-friendly palettes, alt text concepts, and clear visual hierarchy
(10) Professional Polish: No typos, consistent formatting, proper grammar, aligned elements
(11) Audience Appropriateness: Language, tone, and complexity match audience level and context
(12) Actionable Content: Each slide should drive understanding or action - no filler slides`

const swedishEncoding = "SWEDISH LANGUAGE REQUIREMENTS: Use proper UTF-8 encoding for all Swedish characters (å, ä, ö, Å, Ä, Ö). Ensure all text is properly encoded without character substitutions or encoding errors. Use Swedish grammar conventions and appropriate formality level. Verify all special characters display correctly in final output."

const storytellingRules = `STORYTELLING & ENGAGEMENT:
- Start with a hook: compelling question, surprising statistic, or bold statement
- Create emotional connection: use stories, examples, and relatable scenarios
- Build tension and resolution: present problem before solution
- Use the Rule of Three: group information in threes for memorability
- Include surprising or counterintuitive insights to maintain interest
- End with clear takeaway and next steps
- Use transitions that connect slides logically
- Vary slide layouts to maintain visual interest
- Include moments for audience reflection or discussion
- Make content scannable for different audience attention levels`

// BuildEnhancedInstructions 为第三方幻灯片引擎拼装完整的设计指令块。
// 各指导块按固定顺序拼接，行业指导仅在词表覆盖的行业下出现。
func BuildEnhancedInstructions(p InstructionParams) string {
	parts := []string{
		LayoutGuidance(p.ContentType),
		TextDensityInstructions(p.Verbosity),
		typographyRules,
		spacingRules,
		hierarchyRules,
		ImageAndVisualGuidance(p.ImageStyle, p.Mood),
		ColorAndDesignPrinciples(),
		SlideTypeGuidance(),
	}

	if g := IndustryDesignGuide(p.Industry); g != "" {
		parts = append(parts, g)
	}

	parts = append(parts, qualityStandards, swedishEncoding, storytellingRules)

	return strings.Join(parts, " ")
}
