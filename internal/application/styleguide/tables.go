package styleguide

import "strings"

// 本文件全部为静态查表，未识别的枚举值落到 "standard"/"professional" 块。

// VerbosityGuidance 内部幻灯片生成用的文本密度指导
func VerbosityGuidance(verbosity string) string {
	switch verbosity {
	case "concise":
		return "Maximum 15 words per slide. Headlines 5-7 words. Use minimal text, maximum 5 bullets with 3-5 words each."
	case "text-heavy":
		return "Maximum 60 words per slide. Headlines 8-12 words. Use 5-7 bullets with 8-12 words each, can include brief paragraphs."
	default:
		return "Maximum 30-35 words per slide. Headlines 6-10 words. Use 4-5 bullets with 5-8 words each."
	}
}

// ToneGuidance 内部幻灯片生成用的语气指导
func ToneGuidance(tone string) string {
	switch tone {
	case "professional":
		return "Formal, authoritative, data-driven language. Use technical terms appropriately."
	case "casual":
		return "Friendly, conversational tone. Use simple language and relatable examples."
	case "educational":
		return "Clear, pedagogical approach. Define concepts, provide examples, check understanding."
	case "inspirational":
		return "Motivational, uplifting language. Focus on transformation and possibility."
	default:
		return "Professional and clear"
	}
}

// SlideLayoutGuidance 布局多样性指导
func SlideLayoutGuidance() string {
	return `Layout types to use:
- 'title': Opening/closing slides, major section breaks (1-2 slides)
- 'title-content': Key statements with supporting detail (30% of slides)
- 'bullet-points': Lists of related items, process steps (25% of slides)
- 'two-column': Comparisons, before/after, pros/cons (15% of slides)
- 'image-focus': Emotional moments, product showcases (15% of slides)
- 'data-visualization': Statistics, trends, metrics (10% of slides)
- 'quote': Expert testimony, key takeaways (5% of slides)

IMPORTANT: Vary the layouts throughout - avoid using same layout consecutively.`
}

// LayoutGuidance 按内容类型给出结构化指导
func LayoutGuidance(contentType string) string {
	guides := map[string]string{
		"tutorial":   "Structure as step-by-step progression. Each slide: action-oriented title with step number, 3-4 concise action bullets starting with verbs, visual diagram or screenshot. Include 'Prerequisites' slide early and 'Next Steps' slide at end. Use numbered progression throughout.",
		"comparison": "Use two-column layouts extensively for side-by-side comparison. Create comparison matrix slide with key attributes. Include pros/cons summary slide. Use consistent visual icons/colors for each option being compared. End with recommendation slide based on use case.",
		"pitch":      "Follow pitch deck structure: Hook slide (attention-grabbing stat/question), Problem slide (market pain with data), Solution slide (your product/service benefits), Traction slide (proof points/metrics), Market Opportunity slide (TAM/SAM/SOM), Business Model slide (revenue streams), Competition slide (positioning), Team slide (credentials), Financials slide (projections), Ask/Conclusion slide (clear CTA). Use bold headlines that can stand alone.",
		"report":     "Start with Executive Summary slide (1-sentence overview, 3-5 key findings). Use data visualization heavily - charts for trends, tables for comparisons. Include Methodology slide. Each finding gets dedicated slide with supporting data. End with Recommendations slide (actionable items) and Appendix slide references.",
		"training":   "Open with Learning Objectives slide (3-5 specific, measurable outcomes). Use Concept, Example, Practice structure. Include Knowledge Check slides after major sections. Use progressive disclosure - build complexity gradually. Add visual summaries/cheat sheets. End with Key Takeaways slide and Resources slide.",
		"timeline":   "Use chronological progression. Each major milestone gets a slide with: date/period, what happened, why it matters, visual timeline graphic. Use consistent date formatting. Include context for each era/phase. End with 'Where We Are Now' and 'What's Next' slides.",
		"case-study": "Structure: Context/Background slide, Challenge/Problem slide, Solution/Approach slide (what was done), Results/Impact slide (quantified outcomes with before/after), Lessons Learned slide, Testimonial/Quote slide. Use real data and specific numbers. Include customer logo/branding where appropriate.",
		"general":    "Use proven narrative structure: Hook/Opening (why this matters now), Context/Background (set the stage), 3-5 Main Points (each with supporting evidence), Practical Application/Implications, Summary/Key Takeaways, Call to Action/Next Steps. Vary layouts - avoid repetitive bullet-point slides.",
	}
	if g, ok := guides[contentType]; ok {
		return g
	}
	return guides["general"]
}

// TextDensityInstructions 按详略档位给出文本密度规则
func TextDensityInstructions(verbosity string) string {
	switch verbosity {
	case "concise":
		return `CRITICAL TEXT DENSITY RULES:
- Maximum 15 words per slide body (total, not per bullet)
- Headlines: 5-7 words maximum, must be scannable in 2 seconds, use action verbs
- Bullets: 3-5 bullets max, each 3-5 words (short phrases only)
- Font sizes: Minimum 28pt for body text, 40pt+ for headlines
- Use VAST white space - text should occupy <40% of slide area
- NO paragraphs or full sentences in body text
- Use impactful single words or short phrases
- Replace long text with icons, diagrams, or visuals
- Each slide should have ONE key takeaway
- Speaker notes: 80-120 words with full context`
	case "text-heavy":
		return `DETAILED TEXT DENSITY RULES:
- Maximum 60 words per slide body (still avoid walls of text)
- Headlines: 8-12 words, can be full sentences, must clearly state benefit or outcome
- Bullets: 5-7 bullets max, each 8-12 words (can be full sentences)
- Font sizes: Minimum 18pt for body, 32pt+ for headlines
- Use subheadings to organize longer content into scannable sections
- Allow brief paragraphs (2-3 sentences) for context, but break with visuals
- Include detailed explanations but maintain visual hierarchy
- Use numbered lists for sequential information
- Add callout boxes for critical information
- Speaker notes: 150-200 words with comprehensive detail, examples, and transitions`
	default:
		return `BALANCED TEXT DENSITY RULES:
- Maximum 30-35 words per slide body
- Headlines: 6-10 words, benefit-focused and action-oriented, answer "why this matters"
- Bullets: 4-5 bullets, each 5-8 words (short complete thoughts)
- Font sizes: Minimum 22pt for body, 36pt+ for headlines
- Use mix of short and medium-length bullets for variety and emphasis
- Occasional short paragraphs (1-2 sentences) for complex ideas
- Maintain clear visual hierarchy with size, weight, and color
- Use parallel structure (all bullets start with verb, noun, etc.)
- Highlight key numbers, terms, or statistics with color or bold
- Speaker notes: 100-130 words with additional context, examples, and smooth transitions`
	}
}

// ImageAndVisualGuidance 图像选择与视觉风格指导
func ImageAndVisualGuidance(imageStyle, mood string) string {
	base := `IMAGE QUALITY & SELECTION:
- Every image must directly support the slide message - no generic stock photos
- Use high-resolution images (minimum 1920x1080, prefer 4K)
- Images should evoke emotion and connection, not just fill space
- Prefer authentic, diverse representation of people
- Avoid cliché imagery (handshakes, thumbs up, generic office scenes)
- Use consistent image treatment (filters, overlays) throughout
- Images should have clear focal points and good composition
- When using AI-generated images, ensure photorealistic quality
- Consider cultural context and sensitivity
- Leave breathing room - don't crop too tightly`

	styleSpecific := map[string]string{
		"photography":   "Use professional photography with natural lighting. Prefer candid over staged shots. Ensure faces are visible and expressive. Use depth of field to create focus.",
		"illustrations": "Use modern, clean vector illustrations. Maintain consistent style and color palette. Ensure illustrations are simple enough to understand at a glance. Use flat design or subtle gradients.",
		"mixed":         "Combine photography for emotional impact and illustrations for concepts/data. Maintain visual consistency through color palette and style. Use photography for people/places, illustrations for processes/ideas.",
	}

	moodGuidance := map[string]string{
		"inspiring":  "Use uplifting imagery with bright, warm tones. Show achievement, growth, and success. Use upward movement and aspirational scenes.",
		"serious":    "Use professional, subdued imagery. Prefer cool tones and minimal decoration. Focus on credibility and expertise.",
		"energetic":  "Use dynamic imagery with bold colors and movement. Show action and excitement. Use diagonal lines and vibrant contrasts.",
		"confident":  "Use strong, clear imagery with good contrast. Show competence and reliability. Use balanced composition and professional aesthetics.",
	}

	parts := []string{base}
	if s, ok := styleSpecific[imageStyle]; ok {
		parts = append(parts, "IMAGE STYLE: "+s)
	}
	if m, ok := moodGuidance[mood]; ok {
		parts = append(parts, "MOOD & TONE: "+m)
	}
	return strings.Join(parts, " ")
}

// ColorAndDesignPrinciples 配色与排版通用原则
func ColorAndDesignPrinciples() string {
	return `COLOR & DESIGN PRINCIPLES:
- Use 60-30-10 rule: 60% dominant color, 30% secondary, 10% accent
- Ensure WCAG AA contrast ratio minimum: 4.5:1 for text, 3:1 for large text
- Use color psychology: Blue=trust/calm, Red=urgency/passion, Green=growth/health, Yellow=optimism/caution
- Create visual rhythm through repetition of colors, shapes, and spacing
- Use whitespace as a design element, not leftover space
- Align elements to create invisible grid structure
- Use the rule of thirds for image placement
- Create balance: symmetrical for formal, asymmetrical for dynamic
- Ensure consistency: same element types should look the same throughout
- Use proximity to group related information
- Create contrast to draw attention to key elements
- Maintain visual unity through consistent style, colors, and fonts`
}

// SlideTypeGuidance 按幻灯片类型的最佳实践
func SlideTypeGuidance() string {
	return `SLIDE TYPE BEST PRACTICES:
TITLE SLIDE: Large, bold title (60-72pt). Compelling subtitle explaining benefit. Minimal text. Strong hero image covering 50-70% of slide. Include presenter name/credentials if relevant.

AGENDA/TABLE OF CONTENTS: Maximum 5-7 main points. Use icons for each section. Include time estimates if relevant. Make it scannable - not a wall of text. Consider visual timeline or roadmap instead of bullet list.

DATA VISUALIZATION: One chart per slide. Clear axis labels and legend. Highlight key insights with color or annotations. Include data source. Use appropriate chart type: line for trends, bar for comparisons, pie for proportions (max 5 slices).

QUOTE SLIDE: Large, impactful quote (32-44pt). Clear attribution with photo if available. Minimal other text. Use quotation marks for clarity. Context in speaker notes if needed.

IMAGE SLIDE: Full-bleed or large featured image. Minimal text overlay. Ensure text is readable (use overlay or shadow). Text should complement, not explain the obvious.

COMPARISON SLIDE: Clear two-column or side-by-side layout. Consistent structure for each option. Use color coding to distinguish options. Include summary recommendation if appropriate.

CLOSING/THANK YOU: Clear call-to-action. Contact information. Next steps. Optional QR code for additional resources. Memorable closing statement or visual.`
}

// IndustryDesignGuide 行业专属设计指导，未覆盖的行业返回空串
func IndustryDesignGuide(industry string) string {
	guides := map[string]string{
		"healthcare": "HEALTHCARE DESIGN: Use professional medical imagery with clean, clinical aesthetics. Prioritize data accuracy and scientific rigor. Include clear citations for medical claims. Use calming blues, greens, and whites. Medical diagrams should be anatomically accurate and professionally illustrated. Include disclaimers where appropriate.",
		"finance":    "FINANCE DESIGN: Every claim requires data support with sources. Use charts for trends (line/area), tables for detailed numbers, bar charts for comparisons. Conservative color palette (blues, grays, minimal accent colors). Include disclaimers and risk disclosures. Focus on ROI, metrics, and quantifiable outcomes. Use financial terminology correctly.",
		"technology": "TECHNOLOGY DESIGN: Use modern geometric shapes and clean lines. Code snippets in monospace font with syntax highlighting. System architecture diagrams with clear component relationships. Feature-benefit pairs (technical capability to user value). Use tech-appropriate iconography. Include API examples or integration diagrams where relevant.",
		"education":  "EDUCATION DESIGN: Include learning objectives slide early (3-5 specific, measurable outcomes). Use engaging educational imagery and clear explanatory diagrams. Create visual hierarchy for key concepts vs. supporting details. Include knowledge check questions after major sections. Use mnemonic devices or visual metaphors for complex topics.",
		"marketing":  "MARKETING DESIGN: Use dynamic, attention-grabbing visuals. Include customer journey maps or funnel diagrams. Show before/after transformations. Use compelling statistics and social proof. Include brand personality through color and imagery. Feature real customer testimonials with photos. Use persuasive language focused on benefits and outcomes.",
	}
	return guides[industry]
}
