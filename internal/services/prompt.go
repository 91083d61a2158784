package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// languageNames maps supported ISO 639-1 codes to the language name used in
// translation prompts. Unknown codes pass through literally.
var languageNames = map[string]string{
	"ar": "Arabic",
	"de": "German",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"it": "Italian",
	"ja": "Japanese",
	"pl": "Polish",
	"pt": "Portuguese",
	"ru": "Russian",
	"zh": "Chinese",
}

func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// BuildOptimizePrompt renders the optimization instruction template for the
// given style. Unknown style labels are passed through verbatim; the model is
// asked to interpret them directly.
func (pb *PromptBuilder) BuildOptimizePrompt(style string) string {
	return fmt.Sprintf(optimizeTemplate, style)
}

// BuildTranslatePrompt renders the translation instruction template for the
// given ISO language code.
func (pb *PromptBuilder) BuildTranslatePrompt(languageCode string) string {
	return fmt.Sprintf(translateTemplate, LanguageName(languageCode))
}

const optimizeTemplate = `You are a professional CV/resume optimization expert. I will provide you with a CV/resume content, and you need to optimize it significantly.

STYLE: %s

Your task is to:

1. CONTENT OPTIMIZATION:
   - Rewrite bullet points to be more impactful and quantified
   - Enhance job descriptions with strong action verbs and measurable achievements
   - Add relevant keywords for ATS (Applicant Tracking Systems)
   - Remove weak or redundant content
   - Strengthen the professional summary/objective
   - Improve skills section with relevant technical and soft skills

2. LANGUAGE ENHANCEMENT:
   - Use powerful, professional language
   - Fix grammar and spelling issues
   - Improve clarity and conciseness
   - Use industry-appropriate terminology
   - Make achievements more compelling

3. STRUCTURE IMPROVEMENTS:
   - Organize information in logical order
   - Ensure consistent formatting
   - Optimize section headers
   - Improve readability and flow

4. STYLE-SPECIFIC GUIDELINES:
   - Modern: Contemporary language, clean structure, focus on achievements
   - Professional: Formal tone, traditional structure, conservative approach
   - Creative: Unique phrasing while maintaining professionalism
   - Classic: Timeless format, standard sections, proven structure

IMPORTANT: Return ONLY the optimized CV content. Do not include explanations, comments, or meta-text. The response should be the complete, ready-to-use optimized CV that is significantly better than the original.

Original CV content to optimize:

`

const translateTemplate = `You are a professional CV/resume translator specializing in career documents. I will provide you with a CV/resume, and you need to translate it to %[1]s.

TARGET LANGUAGE: %[1]s

Your task is to:

1. PROFESSIONAL TRANSLATION:
   - Translate all content accurately while maintaining professional tone
   - Use appropriate business/career terminology in %[1]s
   - Preserve the meaning and impact of achievements
   - Maintain professional formatting and structure

2. CULTURAL ADAPTATION:
   - Adapt content to %[1]s professional standards
   - Use culturally appropriate professional language
   - Adjust job titles to local market standards when appropriate
   - Consider regional business practices

3. QUALITY ASSURANCE:
   - Ensure grammatically correct %[1]s
   - Use professional vocabulary appropriate for CVs/resumes
   - Maintain consistency in terminology
   - Preserve professional impact and readability

4. STRUCTURE PRESERVATION:
   - Keep original formatting and layout structure
   - Translate section headers appropriately (Experience, Education, Skills, etc.)
   - Preserve dates, numbers, and proper nouns where appropriate
   - Maintain bullet points and visual hierarchy

IMPORTANT: Return ONLY the translated CV content in %[1]s. Do not include explanations, comments, or meta-text. The response should be the complete, professionally translated CV ready for use in %[1]s-speaking regions.

CV content to translate:

`
