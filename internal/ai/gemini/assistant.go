package gemini

import (
	"context"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spigell/hr-assistant/internal/ai"
	"github.com/spigell/hr-assistant/internal/logger"
)

type contentGenerator interface {
	Generate(ctx context.Context, req Request) (string, error)
	Model() string
}

var (
	//go:embed prompts/job_posting.md
	jobPostingPrompt string
	//go:embed prompts/resume_match.md
	resumeMatchPrompt string
	//go:embed prompts/interview_script.md
	interviewScriptPrompt string
)

const (
	defaultMaxLogLength = 200

	featureJobPosting      = "job_posting"
	featureResumeMatch     = "resume_match"
	featureInterviewScript = "interview_script"
)

// Temperatures holds the sampling temperature per feature. The evaluative
// résumé analysis runs colder than the two generative features.
type Temperatures struct {
	JobPosting      float32
	ResumeMatch     float32
	InterviewScript float32
}

func DefaultTemperatures() Temperatures {
	return Temperatures{
		JobPosting:      0.7,
		ResumeMatch:     0.2,
		InterviewScript: 0.6,
	}
}

// Assistant implements ai.Assistant on top of Gemini structured output.
type Assistant struct {
	generator    contentGenerator
	temperatures Temperatures
	logger       *zap.Logger
	maxLogLen    int
}

var _ ai.Assistant = (*Assistant)(nil)

func NewAssistant(generator contentGenerator, temperatures Temperatures, maxLogLength int, log *zap.Logger) *Assistant {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Assistant{
		generator:    generator,
		temperatures: temperatures,
		logger:       logger.WithCommonFields(log, "gemini", generator.Model()),
		maxLogLen:    maxLogLength,
	}
}

func (a *Assistant) GenerateJobPosting(ctx context.Context, req ai.JobPostingRequest) (*ai.JobPostingResult, error) {
	prompt := renderPrompt(jobPostingPrompt,
		"{{TITLE}}", req.Title,
		"{{DEPARTMENT}}", req.Department,
		"{{REQUIREMENTS}}", req.Requirements,
		"{{TONE}}", string(req.Tone),
	)

	raw, err := a.generate(ctx, featureJobPosting, prompt, jobPostingSchema(), a.temperatures.JobPosting)
	if err != nil {
		return nil, err
	}

	result, err := decodeResult[ai.JobPostingResult](raw)
	if err != nil {
		return nil, err
	}

	result.Responsibilities = nonNil(result.Responsibilities)
	result.Requirements = nonNil(result.Requirements)
	result.Benefits = nonNil(result.Benefits)

	return result, nil
}

func (a *Assistant) AnalyzeResume(ctx context.Context, req ai.ResumeMatchRequest) (*ai.ResumeMatchResult, error) {
	prompt := renderPrompt(resumeMatchPrompt,
		"{{JOB_DESCRIPTION}}", req.JobDescription,
		"{{RESUME_TEXT}}", req.ResumeText,
	)

	raw, err := a.generate(ctx, featureResumeMatch, prompt, resumeMatchSchema(), a.temperatures.ResumeMatch)
	if err != nil {
		return nil, err
	}

	result, err := decodeResult[ai.ResumeMatchResult](raw)
	if err != nil {
		return nil, err
	}

	if clamped := clampScore(result.MatchScore); clamped != result.MatchScore {
		a.logger.Warn("match score out of range, clamping",
			zap.Int("score", result.MatchScore),
			zap.Int("clamped", clamped),
		)
		result.MatchScore = clamped
	}

	result.Strengths = nonNil(result.Strengths)
	result.Weaknesses = nonNil(result.Weaknesses)
	result.MissingKeywords = nonNil(result.MissingKeywords)

	return result, nil
}

func (a *Assistant) GenerateInterviewScript(ctx context.Context, req ai.InterviewPrepRequest) (*ai.InterviewScriptResult, error) {
	prompt := renderPrompt(interviewScriptPrompt,
		"{{LEVEL}}", string(req.Level),
		"{{ROLE}}", req.Role,
		"{{FOCUS}}", req.Focus,
	)

	raw, err := a.generate(ctx, featureInterviewScript, prompt, interviewScriptSchema(), a.temperatures.InterviewScript)
	if err != nil {
		return nil, err
	}

	result, err := decodeResult[ai.InterviewScriptResult](raw)
	if err != nil {
		return nil, err
	}

	if result.Questions == nil {
		result.Questions = []ai.InterviewQuestion{}
	}
	for i := range result.Questions {
		result.Questions[i].ExpectedAnswerKeyPoints = nonNil(result.Questions[i].ExpectedAnswerKeyPoints)
	}

	return result, nil
}

func (a *Assistant) generate(ctx context.Context, feature, prompt string, schema *genai.Schema, temperature float32) (string, error) {
	a.logger.Debug("gemini generate content request",
		zap.String("feature", feature),
		zap.Float32("temperature", temperature),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.Preview(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.Generate(ctx, Request{
		Prompt:      prompt,
		Schema:      schema,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}

	a.logger.Debug("gemini generate content response",
		zap.String("feature", feature),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.Preview(raw, a.maxLogLen)),
	)

	return raw, nil
}

// renderPrompt substitutes placeholders in a single pass so that user input
// containing a placeholder is kept verbatim.
func renderPrompt(template string, oldnew ...string) string {
	return strings.TrimSpace(strings.NewReplacer(oldnew...).Replace(template))
}

func clampScore(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
