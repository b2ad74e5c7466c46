package ai

import (
	"context"
	"errors"
)

//go:generate mockgen -source=assistant.go -package=mocks -destination=mocks/assistant_mock.go Assistant

var (
	// ErrNoContent is returned when the model produced no text at all.
	ErrNoContent = errors.New("no content generated")
	// ErrMalformedResponse is returned when the model text does not match the declared schema.
	ErrMalformedResponse = errors.New("malformed model response")
)

// Assistant is the gateway between the screens and the generative model.
// Callers validate requests before invoking it.
type Assistant interface {
	GenerateJobPosting(ctx context.Context, req JobPostingRequest) (*JobPostingResult, error)
	AnalyzeResume(ctx context.Context, req ResumeMatchRequest) (*ResumeMatchResult, error)
	GenerateInterviewScript(ctx context.Context, req InterviewPrepRequest) (*InterviewScriptResult, error)
}

type Tone string

const (
	ToneFormal        Tone = "Formal"
	ToneCasual        Tone = "Casual"
	ToneInspirational Tone = "Inspirador"
)

// Tones lists the accepted tones in display order.
func Tones() []Tone {
	return []Tone{ToneFormal, ToneCasual, ToneInspirational}
}

type Recommendation string

const (
	RecommendationReject          Recommendation = "Rejeitar"
	RecommendationConsider        Recommendation = "Considerar"
	RecommendationStrongCandidate Recommendation = "Forte Candidato"
	RecommendationHire            Recommendation = "Contratar"
)

func Recommendations() []Recommendation {
	return []Recommendation{RecommendationReject, RecommendationConsider, RecommendationStrongCandidate, RecommendationHire}
}

type Level string

const (
	LevelJunior     Level = "Júnior"
	LevelMid        Level = "Pleno"
	LevelSenior     Level = "Sênior"
	LevelSpecialist Level = "Especialista"
	LevelManagement Level = "Gestão"
)

func Levels() []Level {
	return []Level{LevelJunior, LevelMid, LevelSenior, LevelSpecialist, LevelManagement}
}

type QuestionType string

const (
	QuestionTechnical   QuestionType = "Técnica"
	QuestionBehavioral  QuestionType = "Comportamental"
	QuestionSituational QuestionType = "Situacional"
)

func QuestionTypes() []QuestionType {
	return []QuestionType{QuestionTechnical, QuestionBehavioral, QuestionSituational}
}

type JobPostingRequest struct {
	Title        string `json:"title" form:"title"`
	Department   string `json:"department" form:"department"`
	Requirements string `json:"requirements" form:"requirements"`
	Tone         Tone   `json:"tone" form:"tone"`
}

type JobPostingResult struct {
	Title            string   `json:"title" mapstructure:"title"`
	Summary          string   `json:"summary" mapstructure:"summary"`
	Responsibilities []string `json:"responsibilities" mapstructure:"responsibilities"`
	Requirements     []string `json:"requirements" mapstructure:"requirements"`
	Benefits         []string `json:"benefits" mapstructure:"benefits"`
}

type ResumeMatchRequest struct {
	JobDescription string `json:"jobDescription" form:"jobDescription"`
	ResumeText     string `json:"resumeText" form:"resumeText"`
}

type ResumeMatchResult struct {
	MatchScore      int            `json:"matchScore" mapstructure:"matchScore"`
	Summary         string         `json:"summary" mapstructure:"summary"`
	Strengths       []string       `json:"strengths" mapstructure:"strengths"`
	Weaknesses      []string       `json:"weaknesses" mapstructure:"weaknesses"`
	MissingKeywords []string       `json:"missingKeywords" mapstructure:"missingKeywords"`
	Recommendation  Recommendation `json:"recommendation" mapstructure:"recommendation"`
}

type InterviewPrepRequest struct {
	Role  string `json:"role" form:"role"`
	Level Level  `json:"level" form:"level"`
	Focus string `json:"focus" form:"focus"`
}

type InterviewQuestion struct {
	Question                string       `json:"question" mapstructure:"question"`
	Type                    QuestionType `json:"type" mapstructure:"type"`
	ExpectedAnswerKeyPoints []string     `json:"expectedAnswerKeyPoints" mapstructure:"expectedAnswerKeyPoints"`
}

type InterviewScriptResult struct {
	Introduction string              `json:"introduction" mapstructure:"introduction"`
	Questions    []InterviewQuestion `json:"questions" mapstructure:"questions"`
	Conclusion   string              `json:"conclusion" mapstructure:"conclusion"`
}
