package screens

import (
	"github.com/spigell/hr-assistant/internal/ai"
)

const (
	FeatureResumeMatch = "resume_match"

	resumeMatchFailure = "Erro ao analisar currículo. Verifique se o conteúdo é válido."
	resumeMatchMissing = "Por favor, preencha a descrição da vaga e o conteúdo do currículo."
)

// Tone is the visual treatment of a rendered value.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
)

func NewResumeMatch(assistant ai.Assistant, deps Deps) *ResumeMatchFeature {
	validate := func(req ai.ResumeMatchRequest) error {
		return ValidateResumeMatch(req, deps.Limits)
	}
	return newFeature(FeatureResumeMatch, resumeMatchFailure, validate, assistant.AnalyzeResume, deps)
}

func ValidateResumeMatch(req ai.ResumeMatchRequest, limits Limits) error {
	if blank(req.JobDescription) {
		return &ValidationError{Field: "jobDescription", Message: resumeMatchMissing}
	}
	if blank(req.ResumeText) {
		return &ValidationError{Field: "resumeText", Message: resumeMatchMissing}
	}

	if err := checkLength(limits, "jobDescription", "descrição da vaga", req.JobDescription); err != nil {
		return err
	}
	return checkLength(limits, "resumeText", "currículo", req.ResumeText)
}

// ScoreTone maps a match score to its treatment: 80 and above is a success,
// 60 to 79 a warning, anything lower a danger.
func ScoreTone(score int) Tone {
	switch {
	case score >= 80:
		return ToneSuccess
	case score >= 60:
		return ToneWarning
	default:
		return ToneDanger
	}
}

// RecommendationTone maps a verdict to its treatment. Values outside the
// schema enum fall through to danger.
func RecommendationTone(rec ai.Recommendation) Tone {
	switch rec {
	case ai.RecommendationHire, ai.RecommendationStrongCandidate:
		return ToneSuccess
	case ai.RecommendationConsider:
		return ToneWarning
	default:
		return ToneDanger
	}
}
