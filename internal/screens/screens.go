// Package screens holds the three HR assistant features: form validation,
// submission state and the presentational rules used to render results.
package screens

import (
	"go.uber.org/zap"

	"github.com/spigell/hr-assistant/internal/ai"
)

const defaultMaxInputRunes = 20000

// Limits bounds the free-text input accepted from forms.
type Limits struct {
	MaxInputRunes int
}

func (l Limits) maxInput() int {
	if l.MaxInputRunes <= 0 {
		return defaultMaxInputRunes
	}
	return l.MaxInputRunes
}

// Deps aggregates dependencies shared across all features.
type Deps struct {
	Logger   *zap.Logger
	Recorder Recorder
	Limits   Limits
}

type (
	JobPostingFeature  = Feature[ai.JobPostingRequest, ai.JobPostingResult]
	ResumeMatchFeature = Feature[ai.ResumeMatchRequest, ai.ResumeMatchResult]
	InterviewFeature   = Feature[ai.InterviewPrepRequest, ai.InterviewScriptResult]
)

// Features bundles one instance of every screen.
type Features struct {
	JobPosting  *JobPostingFeature
	ResumeMatch *ResumeMatchFeature
	Interview   *InterviewFeature
}

func New(assistant ai.Assistant, deps Deps) *Features {
	return &Features{
		JobPosting:  NewJobPosting(assistant, deps),
		ResumeMatch: NewResumeMatch(assistant, deps),
		Interview:   NewInterview(assistant, deps),
	}
}
