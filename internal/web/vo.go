package web

import (
	"github.com/spigell/hr-assistant/internal/ai"
	"github.com/spigell/hr-assistant/internal/screens"
)

type navItem struct {
	Label  string
	Path   string
	Active bool
}

type pageData struct {
	Title string
	Nav   []navItem
}

func newPageData(current screens.View) pageData {
	nav := make([]navItem, 0, len(screens.Views()))
	for _, v := range screens.Views() {
		nav = append(nav, navItem{Label: v.Label(), Path: v.Path(), Active: v == current})
	}
	return pageData{Title: current.Label(), Nav: nav}
}

type jobPostingView struct {
	pageData
	Form    ai.JobPostingRequest
	Tones   []ai.Tone
	Outcome screens.Outcome[ai.JobPostingResult]
	Export  string
}

type resumeMatchView struct {
	pageData
	Form        ai.ResumeMatchRequest
	Outcome     screens.Outcome[ai.ResumeMatchResult]
	UploadError string
	UploadName  string
}

type interviewView struct {
	pageData
	Form      ai.InterviewPrepRequest
	Levels    []ai.Level
	Outcome   screens.Outcome[ai.InterviewScriptResult]
	Accordion screens.Accordion
}
