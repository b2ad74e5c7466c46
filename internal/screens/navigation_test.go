package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseView(t *testing.T) {
	assert.Equal(t, ViewResumeAnalyzer, ParseView("curriculos"))
	assert.Equal(t, ViewInterviewPrep, ParseView("entrevistas"))
	assert.Equal(t, DefaultView, ParseView(""))
	assert.Equal(t, DefaultView, ParseView("settings"))
}

func TestViewLabelsAndPaths(t *testing.T) {
	assert.Equal(t, "Gerador de Vagas", ViewJobGenerator.Label())
	assert.Equal(t, "Analista de Currículo", ViewResumeAnalyzer.Label())
	assert.Equal(t, "Entrevistas", ViewInterviewPrep.Label())

	assert.Equal(t, "/curriculos", ViewResumeAnalyzer.Path())
	assert.Equal(t, "/vagas", View("unknown").Path())

	for _, v := range Views() {
		assert.Equal(t, v, ViewByLabel(v.Label()))
	}
	assert.Equal(t, DefaultView, ViewByLabel("Configurações"))
}
