package screens

// View identifies the mounted screen.
type View string

const (
	ViewJobGenerator   View = "vagas"
	ViewResumeAnalyzer View = "curriculos"
	ViewInterviewPrep  View = "entrevistas"
)

// DefaultView is shown on start and for unknown views.
const DefaultView = ViewJobGenerator

func Views() []View {
	return []View{ViewJobGenerator, ViewResumeAnalyzer, ViewInterviewPrep}
}

func (v View) Label() string {
	switch v {
	case ViewResumeAnalyzer:
		return "Analista de Currículo"
	case ViewInterviewPrep:
		return "Entrevistas"
	default:
		return "Gerador de Vagas"
	}
}

func (v View) Path() string {
	return "/" + string(ParseView(string(v)))
}

// ParseView resolves a view name, falling back to DefaultView.
func ParseView(name string) View {
	for _, v := range Views() {
		if string(v) == name {
			return v
		}
	}
	return DefaultView
}

// ViewByLabel resolves a menu label, falling back to DefaultView.
func ViewByLabel(label string) View {
	for _, v := range Views() {
		if v.Label() == label {
			return v
		}
	}
	return DefaultView
}
