package service

// ResumeDocument carries the already-authorized fields the PDF renderer
// lays out. Building it is the export use case's job; the renderer only
// draws.
type ResumeDocument struct {
	Title        string
	OwnerName    string
	SummaryLines []string
	Projects     []ProjectLine
}

type ProjectLine struct {
	Title     string
	TechStack string
}

type ResumeRenderer interface {
	Render(doc ResumeDocument) ([]byte, error)
}
