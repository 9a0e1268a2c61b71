package pdf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhduong/smartresume/internal/application/service"
)

func TestRenderProducesPDF(t *testing.T) {
	r := NewFpdfRenderer()

	out, err := r.Render(service.ResumeDocument{
		Title:        "My Test Resume",
		OwnerName:    "Test User",
		SummaryLines: []string{"A backend developer.", "Ships reliable services."},
		Projects: []service.ProjectLine{
			{Title: "Test Project", TechStack: "Go, PostgreSQL"},
		},
	})

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderEmptyDocument(t *testing.T) {
	r := NewFpdfRenderer()

	out, err := r.Render(service.ResumeDocument{Title: "Empty", OwnerName: "Nobody"})

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderManyLinesPaginates(t *testing.T) {
	r := NewFpdfRenderer()

	doc := service.ResumeDocument{Title: "Long", OwnerName: "Test User"}
	for i := 0; i < 120; i++ {
		doc.SummaryLines = append(doc.SummaryLines, fmt.Sprintf("Summary line %d", i))
	}

	out, err := r.Render(doc)

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
	// 120 lines at 7mm cannot fit a single A4 page.
	assert.Greater(t, len(out), 3000)
}
