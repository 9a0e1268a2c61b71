package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type APITestSuite struct {
	suite.Suite
	env *testEnv
}

func (s *APITestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) TestRegisterDuplicateUsername() {
	w := s.env.do("POST", "/api/auth/register", "", gin.H{"username": "testuser", "password": "pw123456"})
	require.Equal(s.T(), http.StatusCreated, w.Code)

	w = s.env.do("POST", "/api/auth/register", "", gin.H{"username": "testuser", "password": "other"})
	assert.Equal(s.T(), http.StatusConflict, w.Code)
}

func (s *APITestSuite) TestTokenWrongPassword() {
	s.env.registerAndLogin("testuser", "pw123456")

	w := s.env.do("POST", "/api/token", "", gin.H{"username": "testuser", "password": "wrong"})
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestMe() {
	token := s.env.registerAndLogin("testuser", "pw123456")

	w := s.env.do("GET", "/api/auth/me", token, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)

	var me struct {
		Username string `json:"username"`
	}
	s.env.decode(w, &me)
	assert.Equal(s.T(), "testuser", me.Username)
}

func (s *APITestSuite) TestRefreshRotation() {
	w := s.env.do("POST", "/api/auth/register", "", gin.H{"username": "testuser", "password": "pw123456"})
	require.Equal(s.T(), http.StatusCreated, w.Code)

	w = s.env.do("POST", "/api/token", "", gin.H{"username": "testuser", "password": "pw123456"})
	require.Equal(s.T(), http.StatusOK, w.Code)
	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	s.env.decode(w, &pair)

	w = s.env.do("POST", "/api/token/refresh", "", gin.H{"refresh": pair.Refresh})
	require.Equal(s.T(), http.StatusOK, w.Code)
	var next struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	s.env.decode(w, &next)
	assert.NotEmpty(s.T(), next.Refresh)
	assert.NotEqual(s.T(), pair.Refresh, next.Refresh)

	// The first refresh token was consumed.
	w = s.env.do("POST", "/api/token/refresh", "", gin.H{"refresh": pair.Refresh})
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestProtectedRoutesRequireToken() {
	w := s.env.do("GET", "/api/resumes", "", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	w = s.env.do("GET", "/api/resumes", "not-a-jwt", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestResumeDefaultTitle() {
	token := s.env.registerAndLogin("testuser", "pw123456")

	w := s.env.do("POST", "/api/resumes", token, gin.H{})
	require.Equal(s.T(), http.StatusCreated, w.Code)

	var created struct {
		Title string `json:"title"`
	}
	s.env.decode(w, &created)
	assert.Equal(s.T(), "My Resume", created.Title)
}

func (s *APITestSuite) TestResumeLifecycleWithSummary() {
	token := s.env.registerAndLogin("testuser", "pw123456")
	resumeID := s.env.createResume(token, "My Test Resume")

	w := s.env.do("POST", "/api/projects", token, gin.H{
		"resume":     resumeID,
		"title":      "Test Project",
		"tech_stack": "Go, PostgreSQL",
	})
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	w = s.env.do("POST", "/api/skills", token, gin.H{
		"resume": resumeID,
		"name":   "Go",
		"level":  "Advanced",
	})
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	w = s.env.do("POST", "/api/experiences", token, gin.H{
		"resume":     resumeID,
		"company":    "Acme",
		"role":       "Backend Engineer",
		"start_date": "2023-01-09",
	})
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	w = s.env.do("POST", "/api/resumes/"+resumeID+"/generate_summary", token, nil)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var gen struct {
		Summary string `json:"summary"`
	}
	s.env.decode(w, &gen)
	assert.Greater(s.T(), len(gen.Summary), 10)
	assert.Contains(s.T(), gen.Summary, "Go")
	assert.Contains(s.T(), gen.Summary, "Backend Engineer at Acme")

	// The detail view carries the persisted summary and the children.
	w = s.env.do("GET", "/api/resumes/"+resumeID, token, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)

	var detail struct {
		Title       string  `json:"title"`
		SummaryText *string `json:"summary_text"`
		Projects    []struct {
			Title string `json:"title"`
		} `json:"projects"`
		Skills []struct {
			Name string `json:"name"`
		} `json:"skills"`
	}
	s.env.decode(w, &detail)
	assert.Equal(s.T(), "My Test Resume", detail.Title)
	require.NotNil(s.T(), detail.SummaryText)
	assert.Equal(s.T(), gen.Summary, *detail.SummaryText)
	require.Len(s.T(), detail.Projects, 1)
	assert.Equal(s.T(), "Test Project", detail.Projects[0].Title)
	require.Len(s.T(), detail.Skills, 1)
}

func (s *APITestSuite) TestResumeUpdateAndDelete() {
	token := s.env.registerAndLogin("testuser", "pw123456")
	resumeID := s.env.createResume(token, "Draft")

	w := s.env.do("PUT", "/api/resumes/"+resumeID, token, gin.H{"title": "Final"})
	require.Equal(s.T(), http.StatusOK, w.Code)
	var updated struct {
		Title string `json:"title"`
	}
	s.env.decode(w, &updated)
	assert.Equal(s.T(), "Final", updated.Title)

	w = s.env.do("DELETE", "/api/resumes/"+resumeID, token, nil)
	assert.Equal(s.T(), http.StatusNoContent, w.Code)

	w = s.env.do("GET", "/api/resumes/"+resumeID, token, nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestOwnershipIsolation() {
	aliceToken := s.env.registerAndLogin("alice", "pw123456")
	bobToken := s.env.registerAndLogin("bob", "pw123456")

	resumeID := s.env.createResume(aliceToken, "Alice Resume")

	// Another account's resume is invisible, not forbidden.
	w := s.env.do("GET", "/api/resumes/"+resumeID, bobToken, nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)

	w = s.env.do("PUT", "/api/resumes/"+resumeID, bobToken, gin.H{"title": "Hijacked"})
	assert.Equal(s.T(), http.StatusNotFound, w.Code)

	w = s.env.do("DELETE", "/api/resumes/"+resumeID, bobToken, nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)

	// Attaching a record to a resume you can name but not own is the
	// one case that answers forbidden.
	w = s.env.do("POST", "/api/projects", bobToken, gin.H{
		"resume": resumeID,
		"title":  "Sneaky",
	})
	assert.Equal(s.T(), http.StatusForbidden, w.Code)
	assert.Equal(s.T(), 0, s.env.store.CountProjects())

	// Alice still sees her resume untouched.
	w = s.env.do("GET", "/api/resumes/"+resumeID, aliceToken, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	var detail struct {
		Title string `json:"title"`
	}
	s.env.decode(w, &detail)
	assert.Equal(s.T(), "Alice Resume", detail.Title)
}

func (s *APITestSuite) TestChildRecordListIsOwnerScoped() {
	aliceToken := s.env.registerAndLogin("alice", "pw123456")
	bobToken := s.env.registerAndLogin("bob", "pw123456")

	aliceResume := s.env.createResume(aliceToken, "Alice Resume")
	w := s.env.do("POST", "/api/skills", aliceToken, gin.H{"resume": aliceResume, "name": "Go"})
	require.Equal(s.T(), http.StatusCreated, w.Code)

	w = s.env.do("GET", "/api/skills", bobToken, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	var skills []struct {
		Name string `json:"name"`
	}
	s.env.decode(w, &skills)
	assert.Empty(s.T(), skills)
}

func (s *APITestSuite) TestExportPDF() {
	token := s.env.registerAndLogin("testuser", "pw123456")
	resumeID := s.env.createResume(token, "My Test Resume")

	w := s.env.do("GET", "/api/resumes/"+resumeID+"/export_pdf", token, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)

	assert.Equal(s.T(), "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(s.T(), w.Header().Get("Content-Disposition"), "resume_"+resumeID+".pdf")
	assert.True(s.T(), strings.HasPrefix(w.Body.String(), "%PDF"))
}

func (s *APITestSuite) TestExportPDFForeignResumeNotFound() {
	aliceToken := s.env.registerAndLogin("alice", "pw123456")
	bobToken := s.env.registerAndLogin("bob", "pw123456")
	resumeID := s.env.createResume(aliceToken, "Alice Resume")

	w := s.env.do("GET", "/api/resumes/"+resumeID+"/export_pdf", bobToken, nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestInvalidDateRejected() {
	token := s.env.registerAndLogin("testuser", "pw123456")
	resumeID := s.env.createResume(token, "My Test Resume")

	w := s.env.do("POST", "/api/experiences", token, gin.H{
		"resume":     resumeID,
		"company":    "Acme",
		"role":       "Engineer",
		"start_date": "01/09/2023",
	})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}
