package evaluation

import (
	"reflect"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cpe/internal/quiz"
)

func TestBuildPayload_TechScenario(t *testing.T) {
	r := quiz.Responses{
		"currentRole":    "swe-product",
		"experience":     "3-5",
		"problemSolving": "51-100",
		"systemDesign":   "learning",
		"portfolio":      "limited-1-5",
	}
	p, err := BuildPayload(r, Goals{TopicOfInterest: []string{"ai-ml"}}, quiz.BackgroundTech)
	require.NoError(t, err)

	assert.Equal(t, quiz.BackgroundTech, p.Background)
	assert.Equal(t, "Product Company", p.QuizResponses.CurrentCompany)
	assert.Equal(t, "Not specified", p.QuizResponses.TargetCompany)
	assert.Equal(t, "51-100", p.QuizResponses.CurrentSkill)
	assert.Equal(t, "never", p.QuizResponses.MockInterviews)
	assert.Equal(t, "fullstack-sde", p.QuizResponses.TargetRole)
	assert.Equal(t, "upskilling", p.QuizResponses.RequirementType)

	assert.Equal(t, []string{}, p.Goals.RequirementType)
	assert.Equal(t, "Not specified", p.Goals.TargetCompany)
	assert.Equal(t, []string{"ai-ml"}, p.Goals.TopicOfInterest)
}

func TestBuildPayload_NonTechInference(t *testing.T) {
	r := quiz.Responses{
		"currentBackground": "sales-marketing",
		"codeComfort":       "learning",
	}
	p, err := BuildPayload(r, Goals{}, quiz.BackgroundNonTech)
	require.NoError(t, err)

	assert.Equal(t, "11-50", p.QuizResponses.ProblemSolving)
	assert.Equal(t, "inactive", p.QuizResponses.Portfolio)
	assert.Equal(t, "not-yet", p.QuizResponses.SystemDesign)
	assert.Equal(t, "sales-marketing", p.QuizResponses.CurrentRole)
	assert.Equal(t, "Transitioning from non-tech background", p.QuizResponses.CurrentCompany)
	assert.Equal(t, "Transitioning from non-tech background", p.QuizResponses.TargetCompany)
	assert.Equal(t, "career-switch", p.QuizResponses.RequirementType)
	assert.Equal(t, "exploring", p.QuizResponses.TargetRole)
}

func TestBuildPayload_MissingBackground(t *testing.T) {
	_, err := BuildPayload(quiz.Responses{"currentRole": "swe-product"}, Goals{}, quiz.BackgroundNone)
	assert.ErrorIs(t, err, ErrBackgroundRequired)
}

func TestBuildPayload_EmptyResponsesFillDefaults(t *testing.T) {
	for _, b := range []quiz.Background{quiz.BackgroundTech, quiz.BackgroundNonTech} {
		t.Run(string(b), func(t *testing.T) {
			p, err := BuildPayload(nil, Goals{}, b)
			require.NoError(t, err)

			v := reflect.ValueOf(p.QuizResponses)
			typ := v.Type()
			for i := 0; i < v.NumField(); i++ {
				name := typ.Field(i).Name
				if name == "TargetRoleLabel" || name == "TargetCompanyLabel" {
					continue
				}
				assert.NotEmpty(t, v.Field(i).String(), "field %s", name)
			}
			assert.NotNil(t, p.Goals.RequirementType)
			assert.NotNil(t, p.Goals.TopicOfInterest)
		})
	}
}

func TestProblemSolvingFromCodeComfort(t *testing.T) {
	tests := []struct {
		comfort       string
		wantSolving   string
		wantPortfolio string
	}{
		{"confident", "51-100", "limited-1-5"},
		{"learning", "11-50", "inactive"},
		{"beginner", "0-10", "none"},
		{"complete-beginner", "0-10", "none"},
		{"", "0-10", "none"},
		{"something-else", "0-10", "none"},
	}
	for _, tt := range tests {
		t.Run(tt.comfort, func(t *testing.T) {
			got := problemSolvingFromCodeComfort(tt.comfort)
			assert.Equal(t, tt.wantSolving, got)
			assert.Equal(t, tt.wantPortfolio, inferPortfolio(got))
		})
	}
}

func TestDeriveCurrentCompany(t *testing.T) {
	tests := map[string]string{
		"swe-product":     "Product Company",
		"swe-service":     "Service Company",
		"devops":          "Tech Company",
		"qa-support":      "Tech Company",
		"career-switcher": "Transitioning to tech",
		"unknown-role":    "Current Company",
	}
	for role, want := range tests {
		assert.Equal(t, want, deriveCurrentCompany(role), role)
	}
}

func TestSanitize(t *testing.T) {
	r := quiz.Responses{
		"currentRole":        "swe-service",
		"currentRoleLabel":   "SWE - Service",
		"targetRole":         "ai_ml",
		"targetRoleLabel":    "Scaler AI/ML Program",
		"targetCompany":      "faang",
		"targetCompanyLabel": "FAANG",
		"primaryGoal":        "data_science",
	}
	got := Sanitize(r)

	assert.Equal(t, quiz.Responses{
		"currentRole":        "swe-service",
		"currentRoleLabel":   "SWE - Service",
		"targetCompany":      "faang",
		"targetCompanyLabel": "FAANG",
	}, got)
	assert.Len(t, r, 7, "input must not be modified")
}

func TestBuildPayload_ProgramValuesNeverLeak(t *testing.T) {
	r := quiz.Responses{
		"currentRole":      "software_development",
		"currentRoleLabel": "Scaler Academy",
		"targetRole":       "ai_ml",
	}
	p, err := BuildPayload(r, Goals{}, quiz.BackgroundTech)
	require.NoError(t, err)

	assert.Equal(t, "career-switcher", p.QuizResponses.CurrentRole)
	assert.Equal(t, "Transitioning to tech", p.QuizResponses.CurrentCompany)
	assert.Equal(t, "fullstack-sde", p.QuizResponses.TargetRole)
	assert.Empty(t, p.QuizResponses.TargetRoleLabel)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	for _, prog := range ProgramOptions {
		assert.NotContains(t, string(raw), `"`+prog.Value+`"`)
	}
}

func TestBuildPayload_Labels(t *testing.T) {
	r := quiz.Responses{
		"currentRole":        "swe-product",
		"currentRoleLabel":   "SWE - Product Company",
		"targetRole":         "backend-sde",
		"targetRoleLabel":    "Backend Engineer",
		"targetCompany":      "unicorns",
		"targetCompanyLabel": "Unicorns / Top Startups",
	}
	p, err := BuildPayload(r, Goals{}, quiz.BackgroundTech)
	require.NoError(t, err)
	assert.Equal(t, "SWE - Product Company", p.QuizResponses.CurrentRoleLabel)
	assert.Equal(t, "Backend Engineer", p.QuizResponses.TargetRoleLabel)
	assert.Equal(t, "Unicorns / Top Startups", p.QuizResponses.TargetCompanyLabel)

	p, err = BuildPayload(quiz.Responses{"currentBackground": "operations"}, Goals{}, quiz.BackgroundNonTech)
	require.NoError(t, err)
	assert.Equal(t, "Career Switcher", p.QuizResponses.CurrentRoleLabel)
}

func TestNormaliseGoals_KeepsValues(t *testing.T) {
	g := NormaliseGoals(Goals{
		RequirementType: []string{"upskilling"},
		TargetCompany:   "faang",
		TopicOfInterest: []string{"web-dev", "cloud"},
	})
	assert.Equal(t, []string{"upskilling"}, g.RequirementType)
	assert.Equal(t, "faang", g.TargetCompany)
	assert.Equal(t, []string{"web-dev", "cloud"}, g.TopicOfInterest)
}

func TestValidatePayload(t *testing.T) {
	p, err := BuildPayload(quiz.Responses{"currentRole": "swe-product"}, Goals{}, quiz.BackgroundTech)
	require.NoError(t, err)
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	require.NoError(t, ValidatePayload(raw))

	t.Run("empty goals lists serialize as arrays", func(t *testing.T) {
		assert.Contains(t, string(raw), `"requirementType":[]`)
		assert.Contains(t, string(raw), `"topicOfInterest":[]`)
	})

	t.Run("unknown top-level field", func(t *testing.T) {
		assert.Error(t, ValidatePayload([]byte(`{"background":"tech","quizResponses":{},"goals":{},"extra":1}`)))
	})

	t.Run("unknown response field", func(t *testing.T) {
		var doc map[string]any
		require.NoError(t, json.Unmarshal(raw, &doc))
		doc["quizResponses"].(map[string]any)["favouriteColour"] = "blue"
		bad, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.Error(t, ValidatePayload(bad))
	})

	t.Run("bad background", func(t *testing.T) {
		var doc map[string]any
		require.NoError(t, json.Unmarshal(raw, &doc))
		doc["background"] = "other"
		bad, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.Error(t, ValidatePayload(bad))
	})

	t.Run("not JSON", func(t *testing.T) {
		assert.Error(t, ValidatePayload([]byte(`{`)))
	})
}
