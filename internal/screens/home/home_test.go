package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cpe/internal/evaluation"
	"github.com/abhisek/cpe/internal/profile"
	"github.com/abhisek/cpe/internal/quiz"
	"github.com/abhisek/cpe/internal/router"
	"github.com/abhisek/cpe/internal/screens"
	quizscreen "github.com/abhisek/cpe/internal/screens/quiz"
	"github.com/abhisek/cpe/internal/screens/results"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func labels(h *HomeScreen) []string {
	out := make([]string, len(h.menu.Items))
	for i, it := range h.menu.Items {
		out[i] = it.Label
	}
	return out
}

func disabled(h *HomeScreen, label string) bool {
	for _, it := range h.menu.Items {
		if it.Label == label {
			return it.Disabled
		}
	}
	return false
}

func TestFreshProfileMenu(t *testing.T) {
	h := New(screens.Env{Profile: profile.Open(context.Background(), nil, nil)})

	assert.Equal(t, []string{"Start evaluation", "View results", "History", "Reset profile", "Quit"}, labels(h))
	assert.True(t, disabled(h, "View results"))
	assert.True(t, disabled(h, "History"))
	assert.True(t, disabled(h, "Reset profile"))
	assert.Equal(t, "Not selected", h.Status())
}

func TestStartPushesQuiz(t *testing.T) {
	h := New(screens.Env{Profile: profile.Open(context.Background(), nil, nil)})

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &quizscreen.QuizScreen{}, msg.Screen)
}

func TestRefreshPicksUpProgressAndResults(t *testing.T) {
	p := profile.Open(context.Background(), nil, nil)
	h := New(screens.Env{Profile: p})

	p.SetBackground(quiz.BackgroundTech)
	p.SetQuizResponse("currentRole", "devops")
	p.SetQuizResponse("currentRoleLabel", "DevOps")
	p.SetEvaluationResults(evaluation.Result{"profile_strength_score": float64(81)})
	h.Refresh()

	assert.Equal(t, "Continue quiz", h.menu.Items[0].Label)
	assert.False(t, disabled(h, "View results"))
	assert.Equal(t, "Tech Professional", h.Status())
	assert.Contains(t, h.View(120, 40), "score 81/100")

	h.menu.Selected = 1
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg := cmd().(router.PushScreenMsg)
	assert.IsType(t, &results.ResultsScreen{}, msg.Screen)
}

func TestResetClearsProfile(t *testing.T) {
	p := profile.Open(context.Background(), nil, nil)
	p.SetBackground(quiz.BackgroundNonTech)
	h := New(screens.Env{Profile: p})

	h.menu.Selected = 3
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	h.Update(cmd())

	assert.Equal(t, quiz.BackgroundNone, p.Background())
	assert.Equal(t, "Start evaluation", h.menu.Items[0].Label)
	assert.Contains(t, h.View(120, 40), "Profile cleared.")
}

func TestAnswerCountIgnoresLabels(t *testing.T) {
	assert.Equal(t, 2, answerCount(quiz.Responses{
		"currentRole":      "devops",
		"currentRoleLabel": "DevOps",
		"experience":       "3-5",
	}))
}
