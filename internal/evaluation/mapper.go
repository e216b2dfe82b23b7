package evaluation

import (
	"errors"
	"strings"

	"github.com/abhisek/cpe/internal/quiz"
)

// ErrBackgroundRequired is returned when a payload is requested before the
// user picked a track.
var ErrBackgroundRequired = errors.New("user background is required before requesting evaluation")

// Defaults applied when an answer is absent.
const (
	defaultProblemSolving     = "0-10"
	defaultSystemDesign       = "not-yet"
	defaultPortfolio          = "none"
	defaultMockInterviews     = "never"
	defaultExperience         = "0-2"
	defaultCareerSwitcher     = "career-switcher"
	defaultTechTargetRole     = "fullstack-sde"
	defaultNonTechTargetRole  = "exploring"
	defaultTechRequirement    = "upskilling"
	defaultNonTechRequirement = "career-switch"
	defaultTargetCompany      = "Not specified"
	nonTechCompany            = "Transitioning from non-tech background"
	defaultCareerSwitchLabel  = "Career Switcher"
)

// ProgramOption is an enrollment program offered elsewhere in the product.
// Its values are never legitimate quiz answers.
type ProgramOption struct {
	Value string
	Label string
}

// ProgramOptions lists the enrollment programs.
var ProgramOptions = []ProgramOption{
	{Value: "data_science", Label: "Scaler Data Science Program"},
	{Value: "ai_ml", Label: "Scaler AI/ML Program"},
	{Value: "software_development", Label: "Scaler Academy (Software Development)"},
	{Value: "devops", Label: "Scaler DevOps Program"},
}

func isProgramValue(v string) bool {
	for _, p := range ProgramOptions {
		if p.Value == v {
			return true
		}
	}
	return false
}

// Sanitize returns a copy of r without entries whose value is an enrollment
// program value, and without the label companions of such entries.
func Sanitize(r quiz.Responses) quiz.Responses {
	out := make(quiz.Responses, len(r))
	for k, v := range r {
		if isProgramValue(v) {
			continue
		}
		if base, ok := strings.CutSuffix(k, quiz.LabelSuffix); ok && isProgramValue(r[base]) {
			continue
		}
		out[k] = v
	}
	return out
}

// deriveCurrentCompany maps a tech role to the kind of company it implies.
func deriveCurrentCompany(role string) string {
	switch role {
	case "swe-product":
		return "Product Company"
	case "swe-service":
		return "Service Company"
	case "devops", "qa-support":
		return "Tech Company"
	case defaultCareerSwitcher:
		return "Transitioning to tech"
	default:
		return "Current Company"
	}
}

// problemSolvingFromCodeComfort turns the non-tech coding self-assessment
// into a practice bucket comparable with the tech track's answer.
func problemSolvingFromCodeComfort(comfort string) string {
	switch comfort {
	case "confident":
		return "51-100"
	case "learning":
		return "11-50"
	case "beginner", "complete-beginner":
		return "0-10"
	default:
		return defaultProblemSolving
	}
}

// inferPortfolio guesses portfolio activity from a practice bucket.
func inferPortfolio(problemSolving string) string {
	switch problemSolving {
	case "51-100":
		return "limited-1-5"
	case "11-50":
		return "inactive"
	default:
		return defaultPortfolio
	}
}

// or returns v, or fallback when v is empty.
func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// MapTechResponses maps tech-track answers to the service record.
func MapTechResponses(r quiz.Responses) MappedResponses {
	problemSolving := or(r["problemSolving"], defaultProblemSolving)
	currentRole := or(r["currentRole"], defaultCareerSwitcher)

	return MappedResponses{
		CurrentRole:     currentRole,
		Experience:      or(r["experience"], defaultExperience),
		TargetRole:      or(r["targetRole"], defaultTechTargetRole),
		ProblemSolving:  problemSolving,
		SystemDesign:    or(r["systemDesign"], defaultSystemDesign),
		Portfolio:       or(r["portfolio"], defaultPortfolio),
		MockInterviews:  defaultMockInterviews,
		RequirementType: or(r["primaryGoal"], defaultTechRequirement),
		TargetCompany:   or(r["targetCompany"], defaultTargetCompany),
		CurrentCompany:  deriveCurrentCompany(currentRole),
		CurrentSkill:    or(r["currentSkill"], problemSolving),

		CurrentRoleLabel:   or(r[quiz.LabelKey("currentRole")], deriveCurrentCompany(currentRole)),
		TargetRoleLabel:    or(r[quiz.LabelKey("targetRole")], r["targetRole"]),
		TargetCompanyLabel: or(r[quiz.LabelKey("targetCompany")], r["targetCompany"]),
	}
}

// MapNonTechResponses maps non-tech-track answers to the service record.
// Practice level and portfolio are inferred since the track never asks.
func MapNonTechResponses(r quiz.Responses) MappedResponses {
	problemSolving := problemSolvingFromCodeComfort(r["codeComfort"])

	return MappedResponses{
		CurrentRole:     or(r["currentBackground"], defaultCareerSwitcher),
		Experience:      or(r["experience"], defaultExperience),
		TargetRole:      or(r["targetRole"], defaultNonTechTargetRole),
		ProblemSolving:  problemSolving,
		SystemDesign:    defaultSystemDesign,
		Portfolio:       inferPortfolio(problemSolving),
		MockInterviews:  defaultMockInterviews,
		RequirementType: or(r["motivation"], defaultNonTechRequirement),
		TargetCompany:   or(r["targetCompany"], nonTechCompany),
		CurrentCompany:  nonTechCompany,
		CurrentSkill:    or(r["currentSkill"], problemSolving),

		CurrentRoleLabel:   or(r[quiz.LabelKey("currentBackground")], defaultCareerSwitchLabel),
		TargetRoleLabel:    or(r[quiz.LabelKey("targetRole")], r["targetRole"]),
		TargetCompanyLabel: or(r[quiz.LabelKey("targetCompany")], r["targetCompany"]),
	}
}

// NormaliseGoals makes both lists non-nil and defaults the target company.
func NormaliseGoals(g Goals) Goals {
	out := Goals{
		RequirementType: g.RequirementType,
		TargetCompany:   or(g.TargetCompany, defaultTargetCompany),
		TopicOfInterest: g.TopicOfInterest,
	}
	if out.RequirementType == nil {
		out.RequirementType = []string{}
	}
	if out.TopicOfInterest == nil {
		out.TopicOfInterest = []string{}
	}
	return out
}

// BuildPayload sanitizes the answers, maps them with the track's mapper and
// normalises goals.
func BuildPayload(r quiz.Responses, g Goals, b quiz.Background) (Payload, error) {
	if b == quiz.BackgroundNone {
		return Payload{}, ErrBackgroundRequired
	}

	clean := Sanitize(r)

	var mapped MappedResponses
	if b == quiz.BackgroundTech {
		mapped = MapTechResponses(clean)
	} else {
		mapped = MapNonTechResponses(clean)
	}

	return Payload{
		Background:    b,
		QuizResponses: mapped,
		Goals:         NormaliseGoals(g),
	}, nil
}
