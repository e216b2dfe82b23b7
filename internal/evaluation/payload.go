package evaluation

import "github.com/abhisek/cpe/internal/quiz"

// Goals is the fixed-shape goals record sent with every evaluation.
type Goals struct {
	RequirementType []string `json:"requirementType" yaml:"requirementType"`
	TargetCompany   string   `json:"targetCompany" yaml:"targetCompany"`
	TopicOfInterest []string `json:"topicOfInterest" yaml:"topicOfInterest"`
}

// MappedResponses is the track-independent answer record the evaluation
// service expects. Label fields are display-only and may be omitted.
type MappedResponses struct {
	CurrentRole     string `json:"currentRole" yaml:"currentRole"`
	Experience      string `json:"experience" yaml:"experience"`
	TargetRole      string `json:"targetRole" yaml:"targetRole"`
	ProblemSolving  string `json:"problemSolving" yaml:"problemSolving"`
	SystemDesign    string `json:"systemDesign" yaml:"systemDesign"`
	Portfolio       string `json:"portfolio" yaml:"portfolio"`
	MockInterviews  string `json:"mockInterviews" yaml:"mockInterviews"`
	RequirementType string `json:"requirementType" yaml:"requirementType"`
	TargetCompany   string `json:"targetCompany" yaml:"targetCompany"`
	CurrentCompany  string `json:"currentCompany" yaml:"currentCompany"`
	CurrentSkill    string `json:"currentSkill" yaml:"currentSkill"`

	CurrentRoleLabel   string `json:"currentRoleLabel,omitempty" yaml:"currentRoleLabel,omitempty"`
	TargetRoleLabel    string `json:"targetRoleLabel,omitempty" yaml:"targetRoleLabel,omitempty"`
	TargetCompanyLabel string `json:"targetCompanyLabel,omitempty" yaml:"targetCompanyLabel,omitempty"`
}

// Payload is the request body of an evaluation. It is built fresh for each
// submission and never stored.
type Payload struct {
	Background    quiz.Background `json:"background" yaml:"background"`
	QuizResponses MappedResponses `json:"quizResponses" yaml:"quizResponses"`
	Goals         Goals           `json:"goals" yaml:"goals"`
}

// Result is the opaque evaluation returned by the service. Rendering reads
// it by key; nothing in this package interprets it.
type Result map[string]any
