package quiz

// ProblemSolvingPracticed shows follow-ups that only make sense once the
// user practices coding problems at all.
func ProblemSolvingPracticed(r Responses) bool {
	return r["problemSolving"] != "0-10"
}
