// Package report turns an evaluation result into display sections. The
// result is loosely typed JSON; missing or unexpected keys are skipped.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/cpe/internal/evaluation"
)

// Section is one titled block of the report. Score, when set, is a 0-100
// value rendered as a bar.
type Section struct {
	Title string
	Score *float64
	Lines []string
}

// Build extracts the known sections from r in display order.
func Build(r evaluation.Result) []Section {
	if r == nil {
		return nil
	}
	m := map[string]any(r)

	builders := []func(map[string]any) (Section, bool){
		profileStrength,
		currentProfile,
		skillAnalysis,
		interviewReadiness,
		peerComparison,
		successLikelihood,
		quickWins,
		recommendedTools,
		experienceBenchmark,
		opportunities,
		recommendedRoles,
		badges,
	}

	var out []Section
	for _, b := range builders {
		if s, ok := b(m); ok {
			out = append(out, s)
		}
	}
	return out
}

func profileStrength(m map[string]any) (Section, bool) {
	score, hasScore := num(m, "profile_strength_score")
	status := str(m, "profile_strength_status")
	notes := str(m, "profile_strength_notes")
	if !hasScore && status == "" && notes == "" {
		return Section{}, false
	}
	s := Section{Title: "Profile Strength"}
	if hasScore {
		s.Score = &score
		line := fmt.Sprintf("Score: %s/100", formatNum(score))
		if status != "" {
			line += " (" + status + ")"
		}
		s.Lines = append(s.Lines, line)
	} else if status != "" {
		s.Lines = append(s.Lines, "Status: "+status)
	}
	if notes != "" {
		s.Lines = append(s.Lines, notes)
	}
	return s, true
}

func currentProfile(m map[string]any) (Section, bool) {
	cp, ok := obj(m, "current_profile")
	if !ok {
		return Section{}, false
	}
	s := Section{Title: or(str(cp, "title"), "Your Current Profile")}
	if summary := str(cp, "summary"); summary != "" {
		s.Lines = append(s.Lines, summary)
	}
	for _, st := range objs(cp, "key_stats") {
		label, value := str(st, "label"), scalar(st, "value")
		if label == "" || value == "" {
			continue
		}
		s.Lines = append(s.Lines, fmt.Sprintf("%s %s: %s", iconFor(str(st, "icon")), label, value))
	}
	return s, len(s.Lines) > 0
}

func skillAnalysis(m map[string]any) (Section, bool) {
	sa, ok := obj(m, "skill_analysis")
	if !ok {
		return Section{}, false
	}
	s := Section{Title: "Skill Analysis"}
	if strengths := strs(sa, "strengths"); len(strengths) > 0 {
		s.Lines = append(s.Lines, "Strengths:")
		s.Lines = append(s.Lines, bullets("✓", strengths)...)
	}
	if areas := strs(sa, "areas_to_develop"); len(areas) > 0 {
		s.Lines = append(s.Lines, "Areas to develop:")
		s.Lines = append(s.Lines, bullets("→", areas)...)
	}
	return s, len(s.Lines) > 0
}

func interviewReadiness(m map[string]any) (Section, bool) {
	ir, ok := obj(m, "interview_readiness")
	if !ok {
		return Section{}, false
	}
	s := Section{Title: "Interview Readiness"}
	if v, ok := num(ir, "technical_interview_percent"); ok {
		s.Lines = append(s.Lines, fmt.Sprintf("Technical: %s%%", formatNum(v)))
	}
	if v, ok := num(ir, "hr_behavioral_percent"); ok {
		s.Lines = append(s.Lines, fmt.Sprintf("HR / Behavioral: %s%%", formatNum(v)))
	}
	if notes := str(ir, "technical_notes"); notes != "" {
		s.Lines = append(s.Lines, notes)
	}
	return s, len(s.Lines) > 0
}

func peerComparison(m map[string]any) (Section, bool) {
	pc, ok := obj(m, "peer_comparison")
	if !ok {
		return Section{}, false
	}
	s := Section{Title: "Peer Comparison"}
	if p, ok := num(pc, "percentile"); ok {
		s.Score = &p
		line := fmt.Sprintf("Percentile: %s", formatNum(p))
		if pot, ok := num(pc, "potential_percentile"); ok {
			line += fmt.Sprintf(" (potential %s)", formatNum(pot))
		}
		if label := str(pc, "label"); label != "" {
			line += " · " + label
		}
		s.Lines = append(s.Lines, line)
	}
	if group := str(pc, "peer_group_description"); group != "" {
		s.Lines = append(s.Lines, "Compared with: "+group)
	}
	if summary := str(pc, "summary"); summary != "" {
		s.Lines = append(s.Lines, summary)
	}
	if metrics, ok := obj(pc, "metrics"); ok {
		if v, ok := num(metrics, "better_than_peers_percent"); ok {
			s.Lines = append(s.Lines, fmt.Sprintf("Better than %s%% of peers", formatNum(v)))
		}
	}
	return s, len(s.Lines) > 0
}

func successLikelihood(m map[string]any) (Section, bool) {
	sl, ok := obj(m, "success_likelihood")
	if !ok {
		return Section{}, false
	}
	s := Section{Title: "Success Likelihood"}
	if v, ok := num(sl, "score_percent"); ok {
		s.Score = &v
		line := fmt.Sprintf("%s%%", formatNum(v))
		if label := str(sl, "label"); label != "" {
			line += " · " + label
		}
		s.Lines = append(s.Lines, line)
	} else if label := str(sl, "label"); label != "" {
		s.Lines = append(s.Lines, label)
	}
	if notes := str(sl, "notes"); notes != "" {
		s.Lines = append(s.Lines, notes)
	}
	return s, len(s.Lines) > 0
}

func quickWins(m map[string]any) (Section, bool) {
	s := Section{Title: "Quick Wins"}
	for _, w := range objs(m, "quick_wins") {
		title := str(w, "title")
		if title == "" {
			continue
		}
		line := iconFor(str(w, "icon")) + " " + title
		if d := str(w, "description"); d != "" {
			line += ": " + d
		}
		s.Lines = append(s.Lines, line)
	}
	return s, len(s.Lines) > 0
}

func recommendedTools(m map[string]any) (Section, bool) {
	tools := strs(m, "recommended_tools")
	if len(tools) == 0 {
		return Section{}, false
	}
	return Section{Title: "Recommended Tools", Lines: []string{strings.Join(tools, " · ")}}, true
}

func experienceBenchmark(m map[string]any) (Section, bool) {
	eb, ok := obj(m, "experience_benchmark")
	if !ok {
		return Section{}, false
	}
	s := Section{Title: "Experience Benchmark"}
	if v := scalar(eb, "your_experience_years"); v != "" {
		s.Lines = append(s.Lines, "Your experience: "+v+" years")
	}
	if v := scalar(eb, "typical_for_target_role_years"); v != "" {
		s.Lines = append(s.Lines, "Typical for target role: "+v+" years")
	}
	if v := str(eb, "gap_analysis"); v != "" {
		s.Lines = append(s.Lines, "Gap: "+v)
	}
	return s, len(s.Lines) > 0
}

func opportunities(m map[string]any) (Section, bool) {
	s := Section{Title: "Opportunities You Qualify For"}
	for _, o := range objs(m, "opportunities_you_qualify_for") {
		title := str(o, "title")
		if title == "" {
			continue
		}
		head := "• " + title
		if role := str(o, "role"); role != "" {
			head += " (" + role + ")"
		}
		if tl := timeline(o); tl != "" {
			head += " · " + tl
		}
		s.Lines = append(s.Lines, head)
		if focus := str(o, "key_focus"); focus != "" {
			s.Lines = append(s.Lines, "  Focus: "+focus)
		}
		for _, ms := range strs(o, "milestones") {
			s.Lines = append(s.Lines, "  - "+ms)
		}
	}
	return s, len(s.Lines) > 0
}

func recommendedRoles(m map[string]any) (Section, bool) {
	s := Section{Title: "Recommended Roles"}
	for _, r := range objs(m, "recommended_roles_based_on_interests") {
		title := str(r, "title")
		if title == "" {
			continue
		}
		head := "• " + title
		if sen := str(r, "seniority"); sen != "" {
			head += " (" + sen + ")"
		}
		if tl := timeline(r); tl != "" {
			head += " · " + tl
		}
		s.Lines = append(s.Lines, head)
		if reason := str(r, "reason"); reason != "" {
			s.Lines = append(s.Lines, "  "+reason)
		}
		if gap := str(r, "key_gap"); gap != "" {
			s.Lines = append(s.Lines, "  Key gap: "+gap)
		}
		if conf := str(r, "confidence"); conf != "" {
			s.Lines = append(s.Lines, "  Confidence: "+conf)
		}
	}
	return s, len(s.Lines) > 0
}

func badges(m map[string]any) (Section, bool) {
	b := strs(m, "badges")
	if len(b) == 0 {
		return Section{}, false
	}
	return Section{Title: "Badges", Lines: bullets("★", b)}, true
}

func timeline(m map[string]any) string {
	if t := str(m, "timeline_text"); t != "" {
		return t
	}
	lo, okLo := num(m, "min_months")
	hi, okHi := num(m, "max_months")
	if okLo && okHi {
		return fmt.Sprintf("%s-%s months", formatNum(lo), formatNum(hi))
	}
	return ""
}

func iconFor(name string) string {
	switch name {
	case "code":
		return "⌨"
	case "rocket":
		return "🚀"
	case "briefcase", "work":
		return "💼"
	case "target", "goal":
		return "🎯"
	case "book", "learn":
		return "📘"
	case "clock", "time":
		return "⏱"
	default:
		return "•"
	}
}

func bullets(mark string, items []string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = "  " + mark + " " + it
	}
	return out
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

// scalar renders a string or number value.
func scalar(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return formatNum(v)
	case int:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

func num(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		if math.IsNaN(v) {
			return 0, false
		}
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func obj(m map[string]any, key string) (map[string]any, bool) {
	o, ok := m[key].(map[string]any)
	return o, ok
}

func objs(m map[string]any, key string) []map[string]any {
	list, _ := m[key].([]any)
	out := make([]map[string]any, 0, len(list))
	for _, it := range list {
		if o, ok := it.(map[string]any); ok {
			out = append(out, o)
		}
	}
	return out
}

func strs(m map[string]any, key string) []string {
	list, _ := m[key].([]any)
	out := make([]string, 0, len(list))
	for _, it := range list {
		if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

func formatNum(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
