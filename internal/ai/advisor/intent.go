package advisor

import "strings"

// intent is the coarse classification of a user message used to pick a
// response branch. Matching is ordered: earlier intents win.
type intent string

const (
	intentStudent      intent = "student_guidance"
	intentCareerChange intent = "career_change"
	intentSkills       intent = "skills_assessment"
	intentIndustry     intent = "industry_inquiry"
	intentGovernment   intent = "government_jobs"
	intentGeneral      intent = "general_career"
	intentWelcome      intent = "welcome"
)

// student guidance stages
type studentStage string

const (
	stage12th       studentStage = "12th"
	stageGraduation studentStage = "graduation"
	stageEntrance   studentStage = "entrance"
	stageGeneric    studentStage = "general"
)

var (
	studentKeywords = []string{
		"student", "12th", "class 12", "intermediate", "stream",
		"college", "graduation", "placement", "entrance", "exam",
		"jee", "neet", "upsc", " cat", "cat exam",
	}
	careerChangeKeywords = []string{
		"career change", "change my career", "changing careers", "change careers",
		"switch career", "switching career", "career switch", "transition",
	}
	skillsKeywords = []string{
		"skill", "assessment", "strength", "weakness", "improve", "upskill", "learn",
	}
	industryKeywords = []string{
		"industry", "industries", "sector", "which field", "domain",
	}
	governmentKeywords = []string{
		"government", "sarkari", "public sector", "psu", "civil service",
	}
	generalKeywords = []string{"career", "job", "work"}

	examKeys = []string{"jee", "neet", "cat", "upsc"}
)

func containsAny(message string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}

// classifyIntent maps a message to its intent by ordered substring
// matching over the lowercased text. Deterministic by construction.
func classifyIntent(message string) intent {
	m := strings.ToLower(message)

	switch {
	case containsAny(m, studentKeywords):
		return intentStudent
	case containsAny(m, careerChangeKeywords):
		return intentCareerChange
	case containsAny(m, skillsKeywords):
		return intentSkills
	case containsAny(m, industryKeywords):
		return intentIndustry
	case containsAny(m, governmentKeywords):
		return intentGovernment
	case containsAny(m, generalKeywords):
		return intentGeneral
	default:
		return intentWelcome
	}
}

// detectStage refines a student message into a guidance stage
func detectStage(message string) studentStage {
	m := strings.ToLower(message)

	if detectExam(m) != "" || strings.Contains(m, "entrance") {
		return stageEntrance
	}
	if containsAny(m, []string{"12th", "class 12", "intermediate", "stream"}) {
		return stage12th
	}
	if containsAny(m, []string{"graduation", "college", "degree", "placement", "final year"}) {
		return stageGraduation
	}
	return stageGeneric
}

// detectExam returns the matched entrance-exam key, or "" when none
// matches. "cat" needs word-boundary care to avoid matching inside
// unrelated words.
func detectExam(message string) string {
	m := strings.ToLower(message)
	for _, key := range examKeys {
		if key == "cat" {
			if strings.Contains(m, "cat exam") || strings.Contains(m, " cat ") ||
				strings.HasPrefix(m, "cat ") || strings.HasSuffix(m, " cat") || m == "cat" {
				return key
			}
			continue
		}
		if strings.Contains(m, key) {
			return key
		}
	}
	return ""
}
