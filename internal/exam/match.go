package exam

import "strings"

// MatchSPR reports whether a student-produced response matches any of
// the accepted answers. Comparison is literal after trimming
// surrounding whitespace and folding case: "0.75" matches "0.75" and
// " 3/4 " matches "3/4", but "0.750" does not match "0.75". The server
// enumerates every accepted form, so the client never does numeric
// coercion of its own.
func MatchSPR(response string, accepted []string) bool {
	r := strings.TrimSpace(response)
	if r == "" {
		return false
	}
	for _, a := range accepted {
		if strings.EqualFold(r, strings.TrimSpace(a)) {
			return true
		}
	}
	return false
}

// MatchAnswer resolves correctness for any answer kind against a
// checked result: index equality for MCQ, MatchSPR for SPR. Used when
// a saved answer comes back checked but without a recorded verdict.
func MatchAnswer(q Question, ans Answer, res CheckedResult) bool {
	if q.Kind == AnswerMCQ {
		return res.CorrectIndex >= 0 && ans.Index == res.CorrectIndex
	}
	return MatchSPR(ans.Text, res.CorrectAnswers)
}
