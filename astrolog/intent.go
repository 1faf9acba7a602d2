package astrolog

import (
	"fmt"
	"strings"
	"unicode"
)

// Route tells which agents answer a user message
type Route int

const (
	// RouteLogic the logic agent answers alone
	RouteLogic Route = iota
	// RouteAnalysis a name with a birth date, the logic agent analyses it and the web agent looks up the name day
	RouteAnalysis
	// RouteNameDay the web agent answers a name day question
	RouteNameDay
)

func (r Route) String() string {
	switch r {
	case RouteAnalysis:
		return "analysis"
	case RouteNameDay:
		return "name_day"
	}
	return "logic"
}

var (
	exitWords    = []string{"konec", "exit", "q"}
	nameDayWords = []string{"svátek", "jmeniny", "kdy má"}
)

// IsExit reports whether the input ends the conversation
func IsExit(input string) bool {
	input = strings.ToLower(strings.TrimSpace(input))
	for _, w := range exitWords {
		if input == w {
			return true
		}
	}
	return false
}

// Classify picks the route of a trimmed user message, the first matching rule wins
func Classify(input string) Route {
	if strings.Contains(input, ".") && strings.IndexFunc(input, unicode.IsDigit) >= 0 {
		return RouteAnalysis
	}
	lower := strings.ToLower(input)
	for _, w := range nameDayWords {
		if strings.Contains(lower, w) {
			return RouteNameDay
		}
	}
	return RouteLogic
}

// FirstWord returns the first whitespace separated word, the name of an analysis request
func FirstWord(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// NameDayQuestion is the question handed to the web agent for an analysed name
func NameDayQuestion(name string) string {
	return fmt.Sprintf("Kdy má svátek %s? A co to jméno znamená?", name)
}
