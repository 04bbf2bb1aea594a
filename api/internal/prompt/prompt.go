// Package prompt assembles the natural-language prompt sent to the
// generation API. Build is pure: the same question, language, and mode
// always produce byte-identical output.
package prompt

import (
	"fmt"
	"strings"

	"leetrelay/api/internal/htmltext"
	"leetrelay/api/internal/leetcode"
)

// Build produces the full prompt for a question. includeCode selects the
// "complete solution" instruction block; otherwise the approach-only block
// is used and the model is told not to emit code.
func Build(q *leetcode.QuestionDetail, language string, includeCode bool) string {
	var b strings.Builder

	b.WriteString("You are an expert programming tutor and competitive programmer. Here's a LeetCode problem:\n\n")
	b.WriteString("TITLE: " + q.Title + "\n")
	b.WriteString("DIFFICULTY: " + q.Difficulty + "\n")
	b.WriteString("ACCEPTANCE RATE: " + q.Stats + "\n\n")

	clean := htmltext.Clean(q.Content)
	b.WriteString("PROBLEM DESCRIPTION:\n" + clean + "\n\n")

	if constraints := htmltext.ExtractConstraints(clean); constraints != "" {
		b.WriteString("EXTRACTED CONSTRAINTS:\n" + constraints + "\n\n")
	}

	b.WriteString("SAMPLE TEST CASE:\n" + q.SampleTestCase + "\n\n")
	b.WriteString("FUNCTION SIGNATURE:\n" + q.MetaData + "\n\n")

	if snippet := q.SnippetFor(language); snippet != nil {
		b.WriteString("DRIVER CODE/TEMPLATE FOR " + strings.ToUpper(language) + ":\n")
		b.WriteString(snippet.Code + "\n\n")
	}

	if len(q.Hints) > 0 {
		b.WriteString("HINTS:\n")
		for i, hint := range q.Hints {
			fmt.Fprintf(&b, "%d. %s\n", i+1, hint)
		}
		b.WriteString("\n")
	}

	b.WriteString("CRITICAL REQUIREMENTS:\n")
	b.WriteString("1. Your solution MUST handle ALL edge cases and constraints mentioned in the problem\n")
	b.WriteString("2. The solution MUST be optimized to avoid Time Limit Exceeded (TLE) errors\n")
	b.WriteString("3. Consider the worst-case time complexity and ensure it fits within LeetCode's time limits\n")
	b.WriteString("4. Handle boundary conditions, empty inputs, and extreme values properly\n")
	b.WriteString("5. Use efficient data structures and algorithms appropriate for the problem constraints\n")
	b.WriteString("6. Ensure the solution works for the full range of input sizes mentioned in constraints\n\n")

	if includeCode {
		b.WriteString("Please provide a complete, production-ready solution in " + language + ".\n")
		b.WriteString("Include:\n")
		b.WriteString("1. A clear explanation of your approach and why it's optimal\n")
		b.WriteString("2. The complete code solution that can be directly submitted to LeetCode\n")
		b.WriteString("3. Detailed time and space complexity analysis\n")
		b.WriteString("4. Explanation of how your solution handles the constraints and edge cases\n")
		b.WriteString("5. Brief explanation of key parts of the code\n")
		b.WriteString("6. Any important optimizations you implemented\n\n")
		b.WriteString("IMPORTANT: The code must be complete and ready to run. Include all necessary imports and helper functions.\n")
		b.WriteString("Make sure the solution follows " + language + " best practices and naming conventions.")
	} else {
		b.WriteString("Please provide a detailed problem-solving approach for this problem.\n")
		b.WriteString("Include:\n")
		b.WriteString("1. Step-by-step algorithm explanation with complexity analysis\n")
		b.WriteString("2. Key insights and observations that lead to the optimal solution\n")
		b.WriteString("3. Detailed time and space complexity analysis\n")
		b.WriteString("4. Alternative approaches and their trade-offs\n")
		b.WriteString("5. Common pitfalls and how to avoid them\n")
		b.WriteString("6. Specific strategies for handling the constraints mentioned in the problem\n")
		b.WriteString("7. Edge cases to consider and how to handle them\n\n")
		b.WriteString("Do NOT provide any code - only the approach, strategy, and analysis.")
	}

	return b.String()
}
