package prompt

import "fmt"

// Level selects how much structural and implementation detail the generated
// pseudocode retains, from high-level architecture (0) down to a near-literal
// translation (3).
type Level int

const (
	// Architecture describes components and data flow only.
	Architecture Level = iota
	// Standard is conventional pseudocode, the default.
	Standard
	// Detailed keeps branches, loops and intermediate state explicit.
	Detailed
	// Literal is a near line-by-line rendering.
	Literal
)

// DefaultLevel is used when no abstraction level is specified.
const DefaultLevel = Standard

// Template is an immutable prompt pair for one abstraction level. User
// contains exactly one substitution point for the code chunk.
type Template struct {
	System string
	User   string
}

// Render substitutes the code chunk into the user instruction template.
func (t Template) Render(chunk string) string {
	return fmt.Sprintf(t.User, chunk)
}

var templates = map[Level]Template{
	Architecture: {
		System: "You are a software architect who explains codebases in terms of their components, responsibilities and data flow.",
		User: "Describe the high-level architecture of the following code. Focus on what the major parts are and how data moves between them. " +
			"Do not reproduce implementation details:\n\n%s",
	},
	Standard: {
		System: "You are a helpful assistant that converts source code into clear, readable pseudocode.",
		User: "Convert the following code into pseudocode. Use clear, concise language and maintain the logical structure:\n\n%s",
	},
	Detailed: {
		System: "You are a helpful assistant that converts source code into detailed pseudocode, keeping every branch, loop and intermediate variable visible.",
		User: "Convert the following code into detailed pseudocode. Preserve control flow, error handling and intermediate state explicitly:\n\n%s",
	},
	Literal: {
		System: "You are a helpful assistant that translates source code nearly line by line into language-agnostic pseudocode.",
		User: "Translate the following code into pseudocode, staying as close to a line-by-line rendering as possible:\n\n%s",
	},
}

// generic is the language-agnostic fallback pair for unrecognized levels.
// Unknown levels degrade to it silently rather than erroring; callers depend
// on that.
var generic = Template{
	System: "You are a helpful assistant that converts source code into clear, readable pseudocode.",
	User:   "Convert the following code into pseudocode. Use clear, concise language and maintain the logical structure:\n\n%s",
}

// TemplateFor returns the prompt pair registered for level, falling back to
// the generic pair when the level is unrecognized.
func TemplateFor(level Level) Template {
	if t, ok := templates[level]; ok {
		return t
	}
	return generic
}

// Valid reports whether level is one of the registered abstraction levels.
func (l Level) Valid() bool {
	_, ok := templates[l]
	return ok
}

func (l Level) String() string {
	switch l {
	case Architecture:
		return "architecture"
	case Standard:
		return "standard"
	case Detailed:
		return "detailed"
	case Literal:
		return "literal"
	}
	return fmt.Sprintf("level(%d)", int(l))
}
