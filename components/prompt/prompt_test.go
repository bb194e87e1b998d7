package prompt

import (
	"strings"
	"testing"
)

func TestTemplatesHaveOneSubstitutionPoint(t *testing.T) {
	for level := Architecture; level <= Literal; level++ {
		tpl := TemplateFor(level)
		if tpl.System == "" {
			t.Errorf("%s: empty system instruction", level)
		}
		if n := strings.Count(tpl.User, "%s"); n != 1 {
			t.Errorf("%s: user template has %d substitution points, want 1", level, n)
		}
	}
}

func TestRenderSubstitutesChunkOnce(t *testing.T) {
	chunk := "for i in range(10): print(i)"
	rendered := TemplateFor(Standard).Render(chunk)
	if got := strings.Count(rendered, chunk); got != 1 {
		t.Errorf("chunk appears %d times in rendered prompt, want 1", got)
	}
	if strings.Contains(rendered, "%s") {
		t.Error("rendered prompt still contains the placeholder")
	}
}

func TestUnknownLevelFallsBack(t *testing.T) {
	for _, level := range []Level{-1, 4, 99} {
		tpl := TemplateFor(level)
		if tpl != generic {
			t.Errorf("level %d did not fall back to the generic pair", level)
		}
		if level.Valid() {
			t.Errorf("level %d reported valid", level)
		}
	}
}

func TestDefaultLevelValid(t *testing.T) {
	if !DefaultLevel.Valid() {
		t.Error("default level is not registered")
	}
}
