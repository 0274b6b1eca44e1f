package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(tmpl, "commit: "+Commit) {
		t.Errorf("Template() missing commit: %q", tmpl)
	}
}

func TestCurrent(t *testing.T) {
	got := Current()
	if got.Version != Version || got.Commit != Commit || got.Date != Date {
		t.Errorf("Current() = %+v", got)
	}
	if !strings.Contains(String(), "built: "+Date) {
		t.Errorf("String() = %q", String())
	}
}
