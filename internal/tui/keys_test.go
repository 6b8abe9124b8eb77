package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"

	"github.com/javiermolinar/weekhead/internal/dateutil"
)

func TestKeyMapHelpCoversBindings(t *testing.T) {
	k := defaultKeyMap()
	seen := map[string]bool{}
	for _, group := range k.FullHelp() {
		for _, b := range group {
			seen[b.Help().Key] = true
		}
	}
	for _, b := range []key.Binding{k.Prev, k.Next, k.Today, k.Layout, k.Locale, k.Copy, k.Help, k.Quit} {
		if !seen[b.Help().Key] {
			t.Errorf("binding %q missing from full help", b.Help().Key)
		}
	}
	if len(k.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
}

func TestCycleLocaleUnknownCurrent(t *testing.T) {
	m, _ := newTestModel(t, dateutil.Seven)
	m.locales = []string{"fr_FR", "de_DE"}
	m.cycleLocale()
	if m.registry.Locale() != "fr_FR" {
		t.Errorf("locale = %s, want first in cycle", m.registry.Locale())
	}
}

func TestCycleLocaleError(t *testing.T) {
	m, _ := newTestModel(t, dateutil.Seven)
	m.locales = []string{"x-missing"}
	m.cycleLocale()
	if m.registry.Locale() != "en_US" {
		t.Errorf("locale changed to %s", m.registry.Locale())
	}
	if m.status == "" {
		t.Error("expected error status")
	}
}
