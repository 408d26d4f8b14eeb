package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/scholarhub/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct{ total, n int }{{100, 3}, {81, 4}, {7, 7}, {10, 1}} {
		widths := LayoutRow(tc.total, tc.n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total || len(widths) != tc.n {
			t.Errorf("LayoutRow(%d, %d) = %v", tc.total, tc.n, widths)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if TabIdxByKey('z') != -1 {
		t.Error("unknown key should map to -1")
	}
}

func TestRenderTabBar_Width(t *testing.T) {
	theme.SetActive("flexoki-dark")
	bar := RenderTabBar(1, 80, "AB")
	if w := lipgloss.Width(bar); w != 80 {
		t.Errorf("tab bar width = %d, want 80", w)
	}
	for _, tab := range Tabs {
		if !strings.Contains(bar, tab.Name[tab.KeyPos+1:]) {
			t.Errorf("tab bar missing %q", tab.Name)
		}
	}
}

func TestRenderStatusBar_Width(t *testing.T) {
	theme.SetActive("flexoki-dark")
	bar := RenderStatusBar(90, "[a]dd", "Saved", false)
	if w := lipgloss.Width(bar); w != 90 {
		t.Errorf("status bar width = %d, want 90", w)
	}
	if !strings.Contains(bar, "Saved") {
		t.Error("status bar missing flash message")
	}
}

func TestUsageBar_OverBudgetShowsPercent(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := UsageBar("Food & Dining", 125, 12, 20)
	if !strings.Contains(out, "125%") {
		t.Errorf("usage bar missing percent: %q", out)
	}
	if !strings.Contains(out, "Food & Dini…") {
		t.Errorf("usage bar label not truncated: %q", out)
	}
	if ColorForPct(125) != theme.Active.Red {
		t.Error("over-budget color should be red")
	}
}
