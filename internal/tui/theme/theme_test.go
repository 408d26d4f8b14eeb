package theme

import "testing"

func TestSetActive(t *testing.T) {
	defer SetActive(Default.Name)

	if !SetActive("flexoki-dark") {
		t.Fatal("SetActive(flexoki-dark) = false")
	}
	if Active.Name != "flexoki-dark" {
		t.Fatalf("Active = %q", Active.Name)
	}
	if SetActive("catppuccin-mocha") {
		t.Fatal("SetActive(unknown) = true")
	}
	if Active.Name != Default.Name {
		t.Fatalf("unknown theme should fall back to %s, got %s", Default.Name, Active.Name)
	}
}

func TestNamesMatchAll(t *testing.T) {
	names := Names()
	if len(names) != len(All) || names[0] != Default.Name {
		t.Fatalf("Names() = %v, want %d names starting with %s", names, len(All), Default.Name)
	}
	for i, n := range names {
		got, ok := Lookup(n)
		if !ok || got.Name != All[i].Name {
			t.Errorf("Lookup(%q) = %q, %v", n, got.Name, ok)
		}
	}
}

func TestPalettesComplete(t *testing.T) {
	for _, th := range All {
		for role, c := range map[string]string{
			"Background": string(th.Background), "Surface": string(th.Surface),
			"TextPrimary": string(th.TextPrimary), "Accent": string(th.Accent),
			"Green": string(th.Green), "Red": string(th.Red),
		} {
			if c == "" {
				t.Errorf("%s: %s is empty", th.Name, role)
			}
		}
	}
}
