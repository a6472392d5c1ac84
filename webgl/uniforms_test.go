package webgl

import "testing"

func TestUniformTableDropsDeletedPrograms(t *testing.T) {
	var tab uniformTable[string]
	proj := tab.add(1, "p1.projection")
	mv := tab.add(1, "p1.modelView")
	other := tab.add(2, "p2.projection")
	if proj != 0 || mv != 1 || other != 2 {
		t.Fatalf("locations = %d %d %d, want 0 1 2", proj, mv, other)
	}

	tab.dropProgram(1)
	if tab.len() != 1 {
		t.Errorf("len() after dropping program 1 = %d, want 1", tab.len())
	}
	if _, ok := tab.get(proj); ok {
		t.Error("location of a deleted program still resolves")
	}
	if loc, ok := tab.get(other); !ok || loc != "p2.projection" {
		t.Errorf("get(%d) = %q, %v, want p2.projection", other, loc, ok)
	}

	// Locations are not reused after a drop.
	if id := tab.add(3, "p3.projection"); id != 3 {
		t.Errorf("next location = %d, want 3", id)
	}
}

func TestUniformTableRebuildCycles(t *testing.T) {
	var tab uniformTable[int]
	for program := uint32(1); program <= 50; program++ {
		tab.add(program, 0)
		tab.add(program, 1)
		tab.dropProgram(program)
	}
	if tab.len() != 0 {
		t.Errorf("len() after 50 build/delete cycles = %d, want 0", tab.len())
	}
	if _, ok := tab.get(-1); ok {
		t.Error("get(-1) resolved")
	}
}
