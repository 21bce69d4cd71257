package cube

import "testing"

func TestSelectLayerReturnsNine(t *testing.T) {
	c := New()
	for axis := AxisX; axis <= AxisZ; axis++ {
		for section := Section(0); section <= 2; section++ {
			layer := c.SelectLayer(axis, section)
			if len(layer) != 9 {
				t.Errorf("SelectLayer(%v, %d): expected 9 units, got %d", axis, section, len(layer))
			}
		}
	}
}

func TestSelectLayerPartitionsCube(t *testing.T) {
	c := New()
	for axis := AxisX; axis <= AxisZ; axis++ {
		seen := make(map[*Unit]bool)
		for section := Section(0); section <= 2; section++ {
			for _, u := range c.SelectLayer(axis, section) {
				if seen[u] {
					t.Errorf("axis %v: unit at %v appears in two sections", axis, u.Home)
				}
				seen[u] = true
			}
		}
		if len(seen) != 27 {
			t.Errorf("axis %v: union of sections has %d units, expected 27", axis, len(seen))
		}
	}
}

func TestSelectLayerEmptyInput(t *testing.T) {
	if got := SelectLayer(nil, AxisX, 0, 1.0); len(got) != 0 {
		t.Errorf("expected empty selection, got %d units", len(got))
	}
}

func TestSectionOfThresholds(t *testing.T) {
	cases := []struct {
		coord float32
		want  Section
	}{
		{-1.0, 0},
		{-0.51, 0},
		{-0.5, 1},
		{0, 1},
		{0.5, 1},
		{0.51, 2},
		{1.0, 2},
	}
	for _, tc := range cases {
		if got := SectionOf(tc.coord, 1.0); got != tc.want {
			t.Errorf("SectionOf(%v): expected section %d, got %d", tc.coord, tc.want, got)
		}
	}
}

func TestSectionOfScalesWithUnitSize(t *testing.T) {
	// With 2.0 units, the middle band is [-1, 1].
	if got := SectionOf(0.9, 2.0); got != 1 {
		t.Errorf("SectionOf(0.9, 2.0): expected section 1, got %d", got)
	}
	if got := SectionOf(1.1, 2.0); got != 2 {
		t.Errorf("SectionOf(1.1, 2.0): expected section 2, got %d", got)
	}
}
