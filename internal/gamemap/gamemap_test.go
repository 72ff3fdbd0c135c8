package gamemap

import "testing"

func TestNewIsAllWalls(t *testing.T) {
	m := New(80, 50)
	if len(m.Tiles) != 80*50 {
		t.Fatalf("expected %d tiles, got %d", 80*50, len(m.Tiles))
	}
	if len(m.Revealed) != len(m.Tiles) || len(m.Visible) != len(m.Tiles) {
		t.Fatal("flag arrays must share the tile array's length")
	}
	for i, tk := range m.Tiles {
		if tk != TileWall {
			t.Fatalf("tile %d should start as Wall, got %v", i, tk)
		}
	}
}

func TestXYIdxBijection(t *testing.T) {
	m := New(80, 50)
	seen := make(map[int]bool)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.XYIdx(x, y)
			if seen[idx] {
				t.Fatalf("index %d produced twice", idx)
			}
			seen[idx] = true
			gx, gy := m.IdxXY(idx)
			if gx != x || gy != y {
				t.Fatalf("IdxXY(%d) = (%d,%d), want (%d,%d)", idx, gx, gy, x, y)
			}
		}
	}
	if len(seen) != m.Width*m.Height {
		t.Fatalf("expected %d distinct indices, got %d", m.Width*m.Height, len(seen))
	}
}

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
		{0, -1, false},
	}
	for _, c := range cases {
		if got := m.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsOpaque(t *testing.T) {
	m := New(5, 5)
	idx := m.XYIdx(2, 2)
	if !m.IsOpaque(idx) {
		t.Error("wall tile should be opaque")
	}
	m.Tiles[idx] = TileFloor
	if m.IsOpaque(idx) {
		t.Error("floor tile should not be opaque")
	}
}

func TestIsWalkable(t *testing.T) {
	m := New(5, 5)
	if m.IsWalkable(2, 2) {
		t.Error("wall tile should not be walkable")
	}
	m.Tiles[m.XYIdx(2, 2)] = TileFloor
	if !m.IsWalkable(2, 2) {
		t.Error("floor tile should be walkable")
	}
	if m.IsWalkable(-1, 0) {
		t.Error("out-of-bounds should not be walkable")
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
	// Odd spans floor-divide.
	r = NewRect(3, 3, 5, 5)
	cx, cy = r.Center()
	if cx != 5 || cy != 5 {
		t.Errorf("expected center (5,5), got (%d,%d)", cx, cy)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	touching := Rect{4, 0, 8, 4}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
	if !a.Intersects(touching) {
		t.Error("touching edges count as intersection")
	}
	if !a.Intersects(a) {
		t.Error("a rect intersects itself")
	}
}

func TestRevealedCount(t *testing.T) {
	m := New(10, 10)
	if m.RevealedCount() != 0 {
		t.Fatal("fresh map should have no revealed tiles")
	}
	m.Revealed[m.XYIdx(3, 4)] = true
	m.Revealed[m.XYIdx(4, 4)] = true
	if got := m.RevealedCount(); got != 2 {
		t.Fatalf("expected 2 revealed tiles, got %d", got)
	}
}
