package terrain

import "testing"

func TestEnsureAroundLoadsGrid(t *testing.T) {
	f := Flat(0, 500, 5.0)
	m := NewChunkManager(f, 40.0, 4, 2)

	added, removed := m.EnsureAround(0, 0)
	if added != 25 {
		t.Errorf("expected 25 chunks loaded, got %d", added)
	}
	if removed != 0 {
		t.Errorf("expected no chunks removed on first load, got %d", removed)
	}
	if m.Count() != 25 {
		t.Errorf("expected 25 chunks resident, got %d", m.Count())
	}

	// Center chunk and the corners of the 5x5 square must be present
	for _, key := range [][2]int{{0, 0}, {-2, -2}, {2, 2}, {-2, 2}, {2, -2}} {
		if _, ok := m.At(key[0], key[1]); !ok {
			t.Errorf("chunk (%d,%d) should be loaded", key[0], key[1])
		}
	}
}

func TestEnsureAroundIsIdempotent(t *testing.T) {
	f := Flat(0, 500, 5.0)
	m := NewChunkManager(f, 40.0, 4, 2)

	m.EnsureAround(10, 10)
	added, removed := m.EnsureAround(10, 10)
	if added != 0 || removed != 0 {
		t.Errorf("repeat call changed chunks: added=%d removed=%d", added, removed)
	}
}

func TestEnsureAroundUnloadsFarChunks(t *testing.T) {
	f := Flat(0, 5000, 50.0)
	m := NewChunkManager(f, 40.0, 4, 2)

	m.EnsureAround(0, 0)

	// Jump far away: everything around the origin is now out of range
	m.EnsureAround(100*40.0, 100*40.0)

	if _, ok := m.At(0, 0); ok {
		t.Error("origin chunk should have been unloaded")
	}
	if m.Count() != 25 {
		t.Errorf("expected 25 chunks after move, got %d", m.Count())
	}
}

func TestEnsureAroundKeepsSlackRing(t *testing.T) {
	f := Flat(0, 1000, 10.0)
	m := NewChunkManager(f, 40.0, 4, 2)

	m.EnsureAround(0, 0)
	// One chunk over: the old far edge is within radius+1 and must survive
	m.EnsureAround(40.0, 0)

	if _, ok := m.At(-2, 0); !ok {
		t.Error("chunk (-2,0) is within the slack ring and should stay loaded")
	}
}
