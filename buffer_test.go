package vector

import "testing"

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		nilData  bool
	}{
		{"zero capacity", 0, true},
		{"single slot", 1, false},
		{"custom capacity", 64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer[int](tt.capacity)
			if b.Cap() != tt.capacity {
				t.Errorf("NewBuffer(%d) Cap = %d, want %d", tt.capacity, b.Cap(), tt.capacity)
			}
			if (b.Get() == nil) != tt.nilData {
				t.Errorf("NewBuffer(%d) Get() nil = %v, want %v", tt.capacity, b.Get() == nil, tt.nilData)
			}
		})
	}
}

func TestNewBufferNegative(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on negative capacity")
		}
	}()
	NewBuffer[int](-1)
}

func TestBufferRef(t *testing.T) {
	b := NewBuffer[string](3)
	*b.Ref(1) = "middle"
	if got := b.Get()[1]; got != "middle" {
		t.Errorf("slot 1 = %q, want %q", got, "middle")
	}
	if b.Ref(2) != &b.Get()[2] {
		t.Error("Ref(2) does not point into storage")
	}
}

func TestBufferSwap(t *testing.T) {
	a := NewBuffer[int](2)
	b := NewBuffer[int](5)
	*a.Ref(0) = 7
	aData := a.Get()

	a.Swap(b)

	if a.Cap() != 5 || b.Cap() != 2 {
		t.Errorf("after Swap caps = (%d, %d), want (5, 2)", a.Cap(), b.Cap())
	}
	if &b.Get()[0] != &aData[0] {
		t.Error("Swap copied storage instead of exchanging it")
	}
	if b.Get()[0] != 7 {
		t.Errorf("moved slot = %d, want 7", b.Get()[0])
	}
}

func TestBufferRelease(t *testing.T) {
	b := NewBuffer[int](8)
	b.Release()
	if b.Cap() != 0 || b.Get() != nil {
		t.Errorf("after Release Cap = %d, Get nil = %v", b.Cap(), b.Get() == nil)
	}
	// Second release is a no-op.
	b.Release()
	if b.Cap() != 0 {
		t.Errorf("after second Release Cap = %d, want 0", b.Cap())
	}
}
