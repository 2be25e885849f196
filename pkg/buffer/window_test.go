package buffer

import (
	"bytes"
	"slices"
	"testing"
)

func TestWindow(t *testing.T) {
	t.Run("size=1", func(t *testing.T) {
		w := BytesWindow(1)
		w.Append([]byte{1, 2, 3})
		if w.Len() != 1 {
			t.Errorf("len=%d", w.Len())
		}
		if got := w.Snapshot(); !bytes.Equal(got, []byte{3}) {
			t.Errorf("got=%v", got)
		}
	})

	t.Run("size=2", func(t *testing.T) {
		w := BytesWindow(2)
		w.Append([]byte{1, 2, 3})
		if got := w.Snapshot(); !bytes.Equal(got, []byte{2, 3}) {
			t.Errorf("got=%v", got)
		}
	})

	t.Run("size=4", func(t *testing.T) {
		w := BytesWindow(4)
		w.Append([]byte{1, 2, 3})
		if w.Len() != 3 {
			t.Errorf("len=%d", w.Len())
		}
		if got := w.Snapshot(); !bytes.Equal(got, []byte{1, 2, 3}) {
			t.Errorf("got=%v", got)
		}
	})

	t.Run("size=100,7,1", func(t *testing.T) {
		w := BytesWindow(7)
		for i := range 100 {
			w.Push(byte(i))
		}
		if w.Len() != 7 {
			t.Errorf("len=%d", w.Len())
		}
		if got := w.Snapshot(); !bytes.Equal(got, []byte{93, 94, 95, 96, 97, 98, 99}) {
			t.Errorf("got=%v", got)
		}
	})

	t.Run("size=100,7,3", func(t *testing.T) {
		w := BytesWindow(7)
		for i := range 100 {
			w.Append([]byte{byte(i), byte(i + 1), byte(i + 2)})
		}
		if w.Len() != 7 {
			t.Errorf("len=%d", w.Len())
		}
		if got := w.Snapshot(); !bytes.Equal(got, []byte{99, 98, 99, 100, 99, 100, 101}) {
			t.Errorf("got=%v", got)
		}
	})
}

func TestWindow_NeverGrows(t *testing.T) {
	w := WindowN[int](4)
	for i := range 1000 {
		w.Push(i)
	}
	if w.Len() != 4 || w.Cap() != 4 {
		t.Fatalf("len=%d cap=%d", w.Len(), w.Cap())
	}
	if got := w.Snapshot(); !slices.Equal(got, []int{996, 997, 998, 999}) {
		t.Fatalf("got=%v", got)
	}
}

func TestWindow_Last(t *testing.T) {
	w := WindowN[string](4)
	w.Append([]string{"a", "b", "c"})

	if got := w.Last(2); !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("Last(2) = %v", got)
	}
	// oversized n returns everything
	if got := w.Last(10); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Last(10) = %v", got)
	}
	if got := w.Last(0); got != nil {
		t.Errorf("Last(0) = %v", got)
	}
}

func TestWindow_NormalizesSize(t *testing.T) {
	w := WindowN[int](0)
	if w.Cap() != 1 {
		t.Fatalf("cap=%d", w.Cap())
	}
	w.Push(1)
	w.Push(2)
	if got := w.Snapshot(); !slices.Equal(got, []int{2}) {
		t.Fatalf("got=%v", got)
	}
}

func TestWindow_Clear(t *testing.T) {
	w := WindowN[int](4)
	w.Append([]int{1, 2, 3})
	w.Clear()
	if w.Len() != 0 {
		t.Fatalf("len=%d", w.Len())
	}
	w.Push(9)
	if got := w.Snapshot(); !slices.Equal(got, []int{9}) {
		t.Fatalf("got=%v", got)
	}
}
