package model

import (
	"reflect"
	"testing"
)

func TestIndexPutKeepsInsertionOrder(t *testing.T) {
	x := NewIndex[*Submitter]()
	for _, k := range []string{"@U3@", "@U1@", "@U2@"} {
		x.Put(k, &Submitter{XRef: k})
	}

	want := []string{"@U3@", "@U1@", "@U2@"}
	if got := x.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if x.Len() != 3 {
		t.Errorf("Len() = %d, want 3", x.Len())
	}
}

func TestIndexReplaceKeepsPosition(t *testing.T) {
	x := NewIndex[string]()
	x.Put("a", "1")
	x.Put("b", "2")
	x.Put("a", "3")

	if got := x.Values(); !reflect.DeepEqual(got, []string{"3", "2"}) {
		t.Errorf("Values() = %v, want [3 2]", got)
	}
}

func TestIndexZeroValue(t *testing.T) {
	var x Index[int]
	if _, ok := x.Get("missing"); ok {
		t.Error("Get() on zero index reported a value")
	}
	x.Put("one", 1)
	if v, ok := x.Get("one"); !ok || v != 1 {
		t.Errorf("Get(one) = %d, %v; want 1, true", v, ok)
	}

	var nilIndex *Index[int]
	if nilIndex.Len() != 0 || nilIndex.Keys() != nil || nilIndex.Has("x") {
		t.Error("nil index should behave as empty")
	}
}

func TestIndexDelete(t *testing.T) {
	x := NewIndex[int]()
	x.Put("a", 1)
	x.Put("b", 2)
	x.Put("c", 3)

	x.Delete("b")
	x.Delete("missing")

	if got := x.Keys(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("Keys() = %v, want [a c]", got)
	}
	if x.Has("b") {
		t.Error("Has(b) = true after Delete")
	}
}

func TestIndexRekey(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		want     bool
		wantKeys []string
	}{
		{"moves in place", "b", "z", true, []string{"a", "z", "c"}},
		{"missing source", "q", "z", false, []string{"a", "b", "c"}},
		{"target taken", "a", "c", false, []string{"a", "b", "c"}},
		{"same key", "a", "a", false, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := NewIndex[int]()
			x.Put("a", 1)
			x.Put("b", 2)
			x.Put("c", 3)

			if got := x.Rekey(tt.old, tt.new); got != tt.want {
				t.Errorf("Rekey() = %v, want %v", got, tt.want)
			}
			if got := x.Keys(); !reflect.DeepEqual(got, tt.wantKeys) {
				t.Errorf("Keys() = %v, want %v", got, tt.wantKeys)
			}
		})
	}
}

func TestIndexEachStopsEarly(t *testing.T) {
	x := NewIndex[int]()
	x.Put("a", 1)
	x.Put("b", 2)
	x.Put("c", 3)

	var seen []string
	x.Each(func(k string, _ int) bool {
		seen = append(seen, k)
		return k != "b"
	})
	if !reflect.DeepEqual(seen, []string{"a", "b"}) {
		t.Errorf("Each visited %v, want [a b]", seen)
	}
}

func TestIndexKeysIsCopy(t *testing.T) {
	x := NewIndex[int]()
	x.Put("a", 1)
	keys := x.Keys()
	keys[0] = "mutated"
	if !x.Has("a") || x.Keys()[0] != "a" {
		t.Error("mutating Keys() result changed the index")
	}
}
