package util

import (
	"reflect"
	"testing"
)

func TestWrapData(t *testing.T) {
	t.Run("nil becomes empty array", func(t *testing.T) {
		got := WrapData(nil)
		if v := reflect.ValueOf(got); v.Kind() != reflect.Slice || v.Len() != 0 {
			t.Errorf("WrapData(nil) = %v, want empty slice", got)
		}
	})

	t.Run("nil slice becomes empty array", func(t *testing.T) {
		var items []string
		got := WrapData(items)
		if v := reflect.ValueOf(got); v.Kind() != reflect.Slice || v.Len() != 0 {
			t.Errorf("WrapData(nil slice) = %v, want empty slice", got)
		}
	})

	t.Run("slice passes through", func(t *testing.T) {
		items := []int{1, 2, 3}
		got := WrapData(items)
		if !reflect.DeepEqual(got, items) {
			t.Errorf("WrapData(%v) = %v, want same slice", items, got)
		}
	})

	t.Run("scalar wrapped in one-element array", func(t *testing.T) {
		got := WrapData(map[string]bool{"success": true})
		v := reflect.ValueOf(got)
		if v.Kind() != reflect.Slice || v.Len() != 1 {
			t.Fatalf("WrapData(map) = %v, want one-element slice", got)
		}
	})
}
