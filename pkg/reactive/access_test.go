package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type account struct {
	Name    string
	Balance int
	secret  string
}

func TestGetKey(t *testing.T) {
	acct := account{Name: "ada", Balance: 3}
	tests := []struct {
		name      string
		container any
		key       any
		want      any
	}{
		{name: "slice index", container: []string{"a", "b"}, key: 1, want: "b"},
		{name: "slice out of range", container: []string{"a"}, key: 4, want: nil},
		{name: "slice negative", container: []string{"a"}, key: -1, want: nil},
		{name: "slice length", container: []int{1, 2, 3}, key: LengthKey, want: 3},
		{name: "array index", container: [2]int{7, 8}, key: 0, want: 7},
		{name: "string index", container: "hey", key: 1, want: "e"},
		{name: "string length", container: "hey", key: LengthKey, want: 3},
		{name: "map hit", container: map[string]int{"a": 1}, key: "a", want: 1},
		{name: "map miss", container: map[string]int{"a": 1}, key: "b", want: nil},
		{name: "int keyed map length", container: map[int]bool{1: true}, key: LengthKey, want: 1},
		{name: "struct field", container: acct, key: "Balance", want: 3},
		{name: "pointer to struct", container: &acct, key: "Name", want: "ada"},
		{name: "nil container", container: nil, key: "x", want: nil},
		{name: "nil pointer", container: (*account)(nil), key: "Name", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getKey(tt.container, tt.key))
		})
	}
}

func TestGetKeyUnsupported(t *testing.T) {
	tests := []struct {
		name      string
		container any
		key       any
	}{
		{name: "unexported field", container: account{}, key: "secret"},
		{name: "missing field", container: account{}, key: "Nope"},
		{name: "string key on slice", container: []int{1}, key: "first"},
		{name: "wrong map key type", container: map[int]string{}, key: "a"},
		{name: "scalar", container: 5, key: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "R010", panicCode(t, func() { getKey(tt.container, tt.key) }))
		})
	}
}

func TestSetKey(t *testing.T) {
	t.Run("slice in place", func(t *testing.T) {
		s := []int{1, 2}
		out := setKey(s, 1, 5)
		assert.Equal(t, []int{1, 5}, s)
		assert.Equal(t, []int{1, 5}, out)
	})

	t.Run("map in place", func(t *testing.T) {
		m := map[string]any{}
		setKey(m, "a", 1)
		assert.Equal(t, 1, m["a"])
	})

	t.Run("nil map", func(t *testing.T) {
		var m map[string]int
		out := setKey(m, "a", 1)
		assert.Equal(t, map[string]int{"a": 1}, out)
	})

	t.Run("struct copy", func(t *testing.T) {
		a := account{Name: "a"}
		out := setKey(a, "Name", "b")
		assert.Equal(t, "a", a.Name)
		assert.Equal(t, "b", out.(account).Name)
	})

	t.Run("array copy", func(t *testing.T) {
		a := [2]int{1, 2}
		out := setKey(a, 0, 9)
		assert.Equal(t, [2]int{1, 2}, a)
		assert.Equal(t, [2]int{9, 2}, out)
	})

	t.Run("pointer in place", func(t *testing.T) {
		a := &account{}
		setKey(a, "Balance", 10)
		assert.Equal(t, 10, a.Balance)
	})

	t.Run("nil child stores zero", func(t *testing.T) {
		s := []string{"x"}
		setKey(s, 0, nil)
		assert.Equal(t, []string{""}, s)
	})

	t.Run("same kind conversion", func(t *testing.T) {
		type celsius float64
		s := []celsius{0}
		setKey(s, 0, 21.5)
		assert.Equal(t, []celsius{21.5}, s)
	})
}

func TestSetKeyUnsupported(t *testing.T) {
	tests := []struct {
		name      string
		container any
		key       any
		child     any
	}{
		{name: "slice out of range", container: []int{1}, key: 3, child: 1},
		{name: "wrong element type", container: []int{1}, key: 0, child: "1"},
		{name: "unexported field", container: &account{}, key: "secret", child: "x"},
		{name: "string container", container: "abc", key: 0, child: "x"},
		{name: "nil container", container: nil, key: 0, child: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "R010", panicCode(t, func() { setKey(tt.container, tt.key, tt.child) }))
		})
	}
}
