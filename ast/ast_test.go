// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/jcheck/ast"
	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null, "null"},
		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},
		{ast.String(""), `""`},
		{ast.String("a \t b"), `"a \t b"`},
		{ast.Number(-0.00239), `-0.00239`},
		{ast.Number(15), `15`},
		{ast.Number(1e21), `1e+21`},
		{ast.Array{}, `Array(len=0)`},
		{ast.Array{ast.Bool(true), ast.Number(199)}, `Array(len=2)`},
		{ast.Object{}, `Object(len=0)`},
		{ast.Object{ast.Field("xs", ast.Null)}, `Object(len=1)`},
	}
	for _, test := range tests {
		if got := test.input.String(); got != test.want {
			t.Errorf("String %#v: got %#q, want %#q", test.input, got, test.want)
		}
	}
	if got := ast.Field("k", ast.Null).String(); got != `Member(key="k")` {
		t.Errorf("Member String: got %#q", got)
	}
}

func TestObject(t *testing.T) {
	v := mustParse(t, `{"name": "Dennis", "age": 37, "tags": [], "age": 38}`)
	obj, ok := v.(ast.Object)
	if !ok {
		t.Fatalf("Value is %T, not object", v)
	}
	if obj.Len() != 4 {
		t.Errorf("Len: got %d, want 4", obj.Len())
	}
	if diff := cmp.Diff([]string{"name", "age", "tags", "age"}, obj.Keys()); diff != "" {
		t.Errorf("Keys: (-want, +got)\n%s", diff)
	}
	check[ast.String](t, obj, "name", func(s ast.String) {
		if s != "Dennis" {
			t.Errorf("name: got %q, want Dennis", s)
		}
	})
	check[ast.Number](t, obj, "age", func(n ast.Number) {
		if n != 37 {
			t.Errorf("age: got %v, want 37 (first match)", n)
		}
	})
	check[ast.Array](t, obj, "tags", func(a ast.Array) {
		if a.Len() != 0 {
			t.Errorf("tags: got %d elements, want 0", a.Len())
		}
	})
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf("Find nonesuch: got %v, want nil", m)
	}
}

func check[T any](t *testing.T, obj ast.Object, key string, f func(T)) {
	t.Helper()
	if v := obj.Find(key); v == nil {
		t.Fatalf("Key %q not found", key)
	} else if tv, ok := v.Value.(T); !ok {
		var zero T
		t.Fatalf("Key %q value is %T, not %T", key, v.Value, zero)
	} else if f != nil {
		f(tv)
	}
}
