package lox

import "testing"

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", 1.0)

	if val, ok := env.Get("a"); !ok || val != 1.0 {
		t.Errorf("expected 1, got %v (%v)", val, ok)
	}
	if _, ok := env.Get("missing"); ok {
		t.Error("expected missing to be undefined")
	}

	// Redefinition in the same scope replaces the value.
	env.Define("a", "x")
	if val, _ := env.Get("a"); val != "x" {
		t.Errorf("expected x, got %v", val)
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", 1.0)

	inner := NewEnvironment(global)
	inner.Define("a", 2.0)

	if val, _ := inner.Get("a"); val != 2.0 {
		t.Errorf("expected inner a = 2, got %v", val)
	}
	if val, _ := global.Get("a"); val != 1.0 {
		t.Errorf("expected global a = 1, got %v", val)
	}
	if inner.Enclosing() != global {
		t.Error("expected inner to enclose global")
	}
}

func TestEnvironmentAssign(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", 1.0)
	middle := NewEnvironment(global)
	inner := NewEnvironment(middle)

	if !inner.Assign("a", 3.0) {
		t.Fatal("expected assignment to find a in the global scope")
	}
	if val, _ := global.Get("a"); val != 3.0 {
		t.Errorf("expected global a = 3, got %v", val)
	}
	if _, ok := inner.values["a"]; ok {
		t.Error("assignment must not define in the inner scope")
	}

	if inner.Assign("b", 1.0) {
		t.Error("expected assignment to an undefined name to fail")
	}
	if _, ok := inner.Get("b"); ok {
		t.Error("failed assignment must not declare b")
	}
}

func TestEnvironmentNilValue(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", nil)

	val, ok := env.Get("a")
	if !ok || val != nil {
		t.Errorf("expected a defined as nil, got %v (%v)", val, ok)
	}
	if !env.Assign("a", true) {
		t.Error("expected a nil binding to be assignable")
	}
}
