package cmds

import (
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("TestVar.a")
	b := Var[string]("TestVar.b", "a string")
	GlobalExecutor.MustExecute([]string{
		"TestVar.a", "42",
		"TestVar.b", "bar",
	})
	if *a != 42 {
		t.Fatalf("got %d", *a)
	}
	if *b != "bar" {
		t.Fatalf("got %s", *b)
	}
	GlobalExecutor.MustExecute([]string{
		"TestVar.a.",
	})
	if *a != 0 {
		t.Fatalf("got %d", *a)
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*foo {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo {
		t.Fatal()
	}
}

func TestTypedVar(t *testing.T) {
	type Foo string
	v := Var[Foo]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "bar",
	})
	if *v != "bar" {
		t.Fatalf("got %s", *v)
	}
}
