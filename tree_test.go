package expconf

import (
	"reflect"
	"testing"
)

func TestTree_GetNestedPath(t *testing.T) {
	tree := Tree{
		"trainer": map[string]any{
			"max_epochs": 100,
		},
	}

	got, ok := tree.Get("trainer.max_epochs")
	if !ok {
		t.Fatal("expected trainer.max_epochs to exist")
	}
	if got != 100 {
		t.Errorf("trainer.max_epochs = %v, want 100", got)
	}

	if _, ok := tree.Get("trainer.missing"); ok {
		t.Error("expected trainer.missing to be absent")
	}
	if _, ok := tree.Get("trainer.max_epochs.deeper"); ok {
		t.Error("expected traversal through a scalar to fail")
	}
}

func TestTree_SetCreatesIntermediateMaps(t *testing.T) {
	tree := Tree{}
	tree.Set("model.lr", 0.0001)

	got, ok := tree.Get("model.lr")
	if !ok || got != 0.0001 {
		t.Errorf("model.lr = %v (ok=%v), want 0.0001", got, ok)
	}
}

func TestTree_DeleteRemovesLeaf(t *testing.T) {
	tree := Tree{
		"trainer": map[string]any{
			"max_epochs": 100,
			"gpus":       1,
		},
	}

	if !tree.Delete("trainer.gpus") {
		t.Fatal("expected trainer.gpus to be removed")
	}
	if tree.Has("trainer.gpus") {
		t.Error("trainer.gpus still present after delete")
	}

	// Siblings and the intermediate mapping are untouched.
	if got, _ := tree.Get("trainer.max_epochs"); got != 100 {
		t.Errorf("trainer.max_epochs = %v, want 100", got)
	}

	if tree.Delete("trainer.missing") {
		t.Error("deleting an absent path must report false")
	}
	if tree.Delete("trainer.max_epochs.deeper") {
		t.Error("deleting through a scalar must report false")
	}
}

func TestTree_SetReplacesScalarInPath(t *testing.T) {
	tree := Tree{"model": "mvit"}
	tree.Set("model.lr", 0.001)

	got, ok := tree.Get("model.lr")
	if !ok || got != 0.001 {
		t.Errorf("model.lr = %v (ok=%v), want 0.001", got, ok)
	}
}

func TestTree_CloneIsDeep(t *testing.T) {
	tree := Tree{
		"trainer": map[string]any{"gpus": 1},
		"tags":    []any{"a"},
	}

	clone := tree.Clone()
	if !clone.Equal(tree) {
		t.Fatalf("clone = %#v, want equal to original", clone)
	}

	clone.Set("trainer.gpus", 4)
	clone["tags"].([]any)[0] = "b"

	if got, _ := tree.Get("trainer.gpus"); got != 1 {
		t.Errorf("original mutated: trainer.gpus = %v, want 1", got)
	}
	if got := tree["tags"].([]any)[0]; got != "a" {
		t.Errorf("original mutated: tags[0] = %v, want a", got)
	}
	if clone.Equal(tree) {
		t.Error("mutated clone must not equal the original")
	}
}

func TestTree_Flatten(t *testing.T) {
	tree := Tree{
		"name": "baseline",
		"trainer": map[string]any{
			"max_epochs": 100,
			"gpus":       1,
		},
	}

	got := tree.Flatten()

	want := map[string]any{
		"name":               "baseline",
		"trainer.max_epochs": 100,
		"trainer.gpus":       1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("flatten = %#v, want %#v", got, want)
	}
}

func TestTree_PathsSorted(t *testing.T) {
	tree := Tree{
		"seed": 1,
		"model": map[string]any{
			"lr": 0.001,
		},
	}

	got := tree.Paths()

	want := []string{"model.lr", "seed"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("paths = %v, want %v", got, want)
	}
}
