package fitnesstree

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
)

func TestModelV1MatchesPredict(t *testing.T) {
	tree := ModelV1()
	for _, x := range featureGrid() {
		in := Float32Features(x)
		expected, _ := Predict(in)
		if actual := tree.Find(in); actual != expected {
			t.Fatalf("expected %d but got %d for %v", expected, actual, in)
		}
	}
	gen := rand.New(rand.NewSource(1337))
	for i := 0; i < 10000; i++ {
		in := randomFeatures(gen)
		expected, _ := Predict(in)
		if actual := tree.Find(in); actual != expected {
			t.Fatalf("expected %d but got %d for %v", expected, actual, in)
		}
	}
}

func TestModelV1Structure(t *testing.T) {
	tree := ModelV1()
	if err := tree.Validate(); err != nil {
		t.Fatal(err)
	}
	if depth := tree.Depth(); depth != 3 {
		t.Errorf("expected depth 3 but got %d", depth)
	}
	if n := tree.MinFeatures(); n != NumFeatures {
		t.Errorf("expected %d features but got %d", NumFeatures, n)
	}
	if ModelV1() == tree {
		t.Error("expected a fresh copy")
	}
}

func TestTreeJSON(t *testing.T) {
	data, err := json.Marshal(ModelV1())
	if err != nil {
		t.Fatal(err)
	}
	var tree *Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatal(err)
	}
	if err := tree.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, x := range featureGrid() {
		in := Float32Features(x)
		expected, _ := Predict(in)
		if actual := tree.Find(in); actual != expected {
			t.Fatalf("expected %d but got %d for %v", expected, actual, in)
		}
	}
}

func TestTreeValidate(t *testing.T) {
	leaf := &Tree{Leaf: true, Class: 1}
	bad := []*Tree{
		{Leaf: true, LessEqual: leaf},
		{Feature: 0, LessEqual: leaf},
		{Feature: -1, LessEqual: leaf, Greater: leaf},
		{Feature: 0, LessEqual: leaf, Greater: &Tree{Feature: 1, Greater: leaf}},
	}
	for i, tree := range bad {
		if tree.Validate() == nil {
			t.Errorf("tree %d: expected error", i)
		}
	}
}

func TestModelPredict(t *testing.T) {
	model := &Model{
		Tree: &Tree{
			Feature:   5,
			Threshold: 1,
			LessEqual: &Tree{Leaf: true, Class: 7},
			Greater:   &Tree{Leaf: true, Class: 8},
		},
	}
	if _, err := model.Predict(make([]float64, 5)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected invalid input but got %v", err)
	}
	inputs := [][]float64{
		{0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 1.5},
	}
	expected := []int{7, 8}
	for i, in := range inputs {
		actual, err := model.Predict(in)
		if err != nil {
			t.Fatal(err)
		} else if actual != expected[i] {
			t.Errorf("case %d: expected %d but got %d", i, expected[i], actual)
		}
	}
}
