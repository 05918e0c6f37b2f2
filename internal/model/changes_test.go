package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangedFileSet_KeepsFirstInsertionOrder(t *testing.T) {
	set := NewChangedFileSet("b/Two.java", "a/One.java")
	set.Add("a/One.java", "c/Three.java", "b/Two.java")

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []Path{"b/Two.java", "a/One.java", "c/Three.java"}, set.Paths())
	assert.True(t, set.Contains("c/Three.java"))
	assert.False(t, set.Contains("d/Four.java"))
}

func TestChangedFileSet_ZeroValueAndNil(t *testing.T) {
	var set ChangedFileSet
	set.Add("x/A.java")
	assert.Equal(t, 1, set.Len())

	var nilSet *ChangedFileSet
	assert.Equal(t, 0, nilSet.Len())
	assert.Empty(t, nilSet.Paths())
	assert.False(t, nilSet.Contains("x/A.java"))
}

func TestChangedFileSet_PathsReturnsCopy(t *testing.T) {
	set := NewChangedFileSet("x/A.java")
	paths := set.Paths()
	paths[0] = "mutated"

	assert.Equal(t, []Path{"x/A.java"}, set.Paths())
}

func TestChangedFileSet_Filter(t *testing.T) {
	set := NewChangedFileSet("src/main/A.java", "src/test/ATest.java", "src/main/B.java")

	filtered := set.Filter(func(p Path) bool {
		return !strings.Contains(string(p), "/test/")
	})

	assert.Equal(t, []Path{"src/main/A.java", "src/main/B.java"}, filtered.Paths())
	assert.Equal(t, 3, set.Len(), "filter must not modify the source set")
}

func TestPath_Segments(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want []string
	}{
		{"simple", "src/main/A.java", []string{"src", "main", "A.java"}},
		{"leading slash", "/src/A.java", []string{"src", "A.java"}},
		{"double slash", "src//A.java", []string{"src", "A.java"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.Segments())
		})
	}
}

func TestCommit_FirstParent(t *testing.T) {
	root := Commit{Hash: "aaaaaaaaaa"}
	_, ok := root.FirstParent()
	assert.False(t, ok)
	assert.True(t, root.IsRoot())

	merge := Commit{Hash: "bbbbbbbbbb", Parents: []string{"p1", "p2"}}
	parent, ok := merge.FirstParent()
	assert.True(t, ok)
	assert.Equal(t, "p1", parent)
	assert.Equal(t, "bbbbbbb", merge.ShortHash())
	assert.Equal(t, "abc", ShortHash("abc"))
}
