package pipeline_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/pipeline"
)

func firstLetter(s string) string { return strings.ToUpper(s[:1]) }

func TestGroup_Empty(t *testing.T) {
	buckets := pipeline.Group(nil, firstLetter)
	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)
}

func TestGroup_ContiguousRuns(t *testing.T) {
	items := []string{"apple", "avocado", "banana", "blueberry", "cherry"}
	buckets := pipeline.Group(items, firstLetter)

	want := []pipeline.Bucket[string]{
		{Label: "A", Items: []string{"apple", "avocado"}},
		{Label: "B", Items: []string{"banana", "blueberry"}},
		{Label: "C", Items: []string{"cherry"}},
	}
	if diff := cmp.Diff(want, buckets); diff != "" {
		t.Errorf("Group() mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup_PreservesCountAndOrder(t *testing.T) {
	inputs := [][]string{
		{"x"},
		{"a1", "a2", "a3"},
		{"a1", "b1", "a2", "b2"},
		{"c", "b", "a", "b", "c"},
	}
	for _, items := range inputs {
		buckets := pipeline.Group(items, firstLetter)

		total := 0
		for _, b := range buckets {
			total += len(b.Items)
			assert.NotEmpty(t, b.Items)
		}
		assert.Equal(t, len(items), total)

		if diff := cmp.Diff(items, pipeline.Flatten(buckets)); diff != "" {
			t.Errorf("order not preserved for %v (-want +got):\n%s", items, diff)
		}
		for i := 1; i < len(buckets); i++ {
			assert.NotEqual(t, buckets[i-1].Label, buckets[i].Label, "adjacent buckets must differ")
		}
	}
}
