package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/classifier"
)

func TestIndustry(t *testing.T) {
	assert.True(t, classifier.Industry.Is("Google", "tech"))
	assert.True(t, classifier.Industry.Is("MICROSOFT", "tech"))
	assert.True(t, classifier.Industry.Is("Goldman Sachs", "finance"))
	assert.False(t, classifier.Industry.Is("Tesla", "tech"))
	assert.False(t, classifier.Industry.Is("Google", "no-such-tag"))
	assert.Equal(t, []string{"finance"}, classifier.Industry.Classify("FinTech Innovations"))
}

func TestIndustry_WholeWords(t *testing.T) {
	assert.True(t, classifier.Industry.Is("Meta", "tech"))
	assert.True(t, classifier.Industry.Is("Meta Platforms", "tech"))
	assert.Equal(t, []string{"finance"}, classifier.Industry.Classify("Metadata Capital"))
	assert.Empty(t, classifier.Industry.Classify("Bankside Foods"))
	assert.Empty(t, classifier.Industry.Classify("Wealthfront"))
	assert.Equal(t, []string{"tech"}, classifier.Industry.Classify("CloudNative Technologies"))
	assert.Equal(t, []string{"tech"}, classifier.Industry.Classify("TechCorp India"))
	assert.Equal(t, []string{"consulting"}, classifier.Industry.Classify("Boston Consulting Group"))
	assert.Equal(t, []string{"education"}, classifier.Industry.Classify("BYJU'S"))
}

func TestRegion_Suffix(t *testing.T) {
	assert.Equal(t, []string{"uk"}, classifier.Region.Classify("Cambridge, UK"))
	assert.Empty(t, classifier.Region.Classify("Kyiv, Ukraine"))
	assert.Empty(t, classifier.Region.Classify("Punekar Street"))
}

func TestRegion(t *testing.T) {
	assert.Equal(t, []string{"india"}, classifier.Region.Classify("Bangalore, India"))
	assert.Equal(t, []string{"us"}, classifier.Region.Classify("San Francisco, CA"))
	assert.Empty(t, classifier.Region.Classify("Remote"))
	assert.Equal(t, []string{"india", "us", "uk", "canada", "australia"}, classifier.Region.Tags())
}

func TestKeywordClassifier_MaxTags(t *testing.T) {
	c := classifier.NewKeywordClassifier(1,
		classifier.Rule{Tag: "a", Keywords: []string{"x"}},
		classifier.Rule{Tag: "b", Keywords: []string{"y"}},
	)
	assert.Equal(t, []string{"a"}, c.Classify("x y"))
	assert.Equal(t, []string{"b"}, c.Classify("y"))
}

func TestClassifyExperience(t *testing.T) {
	cases := map[string]classifier.ExperienceLevel{
		"0-1 years": classifier.Entry,
		"1 year":    classifier.Entry,
		"2-4 years": classifier.Mid,
		"3+ years":  classifier.Mid,
		"3-7 years": classifier.Mid,
		"5+ years":  classifier.Senior,
		"10 years":  classifier.Senior,
	}
	for in, want := range cases {
		got, ok := classifier.ClassifyExperience(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := classifier.ClassifyExperience("senior")
	assert.False(t, ok)
	_, ok = classifier.ClassifyExperience("")
	assert.False(t, ok)
}
