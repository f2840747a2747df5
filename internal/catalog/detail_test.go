package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/catalog"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
)

func TestJob_Detail(t *testing.T) {
	posting := job("7", "Backend Engineer", models.FullTime, 1)
	posting.Responsibilities = []string{"Own the billing service"}

	d := catalog.Job([]models.JobPosting{posting}, "7", now, 3)
	require.True(t, d.Found)
	assert.Equal(t, "Backend Engineer", d.Item.Title)
	assert.Equal(t, "Yesterday", d.Item.AgeLabel)
	assert.True(t, d.Item.IsNew)
	assert.Equal(t, []string{"Own the billing service"}, d.Item.Responsibilities)
	assert.Empty(t, d.Title)

	d = catalog.Job([]models.JobPosting{posting}, "8", now, 3)
	assert.False(t, d.Found)
	assert.Equal(t, "Job not found", d.Title)
	assert.Equal(t, "The job you're looking for doesn't exist or has been removed.", d.Message)
}

func TestProfile_Detail(t *testing.T) {
	d := catalog.Profile(alumniFixture(), "3")
	require.True(t, d.Found)
	assert.Equal(t, "Ananya Patel", d.Item.Name)

	d = catalog.Profile(alumniFixture(), "")
	assert.False(t, d.Found)
	assert.Equal(t, "Profile not found", d.Title)

	d = catalog.Profile(nil, "1")
	assert.False(t, d.Found)
}

func TestService_DetailPages(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	j, err := svc.Job(ctx, "1")
	require.NoError(t, err)
	require.True(t, j.Found)
	assert.Equal(t, "Front-end Developer", j.Item.Title)
	assert.NotEmpty(t, j.Item.Requirements)
	assert.Equal(t, "2 days ago", j.Item.AgeLabel)

	j, err = svc.Job(ctx, "99")
	require.NoError(t, err)
	assert.False(t, j.Found)

	p, err := svc.Profile(ctx, "1")
	require.NoError(t, err)
	require.True(t, p.Found)
	assert.Len(t, p.Item.Experience, 3)
	assert.Len(t, p.Item.Achievements, 3)

	_, err = svc.Store().Connect(ctx, "2")
	require.NoError(t, err)
	p, err = svc.Profile(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionPending, p.Item.Connection)
}
