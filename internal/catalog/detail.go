package catalog

import (
	"time"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
)

// Detail is a single record page. When Found is false Item is the zero
// value and Title and Message hold the not-found texts.
type Detail[T any] struct {
	Item    T
	Found   bool
	Title   string
	Message string
}

func find[T any](items []T, match func(T) bool) (T, bool) {
	for _, item := range items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Job looks up the posting with id and labels it against now.
func Job(jobs []models.JobPosting, id string, now time.Time, newJobDays int) Detail[JobCard] {
	job, ok := find(jobs, func(j models.JobPosting) bool { return j.ID == id })
	if !ok {
		return Detail[JobCard]{
			Title:   "Job not found",
			Message: "The job you're looking for doesn't exist or has been removed.",
		}
	}
	return Detail[JobCard]{Item: DescribeJob(job, now, newJobDays), Found: true}
}

// Profile looks up the alumni profile with id.
func Profile(profiles []models.Profile, id string) Detail[models.Profile] {
	p, ok := find(profiles, func(p models.Profile) bool { return p.ID == id })
	if !ok {
		return Detail[models.Profile]{
			Title:   "Profile not found",
			Message: "The profile you're looking for doesn't exist or has been removed.",
		}
	}
	return Detail[models.Profile]{Item: p, Found: true}
}
