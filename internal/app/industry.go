package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/classifier"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
)

// IndustryTagger names the Industry tag of a company, or "" when none fits.
type IndustryTagger interface {
	ClassifyIndustry(ctx context.Context, company string) (string, error)
}

// tagIndustries stores an industry on profiles whose company the keyword
// rules leave untagged. Profiles that already carry a tag are skipped and
// the tagger is asked at most once per company. Failures leave the profile
// untagged.
func tagIndustries(ctx context.Context, profiles []models.Profile, tagger IndustryTagger, logger *zap.Logger) {
	answers := make(map[string]string)
	tagged := 0
	for i := range profiles {
		p := &profiles[i]
		if p.Industry != nil || p.Company == nil || *p.Company == "" {
			continue
		}
		company := *p.Company
		if len(classifier.Industry.Classify(company)) > 0 {
			continue
		}

		industry, asked := answers[company]
		if !asked {
			if ctx.Err() != nil {
				logger.Warn("Industry tagging interrupted", zap.Error(ctx.Err()))
				return
			}
			var err error
			industry, err = tagger.ClassifyIndustry(ctx, company)
			if err != nil {
				logger.Warn("Failed to tag industry",
					zap.Error(err),
					zap.String("company", company))
			}
			answers[company] = industry
		}
		if industry != "" {
			p.Industry = models.StringPtr(industry)
			tagged++
		}
	}

	logger.Info("Tagged industries",
		zap.Int("companies_asked", len(answers)),
		zap.Int("profiles_tagged", tagged))
}
