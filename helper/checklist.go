package helper

import (
	"math"
	"strings"

	"theater_dashboard/constants"
	"theater_dashboard/model"
)

// Checklist maps criterion keys to whether a show satisfies them. It is a
// pure projection of the show record: recomputed on every read, never stored.
type Checklist map[string]bool

// Criterion is one named readiness check on a show.
type Criterion struct {
	Key   string
	Check func(show *model.Show) bool
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// hasImageType is an existence check: duplicate rows of the same crop type
// still count once. Duplicates are a write-path hygiene problem, not the
// evaluator's.
func hasImageType(imageType string) func(*model.Show) bool {
	return func(show *model.Show) bool {
		for _, img := range show.Images {
			if img.Type == imageType {
				return true
			}
		}
		return false
	}
}

// Criteria is the checklist definition, in display order. It is the single
// place the criterion set lives: adding or removing an entry here rescales
// every percentage automatically. Which exact set is wanted is a product
// decision, so nothing else may hard-code these keys or this length.
var Criteria = []Criterion{
	{Key: "title", Check: func(s *model.Show) bool { return strings.TrimSpace(s.Title) != "" }},
	{Key: "date", Check: func(s *model.Show) bool { return len(s.Dates) > 0 }},
	{Key: "price", Check: func(s *model.Show) bool { return s.Price != nil && *s.Price > 0 }},
	{Key: "text", Check: func(s *model.Show) bool { return hasText(s.DescriptionText) }},
	{Key: "heroImage", Check: func(s *model.Show) bool { return s.HeroImageUrl != nil && *s.HeroImageUrl != "" }},
	{Key: "seoKeyword", Check: func(s *model.Show) bool { return hasText(s.SeoKeyword) }},
	{Key: "webText", Check: func(s *model.Show) bool { return hasText(s.WebText) }},
	{Key: "cropHero", Check: hasImageType(constants.IMAGE_TYPE_CROP_HERO)},
	{Key: "cropUitlichten", Check: hasImageType(constants.IMAGE_TYPE_CROP_UITLICHTEN)},
	{Key: "cropNarrow", Check: hasImageType(constants.IMAGE_TYPE_CROP_NARROW)},
}

// EvaluateChecklist computes the readiness checklist for a show. Total over
// its input: nil dates and images are treated as empty, whitespace-only text
// as unfilled, a price of zero as not yet entered.
func EvaluateChecklist(show *model.Show) Checklist {
	checklist := make(Checklist, len(Criteria))
	for _, criterion := range Criteria {
		checklist[criterion.Key] = criterion.Check(show)
	}
	return checklist
}

// CompletedCount counts satisfied criteria.
func CompletedCount(checklist Checklist) int {
	count := 0
	for _, done := range checklist {
		if done {
			count++
		}
	}
	return count
}

// TotalCount is the checklist size, derived from its shape.
func TotalCount(checklist Checklist) int {
	return len(checklist)
}

// ProgressPercent is the rounded completion percentage in [0,100].
func ProgressPercent(checklist Checklist) int {
	total := TotalCount(checklist)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(CompletedCount(checklist)) / float64(total) * 100))
}

// ShowStatus buckets a checklist into the strict three-way partition:
// todo when nothing is done, done when everything is, in-progress otherwise.
func ShowStatus(checklist Checklist) string {
	count := CompletedCount(checklist)
	switch {
	case count == 0:
		return constants.STATUS_TODO
	case count == TotalCount(checklist):
		return constants.STATUS_DONE
	default:
		return constants.STATUS_IN_PROGRESS
	}
}

// WithStatus decorates a show with its derived checklist values.
func WithStatus(show model.Show) model.ShowWithStatus {
	checklist := EvaluateChecklist(&show)
	return model.ShowWithStatus{
		Show:            show,
		Checklist:       checklist,
		ProgressPercent: ProgressPercent(checklist),
		Status:          ShowStatus(checklist),
	}
}
