package helper

import (
	"testing"

	"theater_dashboard/constants"
	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeShow() model.Show {
	return model.Show{
		Season:          "25/26",
		Title:           "De Storm",
		Dates:           utils.StringArray{"2025-10-03", "2025-10-04"},
		Price:           utils.Ptr(27.50),
		DescriptionText: utils.StringPtr("Een meeslepende bewerking van Shakespeare."),
		HeroImageUrl:    utils.StringPtr("https://cdn.example.com/shows/1/hero.jpg"),
		SeoKeyword:      utils.StringPtr("shakespeare zoetermeer"),
		WebText:         utils.StringPtr("Kom naar De Storm in ons theater."),
		Images: []model.ShowImage{
			{Type: constants.IMAGE_TYPE_CROP_HERO, FileUrl: "https://cdn.example.com/c1.jpg"},
			{Type: constants.IMAGE_TYPE_CROP_UITLICHTEN, FileUrl: "https://cdn.example.com/c2.jpg"},
			{Type: constants.IMAGE_TYPE_CROP_NARROW, FileUrl: "https://cdn.example.com/c3.jpg"},
		},
	}
}

func TestEvaluateChecklistEmptyShow(t *testing.T) {
	show := model.Show{}
	checklist := EvaluateChecklist(&show)

	require.Len(t, checklist, len(Criteria))
	for key, done := range checklist {
		assert.False(t, done, "criterion %s should be unmet on an empty show", key)
	}
	assert.Equal(t, 0, ProgressPercent(checklist))
	assert.Equal(t, constants.STATUS_TODO, ShowStatus(checklist))
}

func TestEvaluateChecklistCompleteShow(t *testing.T) {
	show := completeShow()
	checklist := EvaluateChecklist(&show)

	for key, done := range checklist {
		assert.True(t, done, "criterion %s should be met", key)
	}
	assert.Equal(t, 100, ProgressPercent(checklist))
	assert.Equal(t, constants.STATUS_DONE, ShowStatus(checklist))
}

func TestEvaluateChecklistPartialShow(t *testing.T) {
	show := model.Show{
		Title: "Cats",
		Dates: utils.StringArray{"2025-11-01"},
		Price: utils.Ptr(19.0),
	}
	checklist := EvaluateChecklist(&show)

	assert.True(t, checklist["title"])
	assert.True(t, checklist["date"])
	assert.True(t, checklist["price"])
	assert.False(t, checklist["text"])
	assert.False(t, checklist["heroImage"])
	assert.False(t, checklist["cropHero"])

	percent := ProgressPercent(checklist)
	assert.Greater(t, percent, 0)
	assert.Less(t, percent, 100)
	assert.Equal(t, constants.STATUS_IN_PROGRESS, ShowStatus(checklist))
}

func TestChecklistWhitespaceOnlyTextIsUnfilled(t *testing.T) {
	show := model.Show{
		Title:           "   ",
		DescriptionText: utils.StringPtr("   \n\t"),
		SeoKeyword:      utils.StringPtr(" "),
		WebText:         utils.StringPtr("\t"),
	}
	checklist := EvaluateChecklist(&show)

	assert.False(t, checklist["title"])
	assert.False(t, checklist["text"])
	assert.False(t, checklist["seoKeyword"])
	assert.False(t, checklist["webText"])
}

func TestChecklistTitleTrimInvariance(t *testing.T) {
	padded := model.Show{Title: " Cats "}
	plain := model.Show{Title: "Cats"}

	assert.Equal(t, EvaluateChecklist(&plain)["title"], EvaluateChecklist(&padded)["title"])
	assert.True(t, EvaluateChecklist(&padded)["title"])
}

func TestChecklistPriceBoundary(t *testing.T) {
	cases := []struct {
		name  string
		price *float64
		want  bool
	}{
		{"nil price", nil, false},
		{"zero price", utils.Ptr(0.0), false},
		{"one cent", utils.Ptr(0.01), true},
		{"negative price", utils.Ptr(-1.0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			show := model.Show{Price: tc.price}
			assert.Equal(t, tc.want, EvaluateChecklist(&show)["price"])
		})
	}
}

func TestChecklistDuplicateCropCountsOnce(t *testing.T) {
	show := model.Show{
		Images: []model.ShowImage{
			{Type: constants.IMAGE_TYPE_CROP_HERO, FileUrl: "https://cdn.example.com/a.jpg"},
			{Type: constants.IMAGE_TYPE_CROP_HERO, FileUrl: "https://cdn.example.com/b.jpg"},
		},
	}
	checklist := EvaluateChecklist(&show)

	assert.True(t, checklist["cropHero"])
	assert.Equal(t, 1, CompletedCount(checklist))
}

func TestChecklistSceneImagesDoNotSatisfyCrops(t *testing.T) {
	show := model.Show{
		Images: []model.ShowImage{
			{Type: constants.IMAGE_TYPE_SCENE, FileUrl: "https://cdn.example.com/s.jpg"},
		},
	}
	checklist := EvaluateChecklist(&show)

	assert.False(t, checklist["cropHero"])
	assert.False(t, checklist["cropUitlichten"])
	assert.False(t, checklist["cropNarrow"])
}

func TestProgressPercentMonotone(t *testing.T) {
	show := model.Show{}
	prev := ProgressPercent(EvaluateChecklist(&show))
	assert.Equal(t, 0, prev)

	steps := []func(*model.Show){
		func(s *model.Show) { s.Title = "Hamlet" },
		func(s *model.Show) { s.Dates = utils.StringArray{"2026-01-10"} },
		func(s *model.Show) { s.Price = utils.Ptr(22.0) },
		func(s *model.Show) { s.DescriptionText = utils.StringPtr("tekst") },
		func(s *model.Show) { s.HeroImageUrl = utils.StringPtr("https://cdn.example.com/h.jpg") },
		func(s *model.Show) { s.SeoKeyword = utils.StringPtr("hamlet") },
		func(s *model.Show) { s.WebText = utils.StringPtr("webtekst") },
	}
	for _, step := range steps {
		step(&show)
		percent := ProgressPercent(EvaluateChecklist(&show))
		assert.GreaterOrEqual(t, percent, prev, "filling a field must never lower progress")
		prev = percent
	}
}

func TestProgressPercentRounding(t *testing.T) {
	// 1 of 10 is exactly 10; build an artificial checklist for a non-exact split.
	checklist := Checklist{"a": true, "b": true, "c": false}
	assert.Equal(t, 67, ProgressPercent(checklist))

	assert.Equal(t, 0, ProgressPercent(Checklist{}))
}

func TestTotalCountTracksCriteria(t *testing.T) {
	show := completeShow()
	checklist := EvaluateChecklist(&show)
	assert.Equal(t, len(Criteria), TotalCount(checklist))
}

func TestCriteriaKeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, criterion := range Criteria {
		require.False(t, seen[criterion.Key], "duplicate criterion key %s", criterion.Key)
		seen[criterion.Key] = true
	}
}

func TestWithStatus(t *testing.T) {
	show := completeShow()
	decorated := WithStatus(show)

	assert.Equal(t, constants.STATUS_DONE, decorated.Status)
	assert.Equal(t, 100, decorated.ProgressPercent)
	assert.Equal(t, show.Title, decorated.Title)
	require.NotNil(t, decorated.Checklist)
	assert.Len(t, decorated.Checklist, len(Criteria))
}
