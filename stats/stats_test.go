package stats

import (
	"testing"

	"github.com/estante-app/estante/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratingOf(v float64) *float64 {
	return &v
}

func shelfOf(statuses ...model.ReadingStatus) []model.Book {
	books := make([]model.Book, 0, len(statuses))
	for i, status := range statuses {
		books = append(books, model.Book{
			ID:     string(rune('a' + i)),
			Title:  "T",
			Author: "A",
			Status: status,
			Pages:  100,
		})
	}
	return books
}

func TestCalculateOnSeedCatalog(t *testing.T) {
	books := model.SeedBooks()
	stats := Calculate(books)

	assert.Equal(t, 10, stats.TotalBooks)
	assert.Equal(t, 4, stats.CompletedBooks)
	assert.Equal(t, 2, stats.ReadingBooks)
	assert.Equal(t, 2, stats.ToReadBooks)
	assert.Equal(t, 1, stats.AbandonedBooks)

	// 328+863+96+417+423+279+443+55+309+454
	assert.Equal(t, 3667, stats.TotalPages)
	// completed pages (328+96+443+309) + reading progress (388+330)
	assert.Equal(t, 1894, stats.PagesRead)
	assert.InDelta(t, 51.65, stats.CompletionPercentage, 0.01)
	assert.InDelta(t, 4.42, stats.AverageRating, 0.01)
}

func TestStatusPercentagesSumToWholeShelf(t *testing.T) {
	shelves := [][]model.Book{
		model.SeedBooks(),
		shelfOf(model.StatusLido, model.StatusLido, model.StatusLendo),
		shelfOf(model.StatusQueroLer),
		shelfOf(model.StatusLido, model.StatusLendo, model.StatusAbandonado,
			model.StatusQueroLer, model.StatusQueroLer, model.StatusQueroLer, model.StatusQueroLer),
	}

	for _, books := range shelves {
		distribution := StatusDistribution(books)
		require.Len(t, distribution, 4)

		sum := 0
		for _, slice := range distribution {
			assert.GreaterOrEqual(t, slice.Value, 0)
			assert.LessOrEqual(t, slice.Value, 100)
			sum += slice.Value
		}
		// Four independently rounded values can drift a little. PAUSADO
		// books are not charted, so only bound the drift upward for
		// shelves without them.
		paused := 0
		for _, b := range books {
			if b.Status == model.StatusPausado {
				paused++
			}
		}
		if paused == 0 {
			assert.InDelta(t, 100, sum, 3, "percentages should sum to ~100 for %d books", len(books))
		}
	}
}

func TestStatusDistributionOnEmptyShelf(t *testing.T) {
	distribution := StatusDistribution(nil)
	require.Len(t, distribution, 4)
	for _, slice := range distribution {
		assert.Equal(t, 0, slice.Value)
		assert.NotEmpty(t, slice.Name)
		assert.NotEmpty(t, slice.Color)
	}
}

func TestCompletionPercentageStaysBounded(t *testing.T) {
	books := []model.Book{
		{ID: "1", Pages: 100, CurrentPage: 100, Status: model.StatusLido},
		{ID: "2", Pages: 200, CurrentPage: 150, Status: model.StatusLendo},
		{ID: "3", Pages: 300, CurrentPage: 0, Status: model.StatusQueroLer},
	}
	stats := Calculate(books)
	assert.GreaterOrEqual(t, stats.CompletionPercentage, 0.0)
	assert.LessOrEqual(t, stats.CompletionPercentage, 100.0)

	// No pages at all: no division by zero, percentage pinned to 0.
	empty := Calculate([]model.Book{{ID: "1", Status: model.StatusQueroLer}})
	assert.Equal(t, 0.0, empty.CompletionPercentage)
	assert.Equal(t, 0.0, Calculate(nil).CompletionPercentage)
}

func TestZeroRatingCountsAsUnrated(t *testing.T) {
	books := []model.Book{
		{ID: "1", Rating: ratingOf(4), Status: model.StatusLido},
		{ID: "2", Rating: ratingOf(0), Status: model.StatusLido},
		{ID: "3", Status: model.StatusLido},
	}
	stats := Calculate(books)
	assert.Equal(t, 4.0, stats.AverageRating)
}

func TestGenreRankingTopFiveWithTies(t *testing.T) {
	// Seven genres with counts 5,4,3,2,2,1,1 in first-seen order.
	counts := map[string]int{
		"Ficção": 5, "Fantasia": 4, "Romance": 3,
		"História": 2, "Poesia": 2, "Suspense": 1, "Biografia": 1,
	}
	order := []string{"Ficção", "Fantasia", "Romance", "História", "Poesia", "Suspense", "Biografia"}

	books := make([]model.Book, 0)
	for _, genre := range order {
		for i := 0; i < counts[genre]; i++ {
			books = append(books, model.Book{Genre: genre})
		}
	}

	ranking := GenreRanking(books)
	require.Len(t, ranking, 5)

	expected := []string{"Ficção", "Fantasia", "Romance", "História", "Poesia"}
	for i, genre := range expected {
		assert.Equal(t, genre, ranking[i].Genre)
		assert.Equal(t, counts[genre], ranking[i].Count)
	}
	// Counts are descending.
	for i := 1; i < len(ranking); i++ {
		assert.LessOrEqual(t, ranking[i].Count, ranking[i-1].Count)
	}
	assert.InDelta(t, 100.0*5/18, ranking[0].Percentage, 0.001)
}

func TestGenreRankingOnEmptyShelf(t *testing.T) {
	assert.Empty(t, GenreRanking(nil))
}

func TestRecentBooksTakesNewestThree(t *testing.T) {
	recent := RecentBooks(model.SeedBooks(), 3)
	require.Len(t, recent, 3)
	assert.Equal(t, "10", recent[0].ID) // 2024-02-20
	assert.Equal(t, "4", recent[1].ID)  // 2024-02-15
	assert.Equal(t, "6", recent[2].ID)  // 2024-02-10
}

func TestTopAuthors(t *testing.T) {
	books := []model.Book{
		{Author: "B", Rating: ratingOf(4)},
		{Author: "A", Rating: ratingOf(5)},
		{Author: "A", Rating: ratingOf(3)},
		{Author: "A"},
		{Author: "C"},
	}
	authors := TopAuthors(books, 5)
	require.Len(t, authors, 3)

	assert.Equal(t, "A", authors[0].Author)
	assert.Equal(t, 3, authors[0].Count)
	assert.Equal(t, 4.0, authors[0].AvgRating) // unrated copy excluded from the mean

	// B and C tie on count; B was seen first.
	assert.Equal(t, "B", authors[1].Author)
	assert.Equal(t, "C", authors[2].Author)
	assert.Equal(t, 0.0, authors[2].AvgRating)
}

func TestRatingDistributionCountsWholeStarsOnly(t *testing.T) {
	books := []model.Book{
		{ID: "1", Rating: ratingOf(5)},
		{ID: "2", Rating: ratingOf(5)},
		{ID: "3", Rating: ratingOf(4)},
		{ID: "4", Rating: ratingOf(4.5)}, // fractional, lands in no column
		{ID: "5"},
	}
	distribution := RatingDistribution(books)
	require.Len(t, distribution, 5)

	// Five stars first, down to one.
	assert.Equal(t, 5, distribution[0].Rating)
	assert.Equal(t, 1, distribution[4].Rating)

	assert.Equal(t, 2, distribution[0].Count)
	assert.Equal(t, 40, distribution[0].Percentage)
	assert.Equal(t, 1, distribution[1].Count)
	assert.Equal(t, 20, distribution[1].Percentage)
	for _, column := range distribution[2:] {
		assert.Equal(t, 0, column.Count)
		assert.Equal(t, 0, column.Percentage)
	}
}

func TestRatingDistributionOnEmptyShelf(t *testing.T) {
	distribution := RatingDistribution(nil)
	require.Len(t, distribution, 5)
	for _, column := range distribution {
		assert.Equal(t, 0, column.Count)
		assert.Equal(t, 0, column.Percentage)
	}
}

func TestExtremesFirstOccurrenceWinsTies(t *testing.T) {
	books := []model.Book{
		{ID: "1", Pages: 300, Year: 1950},
		{ID: "2", Pages: 500, Year: 1990},
		{ID: "3", Pages: 500, Year: 1950},
		{ID: "4", Pages: 100, Year: 2000},
		{ID: "5", Pages: 100, Year: 2010},
	}
	extremes := Extremes(books)
	require.NotNil(t, extremes.Longest)
	assert.Equal(t, "2", extremes.Longest.ID)
	assert.Equal(t, "4", extremes.Shortest.ID)
	assert.Equal(t, "1", extremes.Oldest.ID)

	empty := Extremes(nil)
	assert.Nil(t, empty.Longest)
	assert.Nil(t, empty.Shortest)
	assert.Nil(t, empty.Oldest)
}

func TestAdvancedOnSeedCatalog(t *testing.T) {
	adv := Advanced(model.SeedBooks())

	assert.Equal(t, 10, adv.TotalBooks)
	assert.Equal(t, 4, adv.CompletedBooks)
	// Only completed books count here: 328+96+443+309.
	assert.Equal(t, 1176, adv.TotalPagesRead)
	assert.InDelta(t, 294, adv.AveragePages, 0.001)
	assert.Equal(t, 20, adv.ReadingSpeed) // round(294/15)
	assert.Equal(t, 17, adv.GoalProgress) // round(4/24*100)
	assert.Equal(t, 7, adv.DistinctGenres)

	// Only A Metamorfose carries a whole-star rating (4.0); the rest are
	// fractional and land in no column.
	require.Len(t, adv.RatingDistribution, 5)
	assert.Equal(t, 4, adv.RatingDistribution[1].Rating)
	assert.Equal(t, 1, adv.RatingDistribution[1].Count)
	assert.Equal(t, 10, adv.RatingDistribution[1].Percentage)
	assert.Equal(t, 0, adv.RatingDistribution[0].Count)

	require.NotEmpty(t, adv.TopAuthors)
	require.NotNil(t, adv.Extremes.Longest)
	assert.Equal(t, "Dom Quixote", adv.Extremes.Longest.Title)
	assert.Equal(t, "A Metamorfose", adv.Extremes.Shortest.Title)
	assert.Equal(t, "Dom Quixote", adv.Extremes.Oldest.Title) // 1605
}

func TestDashboardBundlesAllViews(t *testing.T) {
	data := Dashboard(model.SeedBooks())
	assert.Equal(t, 10, data.Stats.TotalBooks)
	assert.Len(t, data.StatusData, 4)
	assert.Len(t, data.RecentBooks, 3)
	assert.NotEmpty(t, data.GenreStats)
	assert.LessOrEqual(t, len(data.GenreStats), 5)
}
