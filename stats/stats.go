// Package stats derives dashboard figures from a book-list snapshot.
// Every function is pure; callers recompute on each read instead of
// keeping incremental state.
package stats

import (
	"math"
	"sort"

	"github.com/estante-app/estante/model"
)

// annualGoal is the fixed yearly target the statistics page tracks
// progress against.
const annualGoal = 24

// Chart colors, matching the dashboard palette.
const (
	colorLidos       = "#10b981"
	colorLendo       = "#3b82f6"
	colorAbandonados = "#f59e0b"
	colorParaLer     = "#8b5cf6"
)

// Calculate builds the dashboard summary block.
func Calculate(books []model.Book) model.BookStats {
	stats := model.BookStats{TotalBooks: len(books)}

	var ratingSum float64
	var ratedCount int
	for _, book := range books {
		stats.TotalPages += book.Pages
		switch book.Status {
		case model.StatusLido:
			stats.CompletedBooks++
			stats.PagesRead += book.Pages
		case model.StatusLendo:
			stats.ReadingBooks++
			stats.PagesRead += book.CurrentPage
		case model.StatusQueroLer:
			stats.ToReadBooks++
		case model.StatusAbandonado:
			stats.AbandonedBooks++
		}
		if book.Rated() {
			ratingSum += *book.Rating
			ratedCount++
		}
	}

	if ratedCount > 0 {
		stats.AverageRating = ratingSum / float64(ratedCount)
	}
	if stats.TotalPages > 0 {
		stats.CompletionPercentage = float64(stats.PagesRead) / float64(stats.TotalPages) * 100
	}
	return stats
}

// GenreRanking groups by genre and returns the five biggest genres by
// count, ties kept in first-seen order.
func GenreRanking(books []model.Book) []model.GenreStats {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, book := range books {
		if _, seen := counts[book.Genre]; !seen {
			order = append(order, book.Genre)
		}
		counts[book.Genre]++
	}

	ranking := make([]model.GenreStats, 0, len(order))
	for _, genre := range order {
		var percentage float64
		if len(books) > 0 {
			percentage = float64(counts[genre]) / float64(len(books)) * 100
		}
		ranking = append(ranking, model.GenreStats{
			Genre:      genre,
			Count:      counts[genre],
			Percentage: percentage,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})
	if len(ranking) > 5 {
		ranking = ranking[:5]
	}
	return ranking
}

// StatusDistribution returns the four chart slices with rounded
// percentages, all zeros on an empty shelf.
func StatusDistribution(books []model.Book) []model.StatusCount {
	total := len(books)
	if total == 0 {
		return []model.StatusCount{
			{Name: "Lidos", Value: 0, Color: colorLidos},
			{Name: "Lendo", Value: 0, Color: colorLendo},
			{Name: "Abandonados", Value: 0, Color: colorAbandonados},
			{Name: "Para Ler", Value: 0, Color: colorParaLer},
		}
	}

	var completed, reading, abandoned, toRead int
	for _, book := range books {
		switch book.Status {
		case model.StatusLido:
			completed++
		case model.StatusLendo:
			reading++
		case model.StatusAbandonado:
			abandoned++
		case model.StatusQueroLer:
			toRead++
		}
	}

	percent := func(count int) int {
		return int(math.Round(float64(count) / float64(total) * 100))
	}

	return []model.StatusCount{
		{Name: "Lidos", Value: percent(completed), Color: colorLidos},
		{Name: "Lendo", Value: percent(reading), Color: colorLendo},
		{Name: "Abandonados", Value: percent(abandoned), Color: colorAbandonados},
		{Name: "Para Ler", Value: percent(toRead), Color: colorParaLer},
	}
}

// RecentBooks returns the n most recently added books.
func RecentBooks(books []model.Book, n int) []model.Book {
	recent := make([]model.Book, len(books))
	copy(recent, books)
	// dateAdded is YYYY-MM-DD, so the lexical order is the calendar order.
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].DateAdded > recent[j].DateAdded
	})
	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}

// TopAuthors groups by author with count and mean rating over rated
// books, top n by count, first-seen tie order.
func TopAuthors(books []model.Book, n int) []model.AuthorStats {
	type authorAcc struct {
		count       int
		ratingSum   float64
		ratingCount int
	}
	accs := make(map[string]*authorAcc)
	order := make([]string, 0)
	for _, book := range books {
		acc, seen := accs[book.Author]
		if !seen {
			acc = &authorAcc{}
			accs[book.Author] = acc
			order = append(order, book.Author)
		}
		acc.count++
		if book.Rated() {
			acc.ratingSum += *book.Rating
			acc.ratingCount++
		}
	}

	authors := make([]model.AuthorStats, 0, len(order))
	for _, author := range order {
		acc := accs[author]
		var avg float64
		if acc.ratingCount > 0 {
			avg = acc.ratingSum / float64(acc.ratingCount)
		}
		authors = append(authors, model.AuthorStats{
			Author:    author,
			Count:     acc.count,
			AvgRating: avg,
		})
	}

	sort.SliceStable(authors, func(i, j int) bool {
		return authors[i].Count > authors[j].Count
	})
	if len(authors) > n {
		authors = authors[:n]
	}
	return authors
}

// RatingDistribution counts books per whole-star rating, five stars
// first. Only exact matches land in a column; fractional ratings are
// counted nowhere.
func RatingDistribution(books []model.Book) []model.RatingCount {
	total := len(books)
	distribution := make([]model.RatingCount, 0, 5)
	for stars := 5; stars >= 1; stars-- {
		count := 0
		for _, book := range books {
			if book.Rating != nil && *book.Rating == float64(stars) {
				count++
			}
		}
		percentage := 0
		if total > 0 {
			percentage = int(math.Round(float64(count) / float64(total) * 100))
		}
		distribution = append(distribution, model.RatingCount{
			Rating:     stars,
			Count:      count,
			Percentage: percentage,
		})
	}
	return distribution
}

// Extremes finds the record holders; the first occurrence wins ties.
func Extremes(books []model.Book) model.BookExtremes {
	var extremes model.BookExtremes
	for i := range books {
		book := books[i]
		if extremes.Longest == nil || book.Pages > extremes.Longest.Pages {
			extremes.Longest = &book
		}
		if extremes.Shortest == nil || book.Pages < extremes.Shortest.Pages {
			extremes.Shortest = &book
		}
		if extremes.Oldest == nil || book.Year < extremes.Oldest.Year {
			extremes.Oldest = &book
		}
	}
	return extremes
}

// Dashboard bundles everything the dashboard page renders.
func Dashboard(books []model.Book) model.DashboardData {
	return model.DashboardData{
		Stats:       Calculate(books),
		GenreStats:  GenreRanking(books),
		StatusData:  StatusDistribution(books),
		RecentBooks: RecentBooks(books, 3),
	}
}

// Advanced builds the statistics-page payload. Unlike the dashboard,
// its page totals only count completed books.
func Advanced(books []model.Book) model.AdvancedStats {
	adv := model.AdvancedStats{TotalBooks: len(books)}

	var completedPages int
	var ratingSum float64
	var ratedCount int
	genres := make(map[string]struct{})
	for _, book := range books {
		switch book.Status {
		case model.StatusLido:
			adv.CompletedBooks++
			completedPages += book.Pages
		case model.StatusLendo:
			adv.ReadingBooks++
		case model.StatusQueroLer:
			adv.ToReadBooks++
		}
		if book.Rated() {
			ratingSum += *book.Rating
			ratedCount++
		}
		genres[book.Genre] = struct{}{}
	}
	adv.DistinctGenres = len(genres)

	adv.TotalPagesRead = completedPages
	if adv.CompletedBooks > 0 {
		adv.AveragePages = float64(completedPages) / float64(adv.CompletedBooks)
	}
	// Rough pages-per-day figure assuming a book takes two weeks.
	adv.ReadingSpeed = int(math.Round(adv.AveragePages / 15))
	if ratedCount > 0 {
		adv.AverageRating = ratingSum / float64(ratedCount)
	}
	adv.GoalProgress = int(math.Round(float64(adv.CompletedBooks) / annualGoal * 100))

	adv.TopAuthors = TopAuthors(books, 5)
	topGenres := GenreRanking(books)
	for i := range topGenres {
		topGenres[i].Percentage = math.Round(topGenres[i].Percentage)
	}
	adv.TopGenres = topGenres
	adv.RatingDistribution = RatingDistribution(books)
	adv.Extremes = Extremes(books)
	return adv
}
