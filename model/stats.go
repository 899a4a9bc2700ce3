package model

// BookStats is the dashboard summary block.
type BookStats struct {
	TotalBooks           int     `json:"totalBooks"`
	TotalPages           int     `json:"totalPages"`
	CompletedBooks       int     `json:"completedBooks"`
	ReadingBooks         int     `json:"readingBooks"`
	ToReadBooks          int     `json:"toReadBooks"`
	AbandonedBooks       int     `json:"abandonedBooks"`
	PagesRead            int     `json:"pagesRead"`
	AverageRating        float64 `json:"averageRating"`
	CompletionPercentage float64 `json:"completionPercentage"`
}

// GenreStats is one slice of the genre ranking.
type GenreStats struct {
	Genre      string  `json:"genre"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// StatusCount is one slice of the reading-status chart. Value is a
// rounded percentage of the whole shelf.
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// RatingCount is one column of the star-rating distribution.
type RatingCount struct {
	Rating     int `json:"rating"`
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

// AuthorStats is one row of the top-authors table.
type AuthorStats struct {
	Author    string  `json:"author"`
	Count     int     `json:"count"`
	AvgRating float64 `json:"avgRating"`
}

// BookExtremes are the record holders of the shelf.
type BookExtremes struct {
	Longest  *Book `json:"longest"`
	Shortest *Book `json:"shortest"`
	Oldest   *Book `json:"oldest"`
}

// DashboardData is everything the dashboard page renders.
type DashboardData struct {
	Stats       BookStats     `json:"stats"`
	GenreStats  []GenreStats  `json:"genreStats"`
	StatusData  []StatusCount `json:"statusData"`
	RecentBooks []Book        `json:"recentBooks"`
}

// AdvancedStats is the payload of the statistics page.
type AdvancedStats struct {
	TotalBooks         int           `json:"totalBooks"`
	CompletedBooks     int           `json:"completedBooks"`
	ReadingBooks       int           `json:"readingBooks"`
	ToReadBooks        int           `json:"toReadBooks"`
	TotalPagesRead     int           `json:"totalPagesRead"`
	AveragePages       float64       `json:"averagePages"`
	ReadingSpeed       int           `json:"readingSpeed"`
	AverageRating      float64       `json:"averageRating"`
	GoalProgress       int           `json:"goalProgress"`
	DistinctGenres     int           `json:"distinctGenres"`
	TopAuthors         []AuthorStats `json:"topAuthors"`
	TopGenres          []GenreStats  `json:"topGenres"`
	RatingDistribution []RatingCount `json:"ratingDistribution"`
	Extremes           BookExtremes  `json:"extremes"`
}
