package model

func ratingOf(v float64) *float64 {
	return &v
}

// seedBooks is the default catalog loaded on first run.
var seedBooks = []Book{
	{
		ID:          "1",
		Title:       "1984",
		Author:      "George Orwell",
		Genre:       "Ficção Científica",
		Year:        1949,
		Pages:       328,
		ISBN:        "978-0452284234",
		Synopsis:    "Uma distopia sobre um regime totalitário que controla todos os aspectos da vida.",
		Cover:       "https://covers.openlibrary.org/b/isbn/9780452284234-L.jpg",
		Rating:      ratingOf(4.5),
		Status:      StatusLido,
		DateAdded:   "2024-01-15",
		CurrentPage: 328,
	},
	{
		ID:          "2",
		Title:       "Dom Quixote",
		Author:      "Miguel de Cervantes",
		Genre:       "Literatura Brasileira",
		Year:        1605,
		Pages:       863,
		ISBN:        "978-0060934347",
		Synopsis:    "As aventuras do fidalgo Dom Quixote e seu escudeiro Sancho Pança.",
		Cover:       "https://covers.openlibrary.org/b/isbn/9780060934347-L.jpg",
		Rating:      ratingOf(4.2),
		Status:      StatusLendo,
		DateAdded:   "2024-02-01",
		CurrentPage: 388,
	},
	{
		ID:          "3",
		Title:       "O Pequeno Príncipe",
		Author:      "Antoine de Saint-Exupéry",
		Genre:       "Ficção",
		Year:        1943,
		Pages:       96,
		ISBN:        "978-0156012195",
		Synopsis:    "A história de um pequeno príncipe que viaja de planeta em planeta.",
		Cover:       "https://covers.openlibrary.org/b/isbn/9780156012195-L.jpg",
		Rating:      ratingOf(4.8),
		Status:      StatusLido,
		DateAdded:   "2024-01-10",
		CurrentPage: 96,
	},
	{
		ID:          "4",
		Title:       "Cem Anos de Solidão",
		Author:      "Gabriel García Márquez",
		Genre:       "Realismo Mágico",
		Year:        1967,
		Pages:       417,
		ISBN:        "978-0060883287",
		Synopsis:    "A saga da família Buendía na cidade fictícia de Macondo.",
		Cover:       "https://covers.openlibrary.org/b/isbn/9780060883287-L.jpg",
		Rating:      ratingOf(4.6),
		Status:      StatusQueroLer,
		DateAdded:   "2024-02-15",
		CurrentPage: 0,
	},
	{
		ID:          "5",
		Title:       "O Senhor dos Anéis: A Sociedade do Anel",
		Author:      "J.R.R. Tolkien",
		Genre:       "Fantasia",
		Year:        1954,
		Pages:       423,
		ISBN:        "978-0547928210",
		Synopsis:    "O início da épica jornada de Frodo para destruir o Um Anel.",
		Cover:       "https://covers.openlibrary.org/b/isbn/9780547928210-L.jpg",
		Rating:      ratingOf(4.9),
		Status:      StatusLendo,
		DateAdded:   "2024-01-20",
		CurrentPage: 330,
	},
	{
		ID:          "6",
		Title:       "Orgulho e Preconceito",
		Author:      "Jane Austen",
		Genre:       "Romance",
		Year:        1813,
		Pages:       279,
		ISBN:        "978-0141439518",
		Synopsis:    "A história de Elizabeth Bennet e sua relação com Mr. Darcy.",
		Cover:       "https://covers.openlibrary.org/b/isbn/9780141439518-L.jpg",
		Rating:      ratingOf(4.4),
		Status:      StatusPausado,
		DateAdded:   "2024-02-10",
		CurrentPage: 167,
	},
	{
		ID:          "7",
		Title:       "Sapiens: Uma Breve História da Humanidade",
		Author:      "Yuval Noah Harari",
		Genre:       "História",
		Year:        2011,
		Pages:       443,
		ISBN:        "978-0062316097",
		Synopsis:    "Uma análise da evolução da humanidade desde a Idade da Pedra.",
		Cover:       "https://covers.openlibrary.org/b/isbn/9780062316097-L.jpg",
		Rating:      ratingOf(4.3),
		Status:      StatusLido,
		DateAdded:   "2024-01-05",
		CurrentPage: 443,
	},
	{
		ID:          "8",
		Title:       "A Metamorfose",
		Author:      "Franz Kafka",
		Genre:       "Ficção",
		Year:        1915,
		Pages:       55,
		ISBN:        "978-0486290300",
		Synopsis:    "A história de Gregor Samsa que acorda transformado em inseto.",
		Cover:       "https://covers.openlibrary.org/b/isbn/9780486290300-L.jpg",
		Rating:      ratingOf(4.0),
		Status:      StatusAbandonado,
		DateAdded:   "2024-02-05",
		CurrentPage: 14,
	},
	{
		ID:          "9",
		Title:       "Harry Potter e a Pedra Filosofal",
		Author:      "J.K. Rowling",
		Genre:       "Fantasia",
		Year:        1997,
		Pages:       309,
		ISBN:        "9780439708180",
		Synopsis:    "O primeiro ano de Harry Potter na Escola de Magia e Bruxaria de Hogwarts.",
		Cover:       "https://covers.openlibrary.org/b/isbn/9780439708180-L.jpg",
		Rating:      ratingOf(4.7),
		Status:      StatusLido,
		DateAdded:   "2024-01-30",
		CurrentPage: 309,
	},
	{
		ID:          "10",
		Title:       "O Código Da Vinci",
		Author:      "Dan Brown",
		Genre:       "Ficção",
		Year:        2003,
		Pages:       454,
		ISBN:        "978-0307474278",
		Synopsis:    "Robert Langdon desvenda mistérios envolvendo arte e história.",
		Cover:       "https://covers.openlibrary.org/b/isbn/9780307474278-L.jpg",
		Rating:      ratingOf(3.8),
		Status:      StatusQueroLer,
		DateAdded:   "2024-02-20",
		CurrentPage: 0,
	},
}

// SeedBooks returns a fresh copy of the default catalog so callers can
// mutate their slice without touching the seed.
func SeedBooks() []Book {
	books := make([]Book, len(seedBooks))
	copy(books, seedBooks)
	for i := range books {
		if seedBooks[i].Rating != nil {
			r := *seedBooks[i].Rating
			books[i].Rating = &r
		}
	}
	return books
}
