package model // import "github.com/estante-app/estante/model"

// ReadingStatus is the lifecycle state of a book on the shelf.
type ReadingStatus string

const (
	StatusQueroLer   ReadingStatus = "QUERO_LER"
	StatusLendo      ReadingStatus = "LENDO"
	StatusLido       ReadingStatus = "LIDO"
	StatusPausado    ReadingStatus = "PAUSADO"
	StatusAbandonado ReadingStatus = "ABANDONADO"
)

func (s ReadingStatus) String() string {
	return string(s)
}

func (s ReadingStatus) IsValid() bool {
	switch s {
	case StatusQueroLer, StatusLendo, StatusLido, StatusPausado, StatusAbandonado:
		return true
	}
	return false
}

// Genres is the fixed catalog offered by the add-book form.
var Genres = []string{
	"Ficção",
	"Ficção Científica",
	"Fantasia",
	"Romance",
	"Literatura Brasileira",
	"Realismo Mágico",
	"História",
	"Biografia",
	"Mistério",
	"Suspense",
	"Poesia",
	"Autoajuda",
	"Outro",
}

func IsValidGenre(genre string) bool {
	for _, g := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Book is one catalogued title. The json tags match the stored format,
// one JSON array of these objects under a single key.
type Book struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Author        string        `json:"author"`
	Genre         string        `json:"genre"`
	Year          int           `json:"year"`
	Pages         int           `json:"pages"`
	CurrentPage   int           `json:"currentPage"`
	Status        ReadingStatus `json:"status"`
	Rating        *float64      `json:"rating,omitempty"`
	Synopsis      string        `json:"synopsis,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	Cover         string        `json:"cover,omitempty"`
	ISBN          string        `json:"isbn,omitempty"`
	DateAdded     string        `json:"dateAdded"`
	DateStarted   string        `json:"dateStarted,omitempty"`
	DateCompleted string        `json:"dateCompleted,omitempty"`
}

// Rated reports whether the book carries a usable rating. A stored rating
// of exactly 0 counts as unrated, matching the stored data this app grew
// up with.
func (b *Book) Rated() bool {
	return b.Rating != nil && *b.Rating > 0
}

// BookCreate carries the caller-supplied fields of a new book.
// ID and DateAdded are assigned by the store.
type BookCreate struct {
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	Genre       string        `json:"genre"`
	Year        int           `json:"year"`
	Pages       int           `json:"pages"`
	CurrentPage int           `json:"currentPage"`
	Status      ReadingStatus `json:"status"`
	Rating      *float64      `json:"rating,omitempty"`
	Synopsis    string        `json:"synopsis,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	Cover       string        `json:"cover,omitempty"`
	ISBN        string        `json:"isbn,omitempty"`
}

// BookPatch is a partial update. Nil fields are left untouched.
// ID and DateAdded are not patchable.
type BookPatch struct {
	Title         *string        `json:"title"`
	Author        *string        `json:"author"`
	Genre         *string        `json:"genre"`
	Year          *int           `json:"year"`
	Pages         *int           `json:"pages"`
	CurrentPage   *int           `json:"currentPage"`
	Status        *ReadingStatus `json:"status"`
	Rating        *float64       `json:"rating"`
	Synopsis      *string        `json:"synopsis"`
	Notes         *string        `json:"notes"`
	Cover         *string        `json:"cover"`
	ISBN          *string        `json:"isbn"`
	DateStarted   *string        `json:"dateStarted"`
	DateCompleted *string        `json:"dateCompleted"`
}

// Apply merges the patch into the book.
func (p *BookPatch) Apply(b *Book) {
	if v := p.Title; v != nil {
		b.Title = *v
	}
	if v := p.Author; v != nil {
		b.Author = *v
	}
	if v := p.Genre; v != nil {
		b.Genre = *v
	}
	if v := p.Year; v != nil {
		b.Year = *v
	}
	if v := p.Pages; v != nil {
		b.Pages = *v
	}
	if v := p.CurrentPage; v != nil {
		b.CurrentPage = *v
	}
	if v := p.Status; v != nil {
		b.Status = *v
	}
	if v := p.Rating; v != nil {
		b.Rating = v
	}
	if v := p.Synopsis; v != nil {
		b.Synopsis = *v
	}
	if v := p.Notes; v != nil {
		b.Notes = *v
	}
	if v := p.Cover; v != nil {
		b.Cover = *v
	}
	if v := p.ISBN; v != nil {
		b.ISBN = *v
	}
	if v := p.DateStarted; v != nil {
		b.DateStarted = *v
	}
	if v := p.DateCompleted; v != nil {
		b.DateCompleted = *v
	}
}
