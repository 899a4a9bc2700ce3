package validator // import "github.com/estante-app/estante/validator"

import (
	"strings"
	"time"

	"github.com/estante-app/estante/model"
)

// ValidateBookCreate checks a new-book request the way the add form
// does. It returns a field-keyed error map, empty when valid.
func ValidateBookCreate(create *model.BookCreate) map[string]string {
	errs := make(map[string]string)
	if create == nil {
		errs["request"] = "request body is required"
		return errs
	}

	if strings.TrimSpace(create.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(create.Author) == "" {
		errs["author"] = "author is required"
	}
	if create.Status == "" {
		errs["status"] = "status is required"
	} else if !create.Status.IsValid() {
		errs["status"] = "unknown reading status"
	}
	if create.Genre != "" && !model.IsValidGenre(create.Genre) {
		errs["genre"] = "unknown genre"
	}
	if create.Pages < 0 {
		errs["pages"] = "pages must not be negative"
	}
	if create.CurrentPage < 0 {
		errs["currentPage"] = "current page must not be negative"
	} else if create.Pages >= 0 && create.CurrentPage > create.Pages {
		errs["currentPage"] = "current page must not exceed total pages"
	}
	if create.Rating != nil && (*create.Rating < 1 || *create.Rating > 5) {
		errs["rating"] = "rating must be between 1 and 5"
	}
	if create.Year != 0 && (create.Year < 0 || create.Year > time.Now().Year()+1) {
		errs["year"] = "year is out of range"
	}
	return errs
}

// ValidateBookPatch checks a partial update with the same field rules.
// The currentPage/pages cross-check runs against the record the patch
// will land on.
func ValidateBookPatch(patch *model.BookPatch, target *model.Book) map[string]string {
	errs := make(map[string]string)
	if patch == nil {
		errs["request"] = "request body is required"
		return errs
	}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		errs["title"] = "title must not be empty"
	}
	if patch.Author != nil && strings.TrimSpace(*patch.Author) == "" {
		errs["author"] = "author must not be empty"
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		errs["status"] = "unknown reading status"
	}
	if patch.Genre != nil && *patch.Genre != "" && !model.IsValidGenre(*patch.Genre) {
		errs["genre"] = "unknown genre"
	}
	if patch.Rating != nil && *patch.Rating != 0 && (*patch.Rating < 1 || *patch.Rating > 5) {
		errs["rating"] = "rating must be between 1 and 5"
	}

	pages := 0
	if target != nil {
		pages = target.Pages
	}
	if patch.Pages != nil {
		if *patch.Pages < 0 {
			errs["pages"] = "pages must not be negative"
		}
		pages = *patch.Pages
	}
	if patch.CurrentPage != nil {
		if *patch.CurrentPage < 0 {
			errs["currentPage"] = "current page must not be negative"
		} else if *patch.CurrentPage > pages {
			errs["currentPage"] = "current page must not exceed total pages"
		}
	}
	if patch.Year != nil && *patch.Year != 0 && (*patch.Year < 0 || *patch.Year > time.Now().Year()+1) {
		errs["year"] = "year is out of range"
	}
	return errs
}
