// Package books provides database operations for book records.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	id, err := repo.Add(&book)
package books

import (
	"gorm.io/gorm"

	"github.com/mrlokans/booktracer/internal/entities"
)

// Repository handles all book record database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new book repository. Pass a transaction handle to
// scope every operation to that transaction.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add inserts a record and returns its freshly assigned id. Any id already
// set on the record is discarded; the store never accepts client-supplied
// ids and never reuses the id of a deleted record.
func (r *Repository) Add(book *entities.Book) (uint, error) {
	book.ID = 0
	if err := r.db.Create(book).Error; err != nil {
		return 0, err
	}
	return book.ID, nil
}

// Get retrieves a record by id. Returns gorm.ErrRecordNotFound when absent.
func (r *Repository) Get(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// List returns all records ordered by id ascending, optionally filtered by
// status.
func (r *Repository) List(filter *entities.Status) ([]entities.Book, error) {
	var books []entities.Book
	query := r.db.Order("id ASC")
	if filter != nil {
		query = query.Where("status = ?", *filter)
	}
	err := query.Find(&books).Error
	return books, err
}

// Search returns records whose title or author contains the query substring,
// case-insensitively, ordered by id ascending.
func (r *Repository) Search(query string) ([]entities.Book, error) {
	var books []entities.Book
	searchPattern := "%" + query + "%"
	err := r.db.
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", searchPattern, searchPattern).
		Order("id ASC").
		Find(&books).Error
	return books, err
}

// UpdateProgress sets current_page and status to exactly the given values.
// It performs no Finished-page pinning; callers that want the status/page
// coupling use SetStatus.
func (r *Repository) UpdateProgress(id uint, currentPage int, status entities.Status) error {
	result := r.db.Model(&entities.Book{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"current_page": currentPage,
			"status":       status,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetStatus updates the status and, when the new status is Finished, pins
// current_page to total_pages in the same statement. Any other status leaves
// current_page untouched.
func (r *Repository) SetStatus(id uint, status entities.Status) error {
	result := r.db.Model(&entities.Book{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"current_page": gorm.Expr(
				"CASE WHEN ? = ? THEN total_pages ELSE current_page END",
				status, entities.StatusFinished,
			),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Remove hard-deletes a record. Returns gorm.ErrRecordNotFound when no such
// record exists.
func (r *Repository) Remove(id uint) error {
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
