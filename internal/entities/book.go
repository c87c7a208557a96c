package entities

import "strings"

// Status tracks where a book sits in the reading lifecycle.
type Status int

const (
	StatusToRead Status = iota
	StatusReading
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusReading:
		return "Reading"
	case StatusFinished:
		return "Finished"
	default:
		return "To-Read"
	}
}

// ParseStatus recognizes the user-facing spellings of each status,
// case-insensitively, plus the numeric values.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "to-read", "toread", "todo", "0":
		return StatusToRead, true
	case "reading", "1":
		return StatusReading, true
	case "finished", "done", "2":
		return StatusFinished, true
	}
	return StatusToRead, false
}

// Book is a single tracked reading record. IDs are assigned by the store on
// creation and never reused after deletion.
type Book struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"index;size:512;not null" json:"title"`
	Author      string `gorm:"index;size:256" json:"author"`
	TotalPages  int    `gorm:"not null" json:"total_pages"`
	CurrentPage int    `gorm:"not null" json:"current_page"`
	Status      Status `gorm:"index;not null" json:"status"`
	ISBN        string `gorm:"size:20" json:"isbn,omitempty"`
}

func (Book) TableName() string {
	return "books"
}
