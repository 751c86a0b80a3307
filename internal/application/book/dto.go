package book

import (
	"github.com/xiebiao/library/internal/domain/book"
)

// BookDTO 图书信息
type BookDTO struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Copies      int    `json:"copies"`
	TotalCopies int    `json:"total_copies"`
	CreatedAt   string `json:"created_at"`
}

// ToBookDTO 领域实体 → DTO
func ToBookDTO(b *book.Book) *BookDTO {
	return &BookDTO{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Copies:      b.Copies,
		TotalCopies: b.TotalCopies,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
