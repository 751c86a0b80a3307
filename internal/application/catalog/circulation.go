package catalog

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/issue"
)

// CirculationReport 单本图书的流通情况
// Consistent:可借副本数 + 未归还借阅数 == 登记总数
type CirculationReport struct {
	BookID      uint   `json:"book_id"`
	Title       string `json:"title"`
	Copies      int    `json:"copies"`
	Outstanding int64  `json:"outstanding"`
	TotalCopies int    `json:"total_copies"`
	Consistent  bool   `json:"consistent"`
}

// CirculationUseCase 流通核对用例
type CirculationUseCase struct {
	bookRepo  book.Repository
	issueRepo issue.Repository
}

// NewCirculationUseCase 创建流通核对用例
func NewCirculationUseCase(bookRepo book.Repository, issueRepo issue.Repository) *CirculationUseCase {
	return &CirculationUseCase{bookRepo: bookRepo, issueRepo: issueRepo}
}

// Execute 逐本核对副本数
func (uc *CirculationUseCase) Execute(ctx context.Context) ([]CirculationReport, error) {
	books, err := uc.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	outstanding, err := uc.issueRepo.CountOutstandingByBook(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]CirculationReport, len(books))
	for i, b := range books {
		n := outstanding[b.ID]
		reports[i] = CirculationReport{
			BookID:      b.ID,
			Title:       b.Title,
			Copies:      b.Copies,
			Outstanding: n,
			TotalCopies: b.TotalCopies,
			Consistent:  int64(b.Copies)+n == int64(b.TotalCopies),
		}
	}
	return reports, nil
}
