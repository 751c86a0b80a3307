package lending

import (
	"github.com/xiebiao/library/internal/domain/issue"
)

const timeLayout = "2006-01-02 15:04:05"

// IssueDTO 借阅记录
type IssueDTO struct {
	ID         uint   `json:"id"`
	MemberID   uint   `json:"member_id"`
	BookID     uint   `json:"book_id"`
	IssueDate  string `json:"issue_date"`
	Status     string `json:"status"`
	ReturnedAt string `json:"returned_at,omitempty"`
}

// ToIssueDTO 领域实体 → DTO
func ToIssueDTO(i *issue.Issue) *IssueDTO {
	dto := &IssueDTO{
		ID:        i.ID,
		MemberID:  i.MemberID,
		BookID:    i.BookID,
		IssueDate: i.IssueDate.Format(timeLayout),
		Status:    i.Status.String(),
	}
	if i.ReturnedAt != nil {
		dto.ReturnedAt = i.ReturnedAt.Format(timeLayout)
	}
	return dto
}
