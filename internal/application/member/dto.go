package member

import (
	"github.com/xiebiao/library/internal/domain/member"
)

// MemberDTO 会员信息
type MemberDTO struct {
	ID        uint   `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}

// ToMemberDTO 领域实体 → DTO
func ToMemberDTO(m *member.Member) *MemberDTO {
	return &MemberDTO{
		ID:        m.ID,
		Code:      m.Code,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
