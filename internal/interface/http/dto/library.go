package dto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// RawValue 原样保留的输入值
// JSON中可以是字符串或数字("3"和3等价),表单中是字符串;解析规则由应用层决定
type RawValue string

// UnmarshalJSON 接受JSON字符串、数字或null
func (v *RawValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RawValue(s)
		return nil
	}
	*v = RawValue(strings.TrimSpace(string(data)))
	return nil
}

// UnmarshalParam 实现gin的binding.BindUnmarshaler(表单、query绑定)
func (v *RawValue) UnmarshalParam(param string) error {
	*v = RawValue(param)
	return nil
}

// String 返回原始字符串
func (v RawValue) String() string {
	return string(v)
}

// RegisterMemberRequest HTTP会员注册请求
type RegisterMemberRequest struct {
	Name  string `json:"name" form:"name" binding:"required,max=100" example:"Ada Lovelace"`
	Email string `json:"email" form:"email" binding:"required,max=100" example:"ada@example.com"`
	Phone string `json:"phone" form:"phone" binding:"max=30" example:"555-0100"`
}

// RegisterBookRequest HTTP图书登记请求
// copies无效或小于1时按1处理
type RegisterBookRequest struct {
	Title  string   `json:"title" form:"title" binding:"required,max=200" example:"Dune"`
	Author string   `json:"author" form:"author" binding:"required,max=100" example:"Frank Herbert"`
	Copies RawValue `json:"copies" form:"copies" swaggertype:"string" example:"3"`
}

// IssueBookRequest HTTP借书请求
// member_id是会员编号(如M001),book_id是图书ID
type IssueBookRequest struct {
	MemberID string   `json:"member_id" form:"member_id" binding:"required" example:"M001"`
	BookID   RawValue `json:"book_id" form:"book_id" swaggertype:"string" example:"1"`
}
