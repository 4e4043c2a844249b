package dto

import "time"

type BillDTO struct {
	ID        uint          `json:"id"`
	Reference string        `json:"reference"`
	MemberID  uint          `json:"member_id"`
	Member    string        `json:"member,omitempty"`
	Date      time.Time     `json:"date"`
	Paid      bool          `json:"paid"`
	Total     float64       `json:"total"`
	Items     []BillItemDTO `json:"items"`
}

type BillItemDTO struct {
	ID       uint    `json:"id"`
	Service  string  `json:"service"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
