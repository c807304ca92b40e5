package dto

const (
	defaultPageLength = 20
	maxPageLength     = 100
)

type Pagination struct {
	PageIndex  int64 `form:"page_index" binding:"gte=0"`
	PageLength int64 `form:"page_length" binding:"gte=0,lte=100"`
}

func (p *Pagination) Normalize() {
	if p.PageLength <= 0 {
		p.PageLength = defaultPageLength
	}
	if p.PageLength > maxPageLength {
		p.PageLength = maxPageLength
	}
	if p.PageIndex < 0 {
		p.PageIndex = 0
	}
}
