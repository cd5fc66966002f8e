package service

import (
	"strconv"
	"strings"
)

// Pagination describes one page window over the post list and the
// previous/next navigation around it.
type Pagination struct {
	Page     int
	PerPage  int
	Total    int64
	LastPage int
	Offset   int
	HasPrev  bool
	HasNext  bool
	PrevPage int
	NextPage int
}

// ParsePage turns the raw "page" query value into a page number.
// Anything that is not a positive integer falls back to 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page <= 0 {
		return 1
	}
	return page
}

// Paginate computes the window for page given total posts and the page size.
// A page past the last one keeps its number; its slice is simply empty and
// only the previous link is enabled.
func Paginate(page int, total int64, perPage int) Pagination {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 1
	}
	if total < 0 {
		total = 0
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))

	// 超出末页时直接定位到末尾，避免大页码相乘溢出
	offset := int(total)
	if page <= lastPage {
		offset = (page - 1) * perPage
	}

	p := Pagination{
		Page:     page,
		PerPage:  perPage,
		Total:    total,
		LastPage: lastPage,
		Offset:   offset,
		HasPrev:  page > 1,
		HasNext:  page < lastPage,
	}
	if p.HasPrev {
		p.PrevPage = page - 1
	}
	if p.HasNext {
		p.NextPage = page + 1
	}
	return p
}

// PrevURL returns the link for the previous page, or "#" when disabled.
func (p Pagination) PrevURL() string {
	if !p.HasPrev {
		return "#"
	}
	return pageURL(p.PrevPage)
}

// NextURL returns the link for the next page, or "#" when disabled.
func (p Pagination) NextURL() string {
	if !p.HasNext {
		return "#"
	}
	return pageURL(p.NextPage)
}

func pageURL(page int) string {
	return "/?page=" + strconv.Itoa(page)
}
