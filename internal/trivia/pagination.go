package trivia

// Paginate returns the 1-indexed page of items, which must already be sorted
// by id. An empty window is ErrPageOutOfRange, including when items itself is
// empty.
func Paginate(items []Question, page int) (Page, error) {
	if page < 1 {
		return Page{}, ErrInvalidPage
	}

	total := len(items)
	// Compare page numbers before multiplying so huge pages cannot overflow.
	if page > (total+PageSize-1)/PageSize {
		return Page{Total: total}, ErrPageOutOfRange
	}
	start := (page - 1) * PageSize
	end := min(start+PageSize, total)

	return Page{
		Questions: items[start:end],
		Total:     total,
	}, nil
}
