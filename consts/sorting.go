package consts

type SortOrder bool

const (
	Ascending  = SortOrder(false)
	Descending = SortOrder(true)
)
