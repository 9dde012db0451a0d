package api

// entityDTO is the wire shape shared by spaces and types: every listed
// object carries a stable id and a display name.
type entityDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type paginationDTO struct {
	Total   int  `json:"total"`
	Offset  int  `json:"offset"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"has_more"`
}

type listResponse struct {
	Data       []entityDTO   `json:"data"`
	Pagination paginationDTO `json:"pagination"`
}
