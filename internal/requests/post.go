package requests

type CreatePostRequest struct {
	Title     string `json:"title" form:"title"`
	Content   string `json:"content" form:"content"`
	Excerpt   string `json:"excerpt" form:"excerpt"`
	Image     string `json:"image" form:"image"`
	Category  string `json:"category" form:"category"`
	Published bool   `json:"published" form:"published"`
}

// UpdatePostRequest carries a partial update: nil fields are left unchanged.
type UpdatePostRequest struct {
	Title     *string `json:"title" form:"title"`
	Content   *string `json:"content" form:"content"`
	Excerpt   *string `json:"excerpt" form:"excerpt"`
	Image     *string `json:"image" form:"image"`
	Category  *string `json:"category" form:"category"`
	Published *bool   `json:"published" form:"published"`
}
