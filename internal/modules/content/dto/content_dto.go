package dto

type UploadGalleryImageRequest struct {
	Title   string `form:"title" binding:"required,max=150"`
	AltText string `form:"alt_text" binding:"max=255"`
}

type GalleryImageResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	AltText  string `json:"alt_text"`
	ImageURL string `json:"image_url"`
}
