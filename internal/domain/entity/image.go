package entity

// Image is an uploaded file as stored by an ImageStorage.
type Image struct {
	URL         string
	Filename    string
	ContentType string
	Size        int64
}
