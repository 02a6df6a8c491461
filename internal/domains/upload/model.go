package upload

// Request is the upload-image payload. Base64Image may carry a
// data:...;base64, header, which is stripped before decoding.
type Request struct {
	Base64Image string `json:"base64Image"`
	Filename    string `json:"filename"`
	BucketName  string `json:"bucketName"`
}
