package models

// BrowserInfo - result of classifying a User-Agent header.
type BrowserInfo struct {
	Browser  string `json:"browser"`
	OS       string `json:"os"`
	IsMobile bool   `json:"is_mobile"`
}

// UploadResult - confirmation returned after storing an uploaded body.
type UploadResult struct {
	FileName string `json:"archivo"`
	Size     int    `json:"tamaño"`
	Message  string `json:"mensaje"`
}
