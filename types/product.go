package types

// Product is one fully-assembled product record ready for upload.
type Product struct {
	ProductID       string           `json:"product_id,omitempty"`
	Characteristics []Characteristic `json:"characteristics,omitempty"`
}

// UploadProductInformationRequest is the stream request envelope for one
// product record.
type UploadProductInformationRequest struct {
	Product *Product `json:"product,omitempty"`
}

// UploadProductInformationResponse is the stream response envelope. A
// response without a status is a protocol violation.
type UploadProductInformationResponse struct {
	Status *Status `json:"status,omitempty"`
}
