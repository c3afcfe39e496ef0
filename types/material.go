package types

// Material is one fully-assembled material record ready for upload.
type Material struct {
	MaterialID      string           `json:"material_id,omitempty"`
	Plant           string           `json:"plant,omitempty"`
	Quantity        *Quantity        `json:"quantity,omitempty"`
	Characteristics []Characteristic `json:"characteristics,omitempty"`
}

// UploadMaterialInformationRequest is the stream request envelope for one
// material record.
type UploadMaterialInformationRequest struct {
	Material *Material `json:"material,omitempty"`
}

// UploadMaterialInformationResponse is the stream response envelope. A
// response without a status is a protocol violation.
type UploadMaterialInformationResponse struct {
	Status *Status `json:"status,omitempty"`
}
