package types

// Demand is one fully-assembled demand record ready for upload. The product
// reference identifies which product the demand is for.
type Demand struct {
	Product         *Product         `json:"product,omitempty"`
	Plant           string           `json:"plant,omitempty"`
	CustomerID      string           `json:"customer_id,omitempty"`
	Quantity        *Quantity        `json:"quantity,omitempty"`
	Characteristics []Characteristic `json:"characteristics,omitempty"`
}

// UploadDemandInformationRequest is the stream request envelope for one
// demand record.
type UploadDemandInformationRequest struct {
	Demand *Demand `json:"demand,omitempty"`
}

// UploadDemandInformationResponse is the stream response envelope. A
// response without a status is a protocol violation.
type UploadDemandInformationResponse struct {
	Status *Status `json:"status,omitempty"`
}
