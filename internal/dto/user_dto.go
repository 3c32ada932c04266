package dto

// UpdateProfileRequest carries partial profile updates. Nil fields are
// left unchanged. Role is not self-updatable.
type UpdateProfileRequest struct {
	Contact       *string `json:"contact,omitempty"`
	ConsentFaceQR *bool   `json:"consent_face_qr,omitempty"`
}
