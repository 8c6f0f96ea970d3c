package model

import "time"

// Signup is one stored lead, immutable once inserted.
type Signup struct {
	ID           int       `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Age          string    `json:"age"`
	Gender       string    `json:"gender"`
	Mobile       string    `json:"mobile"`
	ParentMobile string    `json:"parentMobile,omitempty"`
	Postcode     string    `json:"postcode"`
	PhotoURL     *string   `json:"photoUrl"`
	Category     *string   `json:"category"`
}

// SignupRequest is the wire payload posted by a wizard run. No field is
// required at this boundary: required-ness is a wizard concern.
type SignupRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Age          string `json:"age"`
	Gender       string `json:"gender"`
	Mobile       string `json:"mobile"`
	ParentMobile string `json:"parentMobile"`
	Postcode     string `json:"postcode"`
	Photo        string `json:"photo"` // data:image/<type>;base64,<data>
	Category     string `json:"category"`
}

// Normalize applies the storage defaults: gender falls back to "female",
// empty category and missing photo become NULL.
func (req SignupRequest) Normalize(photoURL string) Signup {
	s := Signup{
		Name:         req.Name,
		Email:        req.Email,
		Age:          req.Age,
		Gender:       req.Gender,
		Mobile:       req.Mobile,
		ParentMobile: req.ParentMobile,
		Postcode:     req.Postcode,
	}
	if s.Gender == "" {
		s.Gender = "female"
	}
	if req.Category != "" {
		category := req.Category
		s.Category = &category
	}
	if photoURL != "" {
		url := photoURL
		s.PhotoURL = &url
	}
	return s
}
