package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// College is a college/institution document. Programs are embedded and owned
// by the college; they have no identity or lifecycle of their own.
type College struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Address    string             `bson:"address,omitempty" json:"address,omitempty"`
	Location   Location           `bson:"location,omitempty" json:"location,omitempty"`
	Programs   []Program          `bson:"programs,omitempty" json:"programs,omitempty"`
	Facilities []string           `bson:"facilities,omitempty" json:"facilities,omitempty"`
	Contact    Contact            `bson:"contact,omitempty" json:"contact,omitempty"`
}

// Program is an academic offering embedded within a College.
type Program struct {
	Name        string  `bson:"name" json:"name"`
	Cutoff      float64 `bson:"cutoff,omitempty" json:"cutoff,omitempty"`
	Eligibility string  `bson:"eligibility,omitempty" json:"eligibility,omitempty"`
	Medium      string  `bson:"medium,omitempty" json:"medium,omitempty"`
}

// Location holds map links for a college.
type Location struct {
	GoogleMapsLink string `bson:"google_maps_link,omitempty" json:"google_maps_link,omitempty"`
	MapEmbedURL    string `bson:"map_embed_url,omitempty" json:"map_embed_url,omitempty"`
}

// Contact is a college's contact block.
type Contact struct {
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

// CollegeRequest is the payload for creating or fully replacing a college.
type CollegeRequest struct {
	Name       string    `json:"name" binding:"required,min=2,max=200"`
	District   string    `json:"district" binding:"max=100"`
	Address    string    `json:"address" binding:"max=500"`
	Location   Location  `json:"location"`
	Programs   []Program `json:"programs"`
	Facilities []string  `json:"facilities"`
	Contact    Contact   `json:"contact"`
}

// ToCollege builds a College document from the request payload.
// The ID is left zero; the store assigns it on insert.
func (r *CollegeRequest) ToCollege() *College {
	return &College{
		Name:       r.Name,
		District:   r.District,
		Address:    r.Address,
		Location:   r.Location,
		Programs:   r.Programs,
		Facilities: r.Facilities,
		Contact:    r.Contact,
	}
}
