package model

import "time"

// Property type vocabulary. Values outside this set may still appear on a
// record (the normalizer passes unrecognized raw values through) but every
// row written by this service uses one of these constants.
const (
	PropertyTypeApartment  = "apartment"
	PropertyTypeHouse      = "house"
	PropertyTypeDuplex     = "duplex"
	PropertyTypeCommercial = "commercial"
)

// Property represents a rental property as stored in the `properties`
// table. Each property belongs to a single manager and may have many
// tenants assigned to its units.
//
// Fields:
//  ID        – primary key identifier.
//  ManagerID – users.id of the managing account.
//  Name      – human-friendly property name.
//  Street    – street address line.
//  City      – city name.
//  State     – state or region code.
//  Zip       – postal code.
//  Units     – number of rentable units; never negative.
//  Type      – property type (apartment, house, duplex, commercial).
//  ImageURL  – optional image reference held in external storage (nullable).
//  CreatedAt – timestamp of creation.
//  UpdatedAt – timestamp of last update.
type Property struct {
	ID        uint64    // properties.id
	ManagerID uint64    // properties.manager_id
	Name      string    // properties.name
	Street    string    // properties.street
	City      string    // properties.city
	State     string    // properties.state
	Zip       string    // properties.zip
	Units     int       // properties.units
	Type      string    // properties.type
	ImageURL  *string   // properties.image_url (nullable)
	CreatedAt time.Time // properties.created_at
	UpdatedAt time.Time // properties.updated_at
}

// ValidPropertyType reports whether s is one of the known property types.
func ValidPropertyType(s string) bool {
	switch s {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeDuplex, PropertyTypeCommercial:
		return true
	}
	return false
}
