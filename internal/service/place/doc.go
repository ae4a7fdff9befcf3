// Package place implements the place record workflow.
//
// The service layer contains all business logic for creating, reading,
// updating, and deleting geotagged places, including address resolution via
// the geocoder and the transactional coupling between a place and its
// owner's place list. It depends on the interfaces defined in this package
// and never imports from api/.
//
// Repository implementations live in repository/postgres/.
package place
