package models

// Container is a physical storage location identified by a code.
// Name defaults to the code when the container is auto-created.
type Container struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
