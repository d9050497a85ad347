package request

import "io"

// CustomerRequest is the account settings form.
type CustomerRequest struct {
	Name  string `form:"name" validate:"required,max=200"`
	Phone string `form:"phone" validate:"max=200"`
	Email string `form:"email" validate:"omitempty,email,max=200"`

	// ProfilePic is optional; the caller closes it.
	ProfilePic *Upload `form:"-"`
}

type Upload struct {
	Filename string
	Size     int64
	Body     io.Reader
}
