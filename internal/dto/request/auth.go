package request

type RegisterRequest struct {
	Username  string `form:"username" validate:"required,min=3,max=150,alphanum"`
	Email     string `form:"email" validate:"required,email,max=254"`
	Password1 string `form:"password1" validate:"required,min=8,max=128"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

// LoginRequest accepts either a username or an email in Username.
type LoginRequest struct {
	Username  string `form:"username" validate:"required"`
	Password  string `form:"password" validate:"required"`
	UserAgent string `form:"-"`
	IPAddress string `form:"-"`
}

type CreateAdminRequest struct {
	Username string `form:"username" validate:"required,min=3,max=150,alphanum"`
	Email    string `form:"email" validate:"required,email,max=254"`
	Password string `form:"password" validate:"required,min=8,max=128"`
}

type SetRoleRequest struct {
	Username string `form:"username" validate:"required"`
	Role     string `form:"role" validate:"omitempty,oneof=admin customer"`
}
