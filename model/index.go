package model

// CurrentUser is the identity attached to a request by the identity middleware.
type CurrentUser struct {
	ID       uint   `json:"id"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

func (u *CurrentUser) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

type TokenData struct {
	AccessToken string `json:"accessToken"`
}

type TokenClaim struct {
	UserId   uint   `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type Person struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email"`
}

func (Person) TableName() string { return "persons" }

func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

type User struct {
	PersonId     uint    `gorm:"primaryKey" json:"personId"`
	Role         string  `json:"role"`
	Username     string  `json:"username"`
	PasswordHash *string `json:"-"`
}

func (User) TableName() string { return "users" }

// UserRecord is a user joined with its person row.
type UserRecord struct {
	PersonId     uint    `json:"personId"`
	Role         string  `json:"role"`
	Username     string  `json:"username"`
	PasswordHash *string `json:"-"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        *string `json:"email"`
}

func (u UserRecord) CurrentUser() *CurrentUser {
	cu := &CurrentUser{
		ID:       u.PersonId,
		Role:     u.Role,
		Name:     u.FirstName + " " + u.LastName,
		Username: u.Username,
	}
	if u.Email != nil {
		cu.Email = *u.Email
	}
	return cu
}
