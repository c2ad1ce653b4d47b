package entity

type Guest struct {
	Base
	FullName string  `db:"full_name"`
	Phone    *string `db:"phone"`
	Email    *string `db:"email"`
}
