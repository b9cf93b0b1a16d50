package core

// User is a row of the users table as returned by the listing endpoint.
// CreatedAt and UpdatedAt are never populated from the store and always
// serialize as null; the columns exist in the schema but are not part of
// the read path.
type User struct {
	ID        int32   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}
