package models

// Profile son los datos opcionales del perfil.
type Profile struct {
	FullName  string   `json:"fullName,omitempty" bson:"fullName,omitempty"`
	Age       *int     `json:"age,omitempty" bson:"age,omitempty"`
	Country   string   `json:"country,omitempty" bson:"country,omitempty"`
	Interests []string `json:"interests,omitempty" bson:"interests,omitempty"`
}

// UserDoc es la cuenta persistida (colección users). El username es la
// clave de login; el userId ("user_001", ...) es la identidad dentro del
// motor de recomendación.
type UserDoc struct {
	UserID       string  `json:"userId" bson:"userId"`
	Username     string  `json:"username" bson:"username"`
	Email        string  `json:"email,omitempty" bson:"email,omitempty"`
	PasswordHash string  `json:"-" bson:"passwordHash"`
	Profile      Profile `json:"profile" bson:"profile"`
	CreatedAt    string  `json:"createdAt" bson:"createdAt"`
	LastLogin    string  `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
}
