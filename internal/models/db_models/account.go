package db_models

type Account struct {
	BaseModel
	DisplayName  string
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
}
