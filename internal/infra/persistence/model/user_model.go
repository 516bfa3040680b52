package model

// UserModel mirrors the 'user' table.
type UserModel struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"size:120;not null;uniqueIndex:idx_user_email"`
	Username string `gorm:"size:120;not null;uniqueIndex:idx_user_username"`
	Password string `gorm:"size:255;not null"`
	Name     string `gorm:"size:120"`
	LastName string `gorm:"size:120"`
	IsActive bool   `gorm:"not null"`

	Favorites []FavoriteModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "user"
}
