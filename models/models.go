package models

type Admin struct {
	ID           int    `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type Note struct {
	ID        int    `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	Content   string `json:"content" db:"content"`
	Color     string `json:"color" db:"color"`
	PositionX int    `json:"positionX" db:"position_x"`
	PositionY int    `json:"positionY" db:"position_y"`
	Width     int    `json:"width" db:"width"`
	Height    int    `json:"height" db:"height"`
	AdminID   int    `json:"adminId" db:"admin_id"`
}
