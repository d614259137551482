package models

import "time"

// Project is a planted garden project. Sticker attributes are stored as
// normalized columns; the composed sticker payload is derived on read.
type Project struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ProjectName  string    `json:"projectName" gorm:"column:projectName;not null" validate:"required,min=1,max=200"`
	Location     string    `json:"location" gorm:"not null" validate:"required,min=1,max=200"`
	Creator      string    `json:"creator" gorm:"default:'Anonymous Gardener'" validate:"max=100"`
	ProjectLink  string    `json:"projectLink" gorm:"column:projectLink" validate:"omitempty,url,max=500"`
	Screenshot   string    `json:"screenshot"`
	Adjective    string    `json:"adjective" gorm:"default:'Fresh'"`
	Feeling      string    `json:"feeling" gorm:"default:'Excited'"`
	FruitType    string    `json:"fruitType" gorm:"column:fruitType;default:'shape1'"`
	StickerColor string    `json:"stickerColor" gorm:"column:stickerColor;default:'#FEA57D'"`
	Likes        int       `json:"likes" gorm:"default:0"`
	PositionX    float64   `json:"positionX" gorm:"column:positionX;default:0"`
	PositionY    float64   `json:"positionY" gorm:"column:positionY;default:0"`
	GardenRow    int       `json:"gardenRow" gorm:"column:gardenRow;default:0"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:createdAt"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
