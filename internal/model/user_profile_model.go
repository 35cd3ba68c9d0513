package model

type UserProfile struct {
	UserEmail string  `gorm:"column:user_email;type:text;primaryKey"`
	Mode      *string `gorm:"column:mode;type:text"`
	Language  *string `gorm:"column:language;type:text"`
	Pincode   *string `gorm:"column:pincode;type:text"`
}

func (UserProfile) TableName() string {
	return "user_information"
}
