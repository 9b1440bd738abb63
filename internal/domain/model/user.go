package model

type User struct {
	ID             ID     `json:"id"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	MobilePhone    string `json:"mobile_phone"`
	ProfilePicture string `json:"profile_picture"`

	//ロールフラグ（排他ではない）
	IsSeller bool `json:"is_seller"`
	IsStaff  bool `json:"is_staff"`
}

// TokenPairはログイン時に返るaccess/refreshの組。中身は不透明文字列。
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
