package models

// Config is a key/value application setting. Keys are unique; setting an
// existing key overwrites its value.
type Config struct {
	Key   string `gorm:"primarykey" json:"key"`
	Value string `gorm:"not null" json:"value"`
}

// TableName keeps the original singular table name.
func (Config) TableName() string {
	return "config"
}
