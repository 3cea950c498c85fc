package service

import "time"

type Config struct {
	Token          string        `toml:"token" env:"SCHEDULER_TOKEN"`
	Expiration     time.Duration `toml:"expiration" env:"SCHEDULER_TOKEN_EXPIRATION"`
	PasswordPepper string        `toml:"password_pepper" env:"SCHEDULER_PASSWORD_PEPPER"`
	BcryptCost     int           `toml:"bcrypt_cost" env:"SCHEDULER_BCRYPT_COST"`
	SecureCookie   bool          `toml:"secure_cookie" env:"SCHEDULER_SECURE_COOKIE"`
	RootEmail      string        `toml:"root_email" env:"SCHEDULER_ROOT_EMAIL"`
	RootPassword   string        `toml:"root_password" env:"SCHEDULER_ROOT_PASSWORD"`
}
