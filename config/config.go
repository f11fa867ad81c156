package config

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Debug            bool   `envconfig:"debug"`
	Port             int    `envconfig:"port" default:"8080"`
	Env              string `envconfig:"env"`
	PostgresHost     string `envconfig:"postgres_host" validate:"required"`
	PostgresUser     string `envconfig:"postgres_user" validate:"required"`
	PostgresDB       string `envconfig:"postgres_db" validate:"required"`
	PostgresPort     int    `envconfig:"postgres_port" default:"5432"`
	PostgresPassword string `envconfig:"postgres_password"`
	RedisAddr        string `envconfig:"redis_addr" default:"localhost:6379"`
	JWTSecret        string `envconfig:"jwt_secret" validate:"required"`
	MediaDir         string `envconfig:"media_dir" default:"media"`
	LoginURL         string `envconfig:"login_url" default:"/auth/login/"`
}

func Load() (*Config, error) {
	env := os.Getenv("GIN_MODE")
	if env != "release" {
		if err := godotenv.Load("./.env"); err != nil {
			log.Printf("couldn't load env vars: %v", err)
		}
	}

	c := &Config{}
	if err := envconfig.Process("bloghub", c); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(c); err != nil {
		return nil, err
	}
	return c, nil
}
