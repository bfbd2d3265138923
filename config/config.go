package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	MongoURL string `envconfig:"MONGO_URL" required:"true"`
	DBName   string `envconfig:"DB_NAME" default:"distrisur"`
	Port     string `envconfig:"PORT" default:"8080"`
	PDFDir   string `envconfig:"PDF_DIR" default:"./pdfs"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using system environment variables")
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
