package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/djitsotsu/authsvc/internal/flagx"
	"github.com/djitsotsu/authsvc/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "15m" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrGRPC               string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                    string         `json:"database_dsn"`
	RedisAddr                      string         `json:"redis_addr"`
	RedisPassword                  string         `json:"redis_password"`
	SecretKey                      string         `json:"secret_key"`
	AccessTokenValidityDuration    timex.Duration `json:"access_token_validity_duration"`
	RefreshSessionValidityDuration timex.Duration `json:"refresh_session_validity_duration"`
	MailAddr                       string         `json:"mail_addr"`
	MailFrom                       string         `json:"mail_from"`
	MailUser                       string         `json:"mail_user"`
	MailPassword                   string         `json:"mail_password"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. If the file cannot be
// read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.RedisAddr = c.RedisAddr
	config.RedisPassword = c.RedisPassword
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.RefreshSessionValidityDuration = time.Duration(c.RefreshSessionValidityDuration.Duration)
	config.MailAddr = c.MailAddr
	config.MailFrom = c.MailFrom
	config.MailUser = c.MailUser
	config.MailPassword = c.MailPassword
}
