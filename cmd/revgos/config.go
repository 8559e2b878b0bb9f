package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/darkclainer/revgo/pkg/querier"
)

type Config struct {
	ZapConfig string         `mapstructure:"zapconfig"`
	Host      string         `mapstructure:"host" validate:"required,hostname_port"`
	Remote    querier.Config `mapstructure:"remote"`
}

func (c *Config) ZapConf() (*zap.Config, error) {
	if c.ZapConfig == "" {
		defaultConf := zap.NewDevelopmentConfig()
		return &defaultConf, nil
	}
	var zapConf zap.Config
	if err := json.Unmarshal([]byte(c.ZapConfig), &zapConf); err != nil {
		return nil, err
	}
	return &zapConf, nil
}

var validate = validator.New()

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	var errMsgs []string
	for _, e := range validationErrors {
		errMsgs = append(errMsgs, fmt.Sprintf(
			"Field: %s, Tag: %s, Param: %s", e.Namespace(), e.Tag(), e.Param(),
		))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}

var remoteEnvKeys = []string{
	"remote.timeout",
	"remote.protocol",
	"remote.context_host",
	"remote.translation_host",
	"remote.spelling_host",
	"remote.synonyms_host",
	"remote.conjugation_host",
	"remote.voice_host",
	"remote.max_workers",
}

func getConfig(args []string) (*Config, *zap.Config, error) {
	v := viper.New()
	flags := pflag.NewFlagSet("revgos", pflag.ContinueOnError)
	flags.StringP("config", "c", "config.yaml", "path to local config")
	flags.String("host", "localhost:8080", "address to listen on")
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	if err := v.BindPFlags(flags); err != nil {
		return nil, nil, err
	}
	v.SetEnvPrefix("REVGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range remoteEnvKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	configPath := v.GetString("config")
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err == nil {
		fmt.Printf("Using config file: %s\n", configPath)
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, nil, fmt.Errorf("error while unmarshaling config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, nil, err
	}
	zapConf, err := conf.ZapConf()
	if err != nil {
		return nil, nil, err
	}
	return &conf, zapConf, nil
}
