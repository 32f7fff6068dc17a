package config

import (
	"net/url"
	"os"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"
)

type Config struct {
	Server     Server     `yaml:"server"`
	Hypermedia Hypermedia `yaml:"hypermedia"`
}

type Server struct {
	Listen        string `yaml:"listen"`
	BaseURL       string `yaml:"baseURL"` // used for Location headers; empty means the request host
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"` // empty disables change signals
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
	LogLevel      string `yaml:"logLevel"` // debug, info, warn, error
	LoadExamples  bool   `yaml:"loadExamples"`
}

// Hypermedia holds the documentation URLs advertised in every document.
type Hypermedia struct {
	LinkRelations string `yaml:"linkRelations"`
	ErrorProfile  string `yaml:"errorProfile"`
	ProfileBase   string `yaml:"profileBase"`
	APIDocs       string `yaml:"apiDocs"`
}

func Default() Config {
	return Config{
		Server: Server{
			Listen:   ":8000",
			LogLevel: "info",
		},
		Hypermedia: Hypermedia{
			LinkRelations: "/api/link-relations/",
			ErrorProfile:  "/api/profiles/error/",
			ProfileBase:   "/api/profiles/",
			APIDocs:       "https://tapi.docs.apiary.io",
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer file.Close()

	config := Default()
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	if c.Server.PostgresDsn == "" {
		return errors.New("server.postgresDsn is required")
	}
	if c.Server.Listen == "" {
		return errors.New("server.listen is required")
	}
	if c.Server.BaseURL != "" {
		u, err := url.Parse(c.Server.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.Errorf("server.baseURL %q is not an absolute URL", c.Server.BaseURL)
		}
	}
	if c.Server.EnableTrace && c.Server.TraceEndpoint == "" {
		return errors.New("server.traceEndpoint is required when tracing is enabled")
	}
	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown server.logLevel %q", c.Server.LogLevel)
	}
	return nil
}
