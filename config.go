package geoapify

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"
)

type duration struct {
	time.Duration
}

func (dur *duration) UnmarshalText(text []byte) (err error) {
	dur.Duration, err = time.ParseDuration(string(text))
	return
}

type fileOpts struct {
	APIKey             string   `toml:"api_key"`
	Host               string   `toml:"host"`
	UserAgent          string   `toml:"user_agent"`
	Timeout            duration `toml:"timeout"`
	InsecureSkipVerify bool     `toml:"insecure_skip_verify"`
}

// OptsFromFile reads client options from a small TOML file:
//
//	api_key = "..."
//	host = "api.geoapify.com/v1/geocode"
//	user_agent = "my-app/1.0"
//	timeout = "5s"
//	insecure_skip_verify = false
//
// Only api_key is mandatory.
func OptsFromFile(path string) (Opts, error) {
	opts := Opts{}
	parsed := fileOpts{}

	buf, err := os.ReadFile(path)
	if err != nil {
		return opts, errors.Annotate(err, "Cannot read config file")
	}

	if _, err := toml.Decode(string(buf), &parsed); err != nil {
		return opts, errors.Annotate(err, "Cannot parse config file")
	}

	if parsed.APIKey == "" {
		return opts, ErrAPIKeyIsRequired
	}

	opts.APIKey = parsed.APIKey
	opts.Host = parsed.Host
	opts.UserAgent = parsed.UserAgent
	opts.Timeout = parsed.Timeout.Duration
	opts.InsecureSkipVerify = parsed.InsecureSkipVerify

	return opts, nil
}

// OptsFromEnvironment reads client options from GEOAPIFY_API_KEY,
// GEOAPIFY_HOST and GEOAPIFY_TIMEOUT environment variables.
func OptsFromEnvironment() (Opts, error) {
	opts := Opts{
		APIKey: os.Getenv("GEOAPIFY_API_KEY"),
		Host:   os.Getenv("GEOAPIFY_HOST"),
	}

	if opts.APIKey == "" {
		return opts, ErrAPIKeyIsRequired
	}

	if value := os.Getenv("GEOAPIFY_TIMEOUT"); value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return opts, errors.Annotatef(err, "Incorrect timeout %s", value)
		}

		opts.Timeout = timeout
	}

	return opts, nil
}
