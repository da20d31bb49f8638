package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	// Courses API
	CoursesAPIURL   string `validate:"omitempty,url"`
	CoursesAPIToken string
	CoursesPageSize int `validate:"gte=1,lte=500"`

	// Report
	// MinYear 0 disables the year filter.
	MinYear       int    `validate:"eq=0|gte=1400,lte=1410"`
	Format        string `validate:"oneof=csv xml json"`
	Grouping      string `validate:"oneof=period termyear"`
	PersianDigits bool

	// SFTP
	SFTPHost                  string
	SFTPPort                  int `validate:"gte=1,lte=65535"`
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPKnownHosts            string
	SFTPInsecureIgnoreHostKey bool

	// Logging
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=json console"`
}

// Load reads the environment, after merging a .env file when one exists.
// Variables already set in the environment win over the file.
func Load() Config {
	loadDotEnv(getenv("DOTENV_PATH", ".env"))

	return Config{
		// Courses API
		CoursesAPIURL:   os.Getenv("COURSES_API_URL"),
		CoursesAPIToken: os.Getenv("COURSES_API_TOKEN"),
		CoursesPageSize: getenvInt("COURSES_PAGE_SIZE", 100),

		// Report
		MinYear:       getenvInt("COURSES_MIN_YEAR", 1402),
		Format:        strings.ToLower(getenv("REPORT_FORMAT", "csv")),
		Grouping:      strings.ToLower(getenv("REPORT_GROUPING", "period")),
		PersianDigits: getenvBool("REPORT_PERSIAN_DIGITS", false),

		// SFTP
		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/inbound"),
		SFTPKnownHosts:            os.Getenv("SFTP_KNOWN_HOSTS"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", true),

		// Logging
		LogLevel:  strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getenv("LOG_FORMAT", "json")),
	}
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s(%s=%s)", fe.Field(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	// godotenv.Load never overrides variables that are already set
	_ = godotenv.Load(path)
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
